package character

import (
	apperr "github.com/KirkDiggler/sparta-village/internal/errors"
)

const (
	// RestCost is the fee for resting at the inn
	RestCost = 500

	// RestHeal is how much health a rest restores before the cap
	RestHeal = 100
)

// RestResult describes a completed rest
type RestResult struct {
	Cost   int
	Healed int
	Health int
}

// AddGold credits gold to the character
func (c *Character) AddGold(amount int) {
	c.Gold += amount
}

// SpendGold debits amount, failing without change if the character cannot
// afford it
func (c *Character) SpendGold(amount int) error {
	if amount < 0 {
		return apperr.InvalidArgumentf("cannot spend negative gold %d", amount)
	}
	if c.Gold < amount {
		return apperr.InsufficientGoldf("need %d gold, have %d", amount, c.Gold).
			WithMeta("required", amount).
			WithMeta("gold", c.Gold)
	}
	c.Gold -= amount
	return nil
}

// Rest pays RestCost to heal up to MaxHealth
func (c *Character) Rest() (*RestResult, error) {
	if err := c.SpendGold(RestCost); err != nil {
		return nil, apperr.Wrap(err, "cannot afford rest")
	}

	healed := c.Heal(RestHeal)

	return &RestResult{
		Cost:   RestCost,
		Healed: healed,
		Health: c.Health,
	}, nil
}
