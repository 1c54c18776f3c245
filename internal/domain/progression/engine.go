// Package progression turns a character's stats and a dungeon tier into an
// outcome: health lost, gold earned and levels gained.
package progression

import (
	"fmt"

	"github.com/KirkDiggler/sparta-village/internal/dice"
	"github.com/KirkDiggler/sparta-village/internal/domain/character"
)

const (
	// damage on a cleared dungeon is drawn from [MinClearDamage, MaxClearDamage)
	MinClearDamage = 20
	MaxClearDamage = 36
)

// Outcome is the resolved result of one dungeon attempt
type Outcome struct {
	Tier    Tier
	Success bool

	// HealthLoss may be zero or negative on a success with a large defense surplus
	HealthLoss   int
	HealthBefore int
	HealthAfter  int

	RewardPercent int
	BaseReward    int
	BonusReward   int
	TotalReward   int

	LevelsGained int
	Defeated     bool
}

// Resolve decides a dungeon attempt without changing the character. The
// character's effective attack and defense are used: base stats plus the
// bonuses of equipped items. With nothing equipped these are the base stats.
func Resolve(c *character.Character, tier Tier, roller dice.Roller) (*Outcome, error) {
	if c == nil {
		return nil, fmt.Errorf("character is required")
	}
	if roller == nil {
		return nil, fmt.Errorf("roller is required")
	}

	defense := c.EffectiveDefense()
	out := &Outcome{
		Tier:         tier,
		HealthBefore: c.Health,
	}

	if defense < tier.RecommendedDefense {
		out.HealthLoss = floorDiv(c.Health, 2)
		out.HealthAfter = c.Health - out.HealthLoss
		out.Defeated = out.HealthAfter <= 0
		return out, nil
	}

	damage, err := dice.Between(roller, MinClearDamage, MaxClearDamage)
	if err != nil {
		return nil, fmt.Errorf("failed to roll dungeon damage: %w", err)
	}

	attack := c.EffectiveAttack()
	percent, err := dice.Between(roller, attack, 2*attack+1)
	if err != nil {
		return nil, fmt.Errorf("failed to roll dungeon reward: %w", err)
	}

	out.Success = true
	out.HealthLoss = damage - (defense - tier.RecommendedDefense)
	out.HealthAfter = c.Health - out.HealthLoss
	out.RewardPercent = percent
	out.BaseReward = tier.BaseReward
	out.BonusReward = floorDiv(tier.BaseReward*percent, 100)
	out.TotalReward = out.BaseReward + out.BonusReward
	out.LevelsGained = 1
	out.Defeated = out.HealthAfter <= 0

	return out, nil
}

// Apply writes the outcome onto the character
func (o *Outcome) Apply(c *character.Character) {
	c.TakeDamage(o.HealthLoss)
	if !o.Success {
		return
	}

	c.AddGold(o.TotalReward)
	for i := 0; i < o.LevelsGained; i++ {
		c.LevelUp()
	}
	c.DungeonClears++
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
