package character

import (
	"golang.org/x/text/unicode/norm"

	"github.com/KirkDiggler/sparta-village/internal/domain/equipment"
)

const (
	StartingLevel   = 1
	StartingAttack  = 10
	StartingDefense = 5
	StartingHealth  = 100
	StartingGold    = 1500

	// MaxHealth caps healing. Dungeon damage is not floored, and a lucky
	// dungeon run can leave health above the cap until the next heal.
	MaxHealth = 100
)

// Stats is the numeric state of a character
type Stats struct {
	Level         int
	Attack        int
	Defense       int
	Health        int
	Gold          int
	DungeonClears int
}

// StartingStats returns the stats of a freshly created character
func StartingStats() Stats {
	return Stats{
		Level:   StartingLevel,
		Attack:  StartingAttack,
		Defense: StartingDefense,
		Health:  StartingHealth,
		Gold:    StartingGold,
	}
}

type Character struct {
	Name  string
	Class string
	Stats

	inventory *Inventory

	// equipped maps a slot to the inventory index of its occupant
	equipped map[equipment.Slot]int
}

// New creates a fresh character with starting stats and an empty inventory
func New(name, class string) *Character {
	return Restore(name, class, StartingStats(), nil)
}

// Restore rebuilds a character from persisted state. Items flagged as
// equipped are equipped again in inventory order, so when two items claim
// the same slot the later one keeps it.
func Restore(name, class string, stats Stats, items []*equipment.Item) *Character {
	c := &Character{
		Name:      norm.NFC.String(name),
		Class:     norm.NFC.String(class),
		Stats:     stats,
		inventory: NewInventory(),
		equipped:  make(map[equipment.Slot]int),
	}

	for _, item := range items {
		if item == nil {
			continue
		}
		wantEquipped := item.Equipped
		item.Equipped = false
		c.inventory.Add(item)
		if wantEquipped && item.Slot.IsValid() {
			c.equip(c.inventory.Len() - 1)
		}
	}

	return c
}

// EffectiveAttack is the base attack plus bonuses from equipped items
func (c *Character) EffectiveAttack() int {
	total := c.Attack
	for _, item := range c.EquippedItems() {
		total += item.AttackBonus
	}
	return total
}

// EffectiveDefense is the base defense plus bonuses from equipped items
func (c *Character) EffectiveDefense() int {
	total := c.Defense
	for _, item := range c.EquippedItems() {
		total += item.DefenseBonus
	}
	return total
}

// IsDefeated reports whether health has dropped to zero or below
func (c *Character) IsDefeated() bool {
	return c.Health <= 0
}

// LevelUp applies one level of growth
func (c *Character) LevelUp() {
	c.Level++
	c.Attack++
	c.Defense += 2
}

// TakeDamage subtracts amount from health without a floor. A negative
// amount heals past the cap.
func (c *Character) TakeDamage(amount int) {
	c.Health -= amount
}

// Heal adds amount to health, capped at MaxHealth, and returns the change
func (c *Character) Heal(amount int) int {
	before := c.Health
	c.Health = min(c.Health+amount, MaxHealth)
	return c.Health - before
}

// Clone returns a deep copy, including fresh item instances
func (c *Character) Clone() *Character {
	items := make([]*equipment.Item, 0, c.inventory.Len())
	for _, item := range c.inventory.Items() {
		cp := *item
		items = append(items, &cp)
	}

	clone := &Character{
		Name:      c.Name,
		Class:     c.Class,
		Stats:     c.Stats,
		inventory: NewInventory(items...),
		equipped:  make(map[equipment.Slot]int, len(c.equipped)),
	}
	for slot, index := range c.equipped {
		clone.equipped[slot] = index
	}

	return clone
}
