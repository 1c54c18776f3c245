package equipment

import "fmt"

// Item is a piece of gear. Text fields are stored in comma separated save
// records, so catalogs validate them with the savefield tag. Catalog entries are templates; the copies held
// in an inventory are instances whose Equipped flag mirrors the owner's
// slot state.
type Item struct {
	Name         string `yaml:"name" validate:"required,savefield"`
	Description  string `yaml:"description" validate:"savefield"`
	AttackBonus  int    `yaml:"attack_bonus" validate:"gte=0"`
	DefenseBonus int    `yaml:"defense_bonus" validate:"gte=0"`
	Price        int    `yaml:"price" validate:"gte=0"`
	Slot         Slot   `yaml:"slot" validate:"required,oneof=Armor Weapon"`
	Equipped     bool   `yaml:"-"`
}

// NewInstance returns an unequipped copy of the template
func (i Item) NewInstance() *Item {
	i.Equipped = false
	return &i
}

func (i *Item) String() string {
	return fmt.Sprintf("%s | %s", i.Name, i.Description)
}
