package character

import (
	"github.com/KirkDiggler/sparta-village/internal/domain/equipment"
	apperr "github.com/KirkDiggler/sparta-village/internal/errors"
)

// AddItem appends an item to the inventory unequipped
func (c *Character) AddItem(item *equipment.Item) {
	if item == nil {
		return
	}
	item.Equipped = false
	c.inventory.Add(item)
}

// Item returns the inventory item at index
func (c *Character) Item(index int) (*equipment.Item, error) {
	return c.inventory.Get(index)
}

// Items returns the inventory in order
func (c *Character) Items() []*equipment.Item {
	return c.inventory.Items()
}

// ItemCount returns the number of items in the inventory
func (c *Character) ItemCount() int {
	return c.inventory.Len()
}

// RemoveItem takes the item at index out of the inventory, unequipping it
// first. Equipped indices past index move down with their items.
func (c *Character) RemoveItem(index int) (*equipment.Item, error) {
	if _, err := c.inventory.Get(index); err != nil {
		return nil, err
	}

	c.Unequip(index)

	item, err := c.inventory.RemoveAt(index)
	if err != nil {
		return nil, err
	}

	for slot, equippedIndex := range c.equipped {
		if equippedIndex > index {
			c.equipped[slot] = equippedIndex - 1
		}
	}

	return item, nil
}

// Equip puts the item at index into its slot, displacing the current
// occupant. Equipping the current occupant again is a no-op.
func (c *Character) Equip(index int) error {
	item, err := c.inventory.Get(index)
	if err != nil {
		return apperr.InvalidItemf("no owned item at index %d", index).
			WithMeta("index", index)
	}
	if !item.Slot.IsValid() {
		return apperr.InvalidItemf("item %q has unknown slot %q", item.Name, item.Slot).
			WithMeta("index", index)
	}

	c.equip(index)
	return nil
}

// Unequip clears the item at index from its slot. It reports false and
// changes nothing when the item is not the slot's current occupant.
func (c *Character) Unequip(index int) bool {
	item, err := c.inventory.Get(index)
	if err != nil {
		return false
	}

	current, ok := c.equipped[item.Slot]
	if !ok || current != index {
		return false
	}

	item.Equipped = false
	delete(c.equipped, item.Slot)
	return true
}

// IsEquipped reports whether the item at index occupies its slot
func (c *Character) IsEquipped(index int) bool {
	item, err := c.inventory.Get(index)
	if err != nil {
		return false
	}
	current, ok := c.equipped[item.Slot]
	return ok && current == index
}

// EquippedIndex returns the inventory index occupying slot
func (c *Character) EquippedIndex(slot equipment.Slot) (int, bool) {
	index, ok := c.equipped[slot]
	return index, ok
}

// EquippedItem returns the occupant of slot, or nil
func (c *Character) EquippedItem(slot equipment.Slot) *equipment.Item {
	index, ok := c.equipped[slot]
	if !ok {
		return nil
	}
	item, err := c.inventory.Get(index)
	if err != nil {
		return nil
	}
	return item
}

// EquippedItems returns the occupied slots' items in slot order
func (c *Character) EquippedItems() []*equipment.Item {
	var out []*equipment.Item
	for _, slot := range equipment.Slots {
		if item := c.EquippedItem(slot); item != nil {
			out = append(out, item)
		}
	}
	return out
}

func (c *Character) equip(index int) {
	item := c.inventory.items[index]

	if current, ok := c.equipped[item.Slot]; ok && current != index {
		c.Unequip(current)
	}

	item.Equipped = true
	c.equipped[item.Slot] = index
}
