package character

import (
	"github.com/KirkDiggler/sparta-village/internal/domain/equipment"
	apperr "github.com/KirkDiggler/sparta-village/internal/errors"
)

// Inventory is the ordered list of items a character owns. The position of
// an item is the key callers use to select it, so removals close the gap.
type Inventory struct {
	items []*equipment.Item
}

// NewInventory creates an inventory holding items in the given order
func NewInventory(items ...*equipment.Item) *Inventory {
	inv := &Inventory{}
	for _, item := range items {
		inv.Add(item)
	}
	return inv
}

// Add appends an item to the end of the inventory. Nil items are ignored.
func (inv *Inventory) Add(item *equipment.Item) {
	if item == nil {
		return
	}
	inv.items = append(inv.items, item)
}

// RemoveAt removes and returns the item at index
func (inv *Inventory) RemoveAt(index int) (*equipment.Item, error) {
	if err := inv.checkIndex(index); err != nil {
		return nil, err
	}

	item := inv.items[index]
	copy(inv.items[index:], inv.items[index+1:])
	inv.items[len(inv.items)-1] = nil
	inv.items = inv.items[:len(inv.items)-1]

	return item, nil
}

// Get returns the item at index
func (inv *Inventory) Get(index int) (*equipment.Item, error) {
	if err := inv.checkIndex(index); err != nil {
		return nil, err
	}
	return inv.items[index], nil
}

// Len returns the number of items held
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Items returns the items in insertion order. The slice is a copy; the
// items are not.
func (inv *Inventory) Items() []*equipment.Item {
	out := make([]*equipment.Item, len(inv.items))
	copy(out, inv.items)
	return out
}

func (inv *Inventory) checkIndex(index int) error {
	if index < 0 || index >= len(inv.items) {
		return apperr.OutOfRangef("inventory index %d out of range [0,%d)", index, len(inv.items)).
			WithMeta("index", index).
			WithMeta("len", len(inv.items))
	}
	return nil
}
