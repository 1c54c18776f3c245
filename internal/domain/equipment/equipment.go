package equipment

import (
	"fmt"
	"strings"
)

// Slot is the equipment category an item occupies when equipped
type Slot string

const (
	SlotArmor  Slot = "Armor"
	SlotWeapon Slot = "Weapon"
)

// Slots lists every slot a character has, in display order
var Slots = []Slot{SlotArmor, SlotWeapon}

func (s Slot) String() string {
	return string(s)
}

// IsValid reports whether s is a known slot
func (s Slot) IsValid() bool {
	switch s {
	case SlotArmor, SlotWeapon:
		return true
	}
	return false
}

// ParseSlot converts a slot token such as "Armor" or "weapon" to a Slot
func ParseSlot(token string) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "armor":
		return SlotArmor, nil
	case "weapon":
		return SlotWeapon, nil
	}
	return "", fmt.Errorf("unknown slot %q", token)
}
