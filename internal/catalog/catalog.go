// Package catalog holds the shop's item list and the dungeon tiers the
// driver offers. Both are plain data handed to the services that use them.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/sparta-village/internal/domain/equipment"
	"github.com/KirkDiggler/sparta-village/internal/domain/progression"
)

// Catalog is the static game data
type Catalog struct {
	Items []equipment.Item   `yaml:"items" validate:"required,min=1,dive"`
	Tiers []progression.Tier `yaml:"tiers" validate:"required,min=1,dive"`
}

// Default returns the built-in shop and dungeon list
func Default() *Catalog {
	return &Catalog{
		Items: []equipment.Item{
			{Name: "수련자 갑옷", Description: "방어력 +5 | 수련에 도움을 주는 갑옷입니다.", DefenseBonus: 5, Price: 1000, Slot: equipment.SlotArmor},
			{Name: "무쇠갑옷", Description: "방어력 +9 | 무쇠로 만들어져 튼튼한 갑옷입니다.", DefenseBonus: 9, Price: 1800, Slot: equipment.SlotArmor},
			{Name: "스파르타의 갑옷", Description: "방어력 +15 | 스파르타의 전사들이 사용했다는 전설의 갑옷입니다.", DefenseBonus: 15, Price: 3500, Slot: equipment.SlotArmor},
			{Name: "낡은 검", Description: "공격력 +2 | 쉽게 볼 수 있는 낡은 검 입니다.", AttackBonus: 2, Price: 600, Slot: equipment.SlotWeapon},
			{Name: "청동 도끼", Description: "공격력 +5 | 어디선가 사용됐던거 같은 도끼입니다.", AttackBonus: 5, Price: 1500, Slot: equipment.SlotWeapon},
			{Name: "스파르타의 창", Description: "공격력 +7 | 스파르타의 전사들이 사용했다는 전설의 창입니다.", AttackBonus: 7, Price: 2500, Slot: equipment.SlotWeapon},
		},
		Tiers: progression.DefaultTiers(),
	}
}

// LoadFile reads a YAML catalog. An empty path returns the default catalog.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}

	return &cat, nil
}

// saveFieldTag rejects text that cannot be written into a save record
const saveFieldTag = "savefield"

func newValidator() *validator.Validate {
	v := validator.New()
	// only fails for an empty tag or a nil func
	_ = v.RegisterValidation(saveFieldTag, func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), ",\r\n")
	})
	return v
}

// Validate checks the catalog's struct tags
func (c *Catalog) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}

// Item returns the catalog template at index
func (c *Catalog) Item(index int) (equipment.Item, bool) {
	if index < 0 || index >= len(c.Items) {
		return equipment.Item{}, false
	}
	return c.Items[index], true
}

// Tier returns the dungeon tier at index
func (c *Catalog) Tier(index int) (progression.Tier, bool) {
	if index < 0 || index >= len(c.Tiers) {
		return progression.Tier{}, false
	}
	return c.Tiers[index], true
}
