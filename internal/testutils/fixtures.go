package testutils

import (
	"github.com/KirkDiggler/sparta-village/internal/domain/character"
	"github.com/KirkDiggler/sparta-village/internal/domain/equipment"
	"github.com/KirkDiggler/sparta-village/internal/domain/progression"
)

// CreateTestArmor creates an armor item granting defense
func CreateTestArmor(name string, defense, price int) *equipment.Item {
	return &equipment.Item{
		Name:         name,
		Description:  "test armor",
		DefenseBonus: defense,
		Price:        price,
		Slot:         equipment.SlotArmor,
	}
}

// CreateTestWeapon creates a weapon item granting attack
func CreateTestWeapon(name string, attack, price int) *equipment.Item {
	return &equipment.Item{
		Name:        name,
		Description: "test weapon",
		AttackBonus: attack,
		Price:       price,
		Slot:        equipment.SlotWeapon,
	}
}

// CreateTestCharacter creates a character with starting stats and an
// unequipped armor and weapon in inventory slots 0 and 1
func CreateTestCharacter(name, class string) *character.Character {
	char := character.New(name, class)
	char.AddItem(CreateTestArmor("Training Armor", 5, 1000))
	char.AddItem(CreateTestWeapon("Old Sword", 2, 600))
	return char
}

// CreateVeteranCharacter creates a character part way through the game with
// its armor and weapon equipped
func CreateVeteranCharacter(name, class string) *character.Character {
	char := character.Restore(name, class, character.Stats{
		Level:         3,
		Attack:        12,
		Defense:       9,
		Health:        64,
		Gold:          2650,
		DungeonClears: 2,
	}, []*equipment.Item{
		CreateTestArmor("Iron Armor", 9, 1800),
		CreateTestWeapon("Spartan Spear", 7, 2000),
	})
	_ = char.Equip(0)
	_ = char.Equip(1)
	return char
}

// CreateTestTier creates a dungeon tier
func CreateTestTier(key string, recommendedDefense, baseReward int) progression.Tier {
	return progression.Tier{
		Key:                key,
		Name:               key + " dungeon",
		RecommendedDefense: recommendedDefense,
		BaseReward:         baseReward,
	}
}
