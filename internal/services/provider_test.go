package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/sparta-village/internal/catalog"
	mockdice "github.com/KirkDiggler/sparta-village/internal/dice/mock"
	"github.com/KirkDiggler/sparta-village/internal/domain/equipment"
	"github.com/KirkDiggler/sparta-village/internal/services"
)

// A short play session through every service, saved and reloaded
func TestProvider_PlaySession(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	provider := services.NewProvider(&services.ProviderConfig{
		Roller:      roller,
		DefaultName: "Chad",
	})
	ctx := context.Background()

	loaded, err := provider.CharacterService.LoadOrCreate(ctx, "main")
	require.NoError(t, err)
	require.True(t, loaded.Created)
	char := loaded.Character

	// buy and wear training armor: defense 5 -> 10
	_, err = provider.ShopService.Buy(ctx, char, 0)
	require.NoError(t, err)
	_, err = provider.CharacterService.Equip(ctx, char, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, char.EffectiveDefense())

	// normal tier wants 11, so the attempt fails
	outcome, err := provider.DungeonService.Enter(ctx, char, 1)
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Equal(t, 50, char.Health)

	// easy tier: damage 20 less a surplus of 5, reward 10 percent
	roller.SetRolls([]int{1, 1})
	outcome, err = provider.DungeonService.Enter(ctx, char, 0)
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, 15, outcome.HealthLoss)
	assert.Equal(t, 35, char.Health)
	assert.Equal(t, 500+1100, char.Gold)

	rest, err := provider.CharacterService.Rest(ctx, char)
	require.NoError(t, err)
	assert.Equal(t, 65, rest.Healed)
	assert.Equal(t, 1100, char.Gold)

	require.NoError(t, provider.CharacterService.Save(ctx, "main", char))

	again, err := provider.CharacterService.LoadOrCreate(ctx, "main")
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, char, again.Character)
	assert.Equal(t, "수련자 갑옷", again.Character.EquippedItem(equipment.SlotArmor).Name)

	saves, err := provider.CharacterService.ListSaves(ctx)
	require.NoError(t, err)
	require.Len(t, saves, 1)
	assert.Equal(t, 2, saves[0].Level)
	assert.Equal(t, 1, saves[0].DungeonClears)
}

func TestNewProvider_Defaults(t *testing.T) {
	provider := services.NewProvider(nil)

	assert.NotNil(t, provider.CharacterService)
	assert.Len(t, provider.ShopService.ListItems(), 6)
	assert.Len(t, provider.DungeonService.ListTiers(), 3)
}

func TestProvider_BoughtCatalogItemsSave(t *testing.T) {
	_, err := catalog.Parse([]byte(`
items:
  - {name: "Sword, old", price: 100, slot: Weapon}
tiers:
  - {key: easy, name: Easy, recommended_defense: 5, base_reward: 1000}
`))
	require.Error(t, err)

	cat, err := catalog.Parse([]byte(`
items:
  - {name: Old Sword, description: "attack +2 | rusty", attack_bonus: 2, price: 100, slot: Weapon}
tiers:
  - {key: easy, name: Easy, recommended_defense: 5, base_reward: 1000}
`))
	require.NoError(t, err)

	provider := services.NewProvider(&services.ProviderConfig{Catalog: cat})
	ctx := context.Background()
	char := provider.CharacterService.Create(ctx, "", "")

	_, err = provider.ShopService.Buy(ctx, char, 0)
	require.NoError(t, err)
	assert.Equal(t, 1400, char.Gold)

	require.NoError(t, provider.CharacterService.Save(ctx, "main", char))
}
