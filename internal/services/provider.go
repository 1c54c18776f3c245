package services

import (
	"github.com/KirkDiggler/sparta-village/internal/catalog"
	"github.com/KirkDiggler/sparta-village/internal/dice"
	"github.com/KirkDiggler/sparta-village/internal/repositories/characters"
	characterService "github.com/KirkDiggler/sparta-village/internal/services/character"
	dungeonService "github.com/KirkDiggler/sparta-village/internal/services/dungeon"
	shopService "github.com/KirkDiggler/sparta-village/internal/services/shop"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	ShopService      shopService.Service
	DungeonService   dungeonService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CharacterRepository characters.Repository
	Catalog             *catalog.Catalog
	Roller              dice.Roller
	DefaultName         string
	DefaultClass        string
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	// Use in-memory repository if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	return &Provider{
		CharacterService: characterService.NewService(&characterService.ServiceConfig{
			Repository:   charRepo,
			DefaultName:  cfg.DefaultName,
			DefaultClass: cfg.DefaultClass,
		}),
		ShopService: shopService.NewService(&shopService.ServiceConfig{
			Catalog: cat,
		}),
		DungeonService: dungeonService.NewService(&dungeonService.ServiceConfig{
			Tiers:  cat.Tiers,
			Roller: cfg.Roller,
		}),
	}
}
