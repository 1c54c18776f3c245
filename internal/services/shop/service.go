package shop

import (
	"context"

	"github.com/KirkDiggler/sparta-village/internal/catalog"
	charDomain "github.com/KirkDiggler/sparta-village/internal/domain/character"
	"github.com/KirkDiggler/sparta-village/internal/domain/equipment"
	apperr "github.com/KirkDiggler/sparta-village/internal/errors"
	"github.com/KirkDiggler/sparta-village/internal/logger"
)

// SellPercent is the share of the list price paid back on a sale
const SellPercent = 85

// Service defines the shop service interface
type Service interface {
	// ListItems returns the catalog templates in shop order
	ListItems() []equipment.Item

	// Buy charges the item's price and adds a fresh instance to inventory
	Buy(ctx context.Context, char *charDomain.Character, catalogIndex int) (*equipment.Item, error)

	// Sell removes the inventory item at index and pays out SellPercent of
	// its price
	Sell(ctx context.Context, char *charDomain.Character, inventoryIndex int) (*SaleResult, error)
}

// SaleResult describes a completed sale
type SaleResult struct {
	Item   *equipment.Item
	Payout int
}

type service struct {
	catalog *catalog.Catalog
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog *catalog.Catalog // Required
}

// NewService creates a new shop service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}

	return &service{catalog: cfg.Catalog}
}

// ListItems returns a copy of the catalog items
func (s *service) ListItems() []equipment.Item {
	items := make([]equipment.Item, len(s.catalog.Items))
	copy(items, s.catalog.Items)
	return items
}

// Buy purchases the catalog item at catalogIndex
func (s *service) Buy(ctx context.Context, char *charDomain.Character, catalogIndex int) (*equipment.Item, error) {
	if char == nil {
		return nil, apperr.InvalidArgument("character cannot be nil")
	}

	template, ok := s.catalog.Item(catalogIndex)
	if !ok {
		return nil, apperr.InvalidArgumentf("no shop item at index %d", catalogIndex).
			WithMeta("index", catalogIndex).
			WithMeta("items", len(s.catalog.Items))
	}

	if err := char.SpendGold(template.Price); err != nil {
		return nil, apperr.Wrapf(err, "cannot afford %s", template.Name).
			WithMeta("item", template.Name)
	}

	item := template.NewInstance()
	char.AddItem(item)

	logger.FromContext(ctx).Info("bought item",
		"item", item.Name,
		"price", item.Price,
		"gold", char.Gold)
	return item, nil
}

// Sell sells the inventory item at inventoryIndex, unequipping it first
func (s *service) Sell(ctx context.Context, char *charDomain.Character, inventoryIndex int) (*SaleResult, error) {
	if char == nil {
		return nil, apperr.InvalidArgument("character cannot be nil")
	}

	item, err := char.RemoveItem(inventoryIndex)
	if err != nil {
		return nil, err
	}

	payout := item.Price * SellPercent / 100
	char.AddGold(payout)

	logger.FromContext(ctx).Info("sold item",
		"item", item.Name,
		"payout", payout,
		"gold", char.Gold)
	return &SaleResult{Item: item, Payout: payout}, nil
}
