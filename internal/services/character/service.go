package character

import (
	"context"
	"strings"

	charDomain "github.com/KirkDiggler/sparta-village/internal/domain/character"
	"github.com/KirkDiggler/sparta-village/internal/domain/equipment"
	apperr "github.com/KirkDiggler/sparta-village/internal/errors"
	"github.com/KirkDiggler/sparta-village/internal/logger"
	"github.com/KirkDiggler/sparta-village/internal/repositories/characters"
)

// Repository is an alias for the save slot repository interface
type Repository = characters.Repository

// Service defines the character service interface
type Service interface {
	// Create makes a fresh character. Empty name or class fall back to the
	// configured defaults.
	Create(ctx context.Context, name, class string) *charDomain.Character

	// Load reads the character saved in slot
	Load(ctx context.Context, slot string) (*charDomain.Character, error)

	// LoadOrCreate loads slot, starting a fresh character when the slot is
	// missing or its record is corrupt
	LoadOrCreate(ctx context.Context, slot string) (*LoadResult, error)

	// Save writes the character to slot
	Save(ctx context.Context, slot string, char *charDomain.Character) error

	// Delete removes slot
	Delete(ctx context.Context, slot string) error

	// ListSaves summarizes every save slot
	ListSaves(ctx context.Context) ([]*characters.SaveSummary, error)

	// Equip equips the inventory item at index and returns it
	Equip(ctx context.Context, char *charDomain.Character, index int) (*equipment.Item, error)

	// Unequip reports false when the item at index was not equipped
	Unequip(ctx context.Context, char *charDomain.Character, index int) bool

	// Rest pays the inn fee to restore health
	Rest(ctx context.Context, char *charDomain.Character) (*charDomain.RestResult, error)
}

// LoadResult is the character LoadOrCreate settled on
type LoadResult struct {
	Character *charDomain.Character

	// Created is true when the save could not be used
	Created bool

	// Reason is the load error that caused a fresh start
	Reason error
}

// service implements the Service interface
type service struct {
	repository   Repository
	defaultName  string
	defaultClass string
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository   Repository // Required
	DefaultName  string     // Optional, defaults to "Chad"
	DefaultClass string     // Optional, defaults to "전사"
}

const (
	fallbackName  = "Chad"
	fallbackClass = "전사"
)

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:   cfg.Repository,
		defaultName:  cfg.DefaultName,
		defaultClass: cfg.DefaultClass,
	}
	if strings.TrimSpace(svc.defaultName) == "" {
		svc.defaultName = fallbackName
	}
	if strings.TrimSpace(svc.defaultClass) == "" {
		svc.defaultClass = fallbackClass
	}

	return svc
}

// Create makes a fresh character
func (s *service) Create(ctx context.Context, name, class string) *charDomain.Character {
	if strings.TrimSpace(name) == "" {
		name = s.defaultName
	}
	if strings.TrimSpace(class) == "" {
		class = s.defaultClass
	}

	char := charDomain.New(strings.TrimSpace(name), strings.TrimSpace(class))
	logger.FromContext(ctx).Info("created character",
		"name", char.Name,
		"class", char.Class)
	return char
}

// Load reads the character saved in slot
func (s *service) Load(ctx context.Context, slot string) (*charDomain.Character, error) {
	char, err := s.repository.Load(ctx, slot)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to load save slot '%s'", slot).
			WithMeta("slot", slot)
	}

	logger.FromContext(ctx).Debug("loaded character",
		"slot", slot,
		"name", char.Name,
		"level", char.Level)
	return char, nil
}

// LoadOrCreate loads slot or starts over
func (s *service) LoadOrCreate(ctx context.Context, slot string) (*LoadResult, error) {
	char, err := s.Load(ctx, slot)
	switch {
	case err == nil:
		return &LoadResult{Character: char}, nil
	case apperr.IsNotFound(err):
		logger.FromContext(ctx).Info("no saved character, starting fresh", "slot", slot)
	case apperr.IsCorruptSave(err):
		logger.FromContext(ctx).Warn("save is corrupt, starting fresh",
			"slot", slot,
			"error", err,
			"meta", apperr.GetMeta(err))
	default:
		return nil, err
	}

	return &LoadResult{
		Character: s.Create(ctx, "", ""),
		Created:   true,
		Reason:    err,
	}, nil
}

// Save writes the character to slot
func (s *service) Save(ctx context.Context, slot string, char *charDomain.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}

	if err := s.repository.Save(ctx, slot, char); err != nil {
		return apperr.Wrapf(err, "failed to save slot '%s'", slot).
			WithMeta("slot", slot)
	}

	logger.FromContext(ctx).Info("saved character",
		"slot", slot,
		"level", char.Level,
		"gold", char.Gold,
		"items", char.ItemCount())
	return nil
}

// Delete removes slot
func (s *service) Delete(ctx context.Context, slot string) error {
	if err := s.repository.Delete(ctx, slot); err != nil {
		return apperr.Wrapf(err, "failed to delete slot '%s'", slot)
	}

	logger.FromContext(ctx).Info("deleted save", "slot", slot)
	return nil
}

// ListSaves summarizes every save slot
func (s *service) ListSaves(ctx context.Context) ([]*characters.SaveSummary, error) {
	summaries, err := s.repository.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list saves")
	}
	return summaries, nil
}

// Equip equips the inventory item at index
func (s *service) Equip(ctx context.Context, char *charDomain.Character, index int) (*equipment.Item, error) {
	if char == nil {
		return nil, apperr.InvalidArgument("character cannot be nil")
	}

	if err := char.Equip(index); err != nil {
		return nil, err
	}

	item, err := char.Item(index)
	if err != nil {
		return nil, apperr.Wrap(err, "equipped item vanished")
	}

	logger.FromContext(ctx).Info("equipped item",
		"item", item.Name,
		"slot", item.Slot.String(),
		"attack", char.EffectiveAttack(),
		"defense", char.EffectiveDefense())
	return item, nil
}

// Unequip clears the item at index from its slot
func (s *service) Unequip(ctx context.Context, char *charDomain.Character, index int) bool {
	if char == nil {
		return false
	}

	if !char.Unequip(index) {
		return false
	}

	logger.FromContext(ctx).Info("unequipped item", "index", index)
	return true
}

// Rest pays the inn fee to restore health
func (s *service) Rest(ctx context.Context, char *charDomain.Character) (*charDomain.RestResult, error) {
	if char == nil {
		return nil, apperr.InvalidArgument("character cannot be nil")
	}

	result, err := char.Rest()
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("rested",
		"healed", result.Healed,
		"health", result.Health,
		"gold", char.Gold)
	return result, nil
}
