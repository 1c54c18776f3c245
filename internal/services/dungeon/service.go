package dungeon

import (
	"context"

	"github.com/KirkDiggler/sparta-village/internal/dice"
	charDomain "github.com/KirkDiggler/sparta-village/internal/domain/character"
	"github.com/KirkDiggler/sparta-village/internal/domain/progression"
	apperr "github.com/KirkDiggler/sparta-village/internal/errors"
	"github.com/KirkDiggler/sparta-village/internal/logger"
)

// Service defines the dungeon service interface
type Service interface {
	// ListTiers returns the dungeons on offer, easiest first
	ListTiers() []progression.Tier

	// Enter resolves one attempt at the tier at tierIndex and applies the
	// outcome to the character
	Enter(ctx context.Context, char *charDomain.Character, tierIndex int) (*progression.Outcome, error)
}

type service struct {
	tiers  []progression.Tier
	roller dice.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Tiers  []progression.Tier // Required
	Roller dice.Roller        // Optional, defaults to a random roller
}

// NewService creates a new dungeon service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if len(cfg.Tiers) == 0 {
		panic("at least one dungeon tier is required")
	}

	svc := &service{
		tiers:  append([]progression.Tier(nil), cfg.Tiers...),
		roller: cfg.Roller,
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}

	return svc
}

// ListTiers returns a copy of the tiers
func (s *service) ListTiers() []progression.Tier {
	return append([]progression.Tier(nil), s.tiers...)
}

// Enter runs the dungeon at tierIndex
func (s *service) Enter(ctx context.Context, char *charDomain.Character, tierIndex int) (*progression.Outcome, error) {
	if char == nil {
		return nil, apperr.InvalidArgument("character cannot be nil")
	}
	if tierIndex < 0 || tierIndex >= len(s.tiers) {
		return nil, apperr.InvalidArgumentf("no dungeon at index %d", tierIndex).
			WithMeta("index", tierIndex).
			WithMeta("tiers", len(s.tiers))
	}
	tier := s.tiers[tierIndex]

	outcome, err := progression.Resolve(char, tier, s.roller)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to resolve dungeon").
			WithMeta("tier", tier.Key)
	}
	outcome.Apply(char)

	log := logger.FromContext(ctx).With("tier", tier.Key)
	if !outcome.Success {
		log.Info("dungeon failed",
			"defense", char.EffectiveDefense(),
			"recommended", tier.RecommendedDefense,
			"health_loss", outcome.HealthLoss,
			"health", char.Health)
	} else {
		log.Info("dungeon cleared",
			"health_loss", outcome.HealthLoss,
			"reward_percent", outcome.RewardPercent,
			"reward", outcome.TotalReward,
			"level", char.Level,
			"clears", char.DungeonClears)
	}
	if outcome.Defeated {
		log.Warn("character collapsed in the dungeon", "health", char.Health)
	}

	return outcome, nil
}
