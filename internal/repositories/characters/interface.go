package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"
	"regexp"
	"time"

	"github.com/KirkDiggler/sparta-village/internal/domain/character"
	apperr "github.com/KirkDiggler/sparta-village/internal/errors"
)

// Repository defines the interface for character save slots
type Repository interface {
	// Load reads the character saved in slot. A missing slot is NotFound, an
	// unreadable record is CorruptSave.
	Load(ctx context.Context, slot string) (*character.Character, error)

	// Save writes the character to slot, replacing what was there
	Save(ctx context.Context, slot string, char *character.Character) error

	// Delete removes slot. Deleting a missing slot is not an error.
	Delete(ctx context.Context, slot string) error

	// List summarizes every saved slot, ordered by slot name
	List(ctx context.Context) ([]*SaveSummary, error)
}

// TimeProvider supplies the current time
type TimeProvider interface {
	Now() time.Time
}

// SaveSummary describes a save slot without handing out the character
type SaveSummary struct {
	Slot          string
	Name          string
	Class         string
	Level         int
	Gold          int
	DungeonClears int
	UpdatedAt     time.Time

	// Corrupt is set when the slot exists but its record does not decode
	Corrupt bool
}

type realTime struct{}

func (realTime) Now() time.Time {
	return time.Now().UTC()
}

var slotPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidateSlot checks that a slot name is safe to use as a key or file name
func ValidateSlot(slot string) error {
	if !slotPattern.MatchString(slot) {
		return apperr.InvalidArgumentf("invalid save slot %q", slot).
			WithMeta("slot", slot)
	}
	return nil
}

func summarize(slot string, char *character.Character, err error) *SaveSummary {
	summary := &SaveSummary{Slot: slot}
	if err != nil {
		summary.Corrupt = true
		return summary
	}

	summary.Name = char.Name
	summary.Class = char.Class
	summary.Level = char.Level
	summary.Gold = char.Gold
	summary.DungeonClears = char.DungeonClears
	return summary
}
