package characters

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/sparta-village/internal/domain/character"
	apperr "github.com/KirkDiggler/sparta-village/internal/errors"
)

type memoryRecord struct {
	data      []byte
	updatedAt time.Time
}

// InMemoryRepository keeps encoded save records in a map
// Useful for testing and development
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]memoryRecord
	clock   TimeProvider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		records: make(map[string]memoryRecord),
		clock:   realTime{},
	}
}

// Load decodes the record stored for slot
func (r *InMemoryRepository) Load(ctx context.Context, slot string) (*character.Character, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}

	r.mu.RLock()
	record, exists := r.records[slot]
	r.mu.RUnlock()

	if !exists {
		return nil, apperr.NotFoundf("save slot '%s' not found", slot).
			WithMeta("slot", slot)
	}

	return Decode(record.data)
}

// Save encodes char into slot
func (r *InMemoryRepository) Save(ctx context.Context, slot string, char *character.Character) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	data, err := Encode(char)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[slot] = memoryRecord{data: data, updatedAt: r.clock.Now()}
	return nil
}

// Delete removes slot
func (r *InMemoryRepository) Delete(ctx context.Context, slot string) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, slot)
	return nil
}

// List summarizes every slot
func (r *InMemoryRepository) List(ctx context.Context) ([]*SaveSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]*SaveSummary, 0, len(r.records))
	for slot, record := range r.records {
		char, err := Decode(record.data)
		summary := summarize(slot, char, err)
		summary.UpdatedAt = record.updatedAt
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Slot < summaries[j].Slot
	})

	return summaries, nil
}
