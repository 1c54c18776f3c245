// Package uuid hands out play session ids behind an interface so tests can
// pin them
package uuid

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator produces unique ids
type Generator interface {
	New() string
}

// RandomGenerator issues random version 4 UUIDs
type RandomGenerator struct{}

// New returns a fresh UUID string
func (RandomGenerator) New() string {
	return uuid.NewString()
}

// NewRandomGenerator creates a RandomGenerator
func NewRandomGenerator() Generator {
	return RandomGenerator{}
}

// SequenceGenerator issues prefix-1, prefix-2, ... in order
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequenceGenerator creates a deterministic generator for tests and
// replays
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// New returns the next id in the sequence
func (g *SequenceGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next)
}

// IsValid reports whether id parses as a UUID
func IsValid(id string) bool {
	return uuid.Validate(id) == nil
}
