package dice

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

var (
	// ErrInvalidCount is returned when fewer than one die is requested
	ErrInvalidCount = errors.New("invalid dice count")

	// ErrInvalidSides is returned when a die has fewer than one face
	ErrInvalidSides = errors.New("invalid dice size")
)

type RollResult struct {
	Total    int
	RawTotal int
	Highest  int
	Lowest   int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
}

// Validate checks the shape of a roll before any die is thrown
func Validate(count, sides int) error {
	if count < 1 {
		return ErrInvalidCount
	}
	if sides < 1 {
		return ErrInvalidSides
	}
	return nil
}

// NewRollResult builds a result from already thrown faces
func NewRollResult(rolls []int, sides, bonus int) *RollResult {
	result := &RollResult{
		Rolls: rolls,
		Bonus: bonus,
		Count: len(rolls),
		Sides: sides,
	}

	for i, roll := range rolls {
		result.RawTotal += roll
		if i == 0 || roll < result.Lowest {
			result.Lowest = roll
		}
		if i == 0 || roll > result.Highest {
			result.Highest = roll
		}
	}
	result.Total = result.RawTotal + bonus

	return result
}

// rollWith throws count dice of the given size using src
func rollWith(src *rand.Rand, count, sides, bonus int) (*RollResult, error) {
	if err := Validate(count, sides); err != nil {
		return nil, err
	}

	out := make([]int, count)
	for i := 0; i < count; i++ {
		out[i] = src.Intn(sides) + 1
	}

	return NewRollResult(out, sides, bonus), nil
}

func (r *RollResult) String() string {
	faces := make([]string, len(r.Rolls))
	for i, roll := range r.Rolls {
		faces[i] = strconv.Itoa(roll)
	}
	compact := "[" + strings.Join(faces, ",") + "]"
	if r.Bonus != 0 {
		return fmt.Sprintf("**%d** : %s%+d", r.Total, compact, r.Bonus)
	}
	return fmt.Sprintf("**%d** : %s", r.Total, compact)
}
