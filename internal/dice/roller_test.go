package dice_test

import (
	"testing"

	"github.com/KirkDiggler/sparta-village/internal/dice"
	"github.com/KirkDiggler/sparta-village/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		count      int
		sides      int
		bonus      int
		wantTotal  int
		wantRolls  []int
		wantErr    bool
	}{
		{
			name:       "single d20 roll",
			setupRolls: []int{15},
			count:      1,
			sides:      20,
			wantTotal:  15,
			wantRolls:  []int{15},
		},
		{
			name:       "2d6+3",
			setupRolls: []int{4, 5},
			count:      2,
			sides:      6,
			bonus:      3,
			wantTotal:  12, // 4+5+3
			wantRolls:  []int{4, 5},
		},
		{
			name:       "negative bonus",
			setupRolls: []int{6},
			count:      1,
			sides:      16,
			bonus:      -1,
			wantTotal:  5,
			wantRolls:  []int{6},
		},
		{
			name:       "not enough rolls",
			setupRolls: []int{10},
			count:      2,
			sides:      6,
			wantErr:    true,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{7},
			count:      1,
			sides:      6,
			wantErr:    true,
		},
		{
			name:    "zero sides",
			count:   1,
			sides:   0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.setupRolls)

			result, err := roller.Roll(tt.count, tt.sides, tt.bonus)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
		})
	}
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name    string
		face    int
		low     int
		high    int
		want    int
		wantErr bool
	}{
		{name: "lowest face maps to low", face: 1, low: 20, high: 36, want: 20},
		{name: "highest face maps to high-1", face: 16, low: 20, high: 36, want: 35},
		{name: "reward percent draw", face: 6, low: 10, high: 21, want: 15},
		{name: "single value range", face: 1, low: 0, high: 1, want: 0},
		{name: "empty range", low: 5, high: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			if tt.face > 0 {
				roller.SetNextRoll(tt.face)
			}

			got, err := dice.Between(roller, tt.low, tt.high)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeededRoller_StaysInRange(t *testing.T) {
	roller := dice.NewSeededRoller(42)

	for i := 0; i < 500; i++ {
		got, err := dice.Between(roller, 20, 36)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 20)
		assert.Less(t, got, 36)
	}
}

func TestSeededRoller_IsDeterministic(t *testing.T) {
	a := dice.NewSeededRoller(7)
	b := dice.NewSeededRoller(7)

	for i := 0; i < 20; i++ {
		ra, err := a.Roll(2, 6, 1)
		require.NoError(t, err)
		rb, err := b.Roll(2, 6, 1)
		require.NoError(t, err)
		assert.Equal(t, ra.Rolls, rb.Rolls)
		assert.Equal(t, ra.RawTotal+1, ra.Total)
	}
}

func TestRandomRoller_RejectsBadShape(t *testing.T) {
	roller := dice.NewRandomRoller()

	_, err := roller.Roll(0, 6, 0)
	assert.ErrorIs(t, err, dice.ErrInvalidCount)

	_, err = roller.Roll(1, 0, 0)
	assert.ErrorIs(t, err, dice.ErrInvalidSides)
}

func TestNewRollResult(t *testing.T) {
	result := dice.NewRollResult([]int{3, 6, 1}, 6, 2)

	assert.Equal(t, 10, result.RawTotal)
	assert.Equal(t, 12, result.Total)
	assert.Equal(t, 6, result.Highest)
	assert.Equal(t, 1, result.Lowest)
	assert.Equal(t, 3, result.Count)
	assert.Equal(t, "**12** : [3,6,1]+2", result.String())
}
