package dice

import "fmt"

// Between draws a uniform integer in [low, high) from a single die.
// A die with high-low faces offset by low-1 maps face 1 to low.
func Between(r Roller, low, high int) (int, error) {
	if high <= low {
		return 0, fmt.Errorf("empty range [%d,%d)", low, high)
	}

	result, err := r.Roll(1, high-low, low-1)
	if err != nil {
		return 0, err
	}

	return result.Total, nil
}
