// Package richardson implements zero-noise extrapolation by exact polynomial
// interpolation: the unique polynomial of degree len(points)-1 through the
// sampled (scale factor, expectation) pairs, evaluated at scale zero.
package richardson

import (
	"errors"
	"fmt"
)

// ErrDegenerateInput is returned when the sampled points do not determine a
// unique interpolating polynomial: repeated scale factors, mismatched slice
// lengths, or no points at all.
var ErrDegenerateInput = errors.New("degenerate extrapolation input")

// Extrapolate fits the interpolating polynomial through
// (scaleFactors[i], values[i]) and evaluates it at zero, using the Lagrange
// basis in double precision. By convention a single point is returned
// unchanged; no extrapolation is possible from one sample.
func Extrapolate(scaleFactors, values []float64) (float64, error) {
	if len(scaleFactors) != len(values) {
		return 0, fmt.Errorf("%w: %d scale factors, %d values",
			ErrDegenerateInput, len(scaleFactors), len(values))
	}
	switch len(scaleFactors) {
	case 0:
		return 0, fmt.Errorf("%w: no points", ErrDegenerateInput)
	case 1:
		return values[0], nil
	}
	for i := 1; i < len(scaleFactors); i++ {
		for j := 0; j < i; j++ {
			if scaleFactors[i] == scaleFactors[j] {
				return 0, fmt.Errorf("%w: scale factor %v repeated",
					ErrDegenerateInput, scaleFactors[i])
			}
		}
	}

	// Lagrange basis at x=0: L_i(0) = prod_{j != i} x_j / (x_j - x_i).
	var zero float64
	for i := range scaleFactors {
		w := 1.0
		for j := range scaleFactors {
			if j == i {
				continue
			}
			w *= scaleFactors[j] / (scaleFactors[j] - scaleFactors[i])
		}
		zero += values[i] * w
	}
	return zero, nil
}
