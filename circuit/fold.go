package circuit

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidScaleFactor is returned when a noise scale factor is below 1 or
// not a finite number.
var ErrInvalidScaleFactor = errors.New("scale factor must be a finite number >= 1")

// Fold amplifies the noise a circuit accumulates by global folding: the
// returned circuit implements the same unitary as c but contains
// round(scale*Depth()) gates. Whole-circuit folds (append Inverse(c) then c)
// cover the integer part of the scale factor; the remainder is a partial
// fold of the final gates. When the remainder is odd, parity forces one
// extra gate.
//
// Fold(c, 1) returns a copy of c unchanged.
func Fold(c Circuit, scale float64) (Circuit, error) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale < 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScaleFactor, scale)
	}
	n := len(c)
	if n == 0 {
		return Circuit{}, nil
	}

	target := int(math.Round(scale * float64(n)))
	folded := c.Clone()
	inv := c.Inverse()
	for len(folded)+2*n <= target {
		folded = append(folded, inv...)
		folded = append(folded, c...)
	}
	if rem := target - len(folded); rem > 0 {
		d := (rem + 1) / 2
		tail := folded[len(folded)-d:].Clone()
		folded = append(folded, tail.Inverse()...)
		folded = append(folded, tail...)
	}
	return folded, nil
}
