// Package simulator evaluates noisy single-qubit circuits by density-matrix
// propagation. The state space is fixed (one qubit), so the density matrix
// is a 2x2 complex Hermitian matrix handled with plain complex128
// arithmetic.
package simulator

import (
	"errors"
	"fmt"
	"math"

	"github.com/quno/zne/circuit"
	"github.com/quno/zne/debug"
)

// ErrInvalidNoiseParameter is returned when a depolarizing probability is
// outside [0, 1].
var ErrInvalidNoiseParameter = errors.New("noise probability must be in [0, 1]")

// matrix is a 2x2 complex matrix in row-major order.
type matrix [2][2]complex128

var (
	pauliX = matrix{{0, 1}, {1, 0}}
	pauliY = matrix{{0, -1i}, {1i, 0}}
	pauliZ = matrix{{1, 0}, {0, -1}}
)

func mul(a, b matrix) matrix {
	var out matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j]
		}
	}
	return out
}

func add(a, b matrix) matrix {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			a[i][j] += b[i][j]
		}
	}
	return a
}

func scale(a matrix, s complex128) matrix {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			a[i][j] *= s
		}
	}
	return a
}

// conjugate maps rho to u*rho*u†. All gates here are Hermitian Paulis, so u†
// equals u and no adjoint is computed.
func conjugate(u, rho matrix) matrix {
	return mul(mul(u, rho), u)
}

func unitary(g circuit.Gate) (matrix, error) {
	switch g {
	case circuit.I:
		return matrix{{1, 0}, {0, 1}}, nil
	case circuit.X:
		return pauliX, nil
	case circuit.Y:
		return pauliY, nil
	case circuit.Z:
		return pauliZ, nil
	default:
		return matrix{}, fmt.Errorf("%w: %s", circuit.ErrInvalidGate, g)
	}
}

// Depolarizing is a single-qubit depolarizing channel: with probability 1-p
// the state is untouched, with probability p it is replaced by the uniform
// mixture of its X, Y and Z conjugations.
type Depolarizing struct {
	p float64
}

// NewDepolarizing validates p and returns the channel. Validation happens
// here so malformed configuration fails before any simulation work.
func NewDepolarizing(p float64) (Depolarizing, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return Depolarizing{}, fmt.Errorf("%w: %v", ErrInvalidNoiseParameter, p)
	}
	return Depolarizing{p: p}, nil
}

// Probability returns the channel's depolarizing probability.
func (d Depolarizing) Probability() float64 {
	return d.p
}

// apply maps rho to (1-p)*rho + p/3*(X rho X + Y rho Y + Z rho Z).
func (d Depolarizing) apply(rho matrix) matrix {
	if d.p == 0 {
		return rho
	}
	w := complex(d.p/3, 0)
	out := scale(rho, complex(1-d.p, 0))
	out = add(out, scale(conjugate(pauliX, rho), w))
	out = add(out, scale(conjugate(pauliY, rho), w))
	out = add(out, scale(conjugate(pauliZ, rho), w))
	return out
}

// Evaluate folds c by the given scale factor, propagates |0><0| through the
// folded circuit applying the channel after every gate, and returns the
// ground-state probability Re Tr(rho * |0><0|). The result lies in [0, 1] up
// to floating-point error.
func Evaluate(c circuit.Circuit, scaleFactor float64, noise Depolarizing) (float64, error) {
	folded, err := circuit.Fold(c, scaleFactor)
	if err != nil {
		return 0, err
	}

	rho := matrix{{1, 0}, {0, 0}} // |0><0|
	for _, g := range folded {
		u, err := unitary(g)
		if err != nil {
			return 0, err
		}
		rho = noise.apply(conjugate(u, rho))
	}
	debug.Assert(math.Abs(real(rho[0][0]+rho[1][1])-1) < 1e-9, "density matrix trace drifted from 1")
	return real(rho[0][0]), nil
}
