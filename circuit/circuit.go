// Package circuit models single-qubit Pauli circuits: ordered gate sequences
// equivalent to the identity, with random identity-block generation and
// global folding for noise amplification.
package circuit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGate is returned when a gate label is not one of I, X, Y, Z.
var ErrInvalidGate = errors.New("invalid gate label")

// Gate is a single-qubit Pauli gate label.
type Gate uint8

const (
	I Gate = iota
	X
	Y
	Z
)

func (g Gate) String() string {
	switch g {
	case I:
		return "I"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("Gate(%d)", uint8(g))
	}
}

// IsValid reports whether g is one of the four recognized labels.
func (g Gate) IsValid() bool {
	return g <= Z
}

// Inverse returns the inverse gate. Pauli gates are involutions, so every
// gate is its own inverse.
func (g Gate) Inverse() Gate {
	return g
}

// ParseGate maps a textual label to a Gate.
func ParseGate(s string) (Gate, error) {
	switch s {
	case "I":
		return I, nil
	case "X":
		return X, nil
	case "Y":
		return Y, nil
	case "Z":
		return Z, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidGate, s)
	}
}

// Circuit is an ordered sequence of single-qubit gates, applied left to
// right to the initial state.
type Circuit []Gate

// Depth returns the number of gates in the circuit.
func (c Circuit) Depth() int {
	return len(c)
}

// Clone returns a copy of the circuit that shares no storage with c.
func (c Circuit) Clone() Circuit {
	out := make(Circuit, len(c))
	copy(out, c)
	return out
}

// Inverse returns the circuit implementing the inverse unitary: the gates
// reversed, each replaced by its own inverse.
func (c Circuit) Inverse() Circuit {
	out := make(Circuit, len(c))
	for i, g := range c {
		out[len(c)-1-i] = g.Inverse()
	}
	return out
}

// Validate returns ErrInvalidGate if the circuit contains an unrecognized
// gate label.
func (c Circuit) Validate() error {
	for i, g := range c {
		if !g.IsValid() {
			return fmt.Errorf("%w: gate %d at position %d", ErrInvalidGate, uint8(g), i)
		}
	}
	return nil
}

func (c Circuit) String() string {
	var sb strings.Builder
	for i, g := range c {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(g.String())
	}
	return sb.String()
}
