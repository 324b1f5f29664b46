package circuit

import "math/rand"

// Source supplies the random choices consumed by ExtendIdentity. It is an
// explicit dependency so callers can substitute a deterministic sequence.
type Source interface {
	// Pauli returns one of X, Y or Z, uniformly at random.
	Pauli() Gate
}

type pseudoSource struct {
	rng *rand.Rand
}

// NewPseudoSource returns a Source backed by math/rand seeded with seed.
// Two sources built with the same seed produce the same gate sequence.
func NewPseudoSource(seed int64) Source {
	return &pseudoSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *pseudoSource) Pauli() Gate {
	return X + Gate(s.rng.Intn(3))
}

// ExtendIdentity appends a four-gate block (p1, p2, p2, p1) to the circuit,
// with p1 and p2 drawn independently from src. Each Pauli squares to the
// identity and the block is a palindrome, so the appended block acts as the
// identity on any state; a circuit built only from such blocks is equivalent
// to the identity regardless of its depth.
func ExtendIdentity(c Circuit, src Source) Circuit {
	p1 := src.Pauli()
	p2 := src.Pauli()
	out := make(Circuit, 0, len(c)+4)
	out = append(out, c...)
	return append(out, p1, p2, p2, p1)
}
