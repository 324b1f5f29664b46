// Package zne estimates zero-noise expectation values of single-qubit
// benchmark circuits.
//
// It grows random Pauli circuits that are equivalent to the identity,
// evaluates the ground-state probability under depolarizing noise at several
// noise scale factors (via global circuit folding), and Richardson-
// extrapolates the sampled values back to zero noise. The per-scale raw
// values and the extrapolated values are collected per circuit depth, ready
// to be handed to an external plotting tool.
package zne

import (
	"github.com/blang/semver/v4"
)

// Version of the zne library
var Version = semver.MustParse("0.2.0")
