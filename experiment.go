package zne

import (
	"fmt"
	"time"

	"github.com/quno/zne/circuit"
	"github.com/quno/zne/debug"
	"github.com/quno/zne/logger"
	"github.com/quno/zne/richardson"
	"github.com/quno/zne/simulator"
)

// Experiment runs a sequence of trials. Trial k extends the benchmark
// circuit by one identity block (depth 4k+4), evaluates the noisy
// ground-state probability at every scale factor, and extrapolates the
// samples to zero noise. Trials are strictly sequential: each one reuses the
// circuit grown by its predecessors.
type Experiment struct {
	trials       int
	scaleFactors []float64
	noise        simulator.Depolarizing
	source       circuit.Source
}

// Option configures an Experiment.
type Option func(*Experiment) error

// WithTrials sets the number of trials (defaults to 75).
func WithTrials(n int) Option {
	return func(e *Experiment) error {
		if n <= 0 {
			return fmt.Errorf("trial count must be positive, got %d", n)
		}
		e.trials = n
		return nil
	}
}

// WithScaleFactors sets the noise scale factors evaluated in every trial
// (defaults to 1, 2, 3, 4). Each must be >= 1 and all must be distinct, so
// that extrapolation is well defined.
func WithScaleFactors(scaleFactors ...float64) Option {
	return func(e *Experiment) error {
		if len(scaleFactors) == 0 {
			return fmt.Errorf("%w: no scale factors", richardson.ErrDegenerateInput)
		}
		for i, s := range scaleFactors {
			if s < 1 {
				return fmt.Errorf("%w: %v", circuit.ErrInvalidScaleFactor, s)
			}
			for j := 0; j < i; j++ {
				if s == scaleFactors[j] {
					return fmt.Errorf("%w: scale factor %v repeated", richardson.ErrDegenerateInput, s)
				}
			}
		}
		e.scaleFactors = append([]float64(nil), scaleFactors...)
		return nil
	}
}

// WithNoise sets the per-gate depolarizing probability (defaults to 0.01).
func WithNoise(p float64) Option {
	return func(e *Experiment) error {
		noise, err := simulator.NewDepolarizing(p)
		if err != nil {
			return err
		}
		e.noise = noise
		return nil
	}
}

// WithSource sets the random source consumed by the circuit generator.
// Defaults to a pseudo-random source seeded with the current time; supply a
// fixed-seed or scripted source for reproducible runs.
func WithSource(src circuit.Source) Option {
	return func(e *Experiment) error {
		if src == nil {
			return fmt.Errorf("random source must not be nil")
		}
		e.source = src
		return nil
	}
}

// New validates the options and returns an Experiment ready to Run.
// Configuration errors surface here, before any simulation work starts.
func New(opts ...Option) (*Experiment, error) {
	noise, _ := simulator.NewDepolarizing(0.01)
	e := &Experiment{
		trials:       75,
		scaleFactors: []float64{1, 2, 3, 4},
		noise:        noise,
		source:       circuit.NewPseudoSource(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Result collects one experiment's samples, indexed by circuit depth.
//
// PerScale has one row per scale factor: PerScale[i][k] is the expectation
// value of the trial-k circuit (depth Depths[k]) evaluated at
// ScaleFactors[i]. ZeroNoise[k] is the Richardson-extrapolated value for the
// same circuit. This is exactly the shape the plotting side consumes.
type Result struct {
	ScaleFactors []float64
	Noise        float64
	Depths       []int
	PerScale     [][]float64
	ZeroNoise    []float64
}

// Run executes the trials and returns the collected samples.
func (e *Experiment) Run() (*Result, error) {
	log := logger.Logger()
	start := time.Now()

	res := &Result{
		ScaleFactors: append([]float64(nil), e.scaleFactors...),
		Noise:        e.noise.Probability(),
		Depths:       make([]int, 0, e.trials),
		PerScale:     make([][]float64, len(e.scaleFactors)),
		ZeroNoise:    make([]float64, 0, e.trials),
	}
	for i := range res.PerScale {
		res.PerScale[i] = make([]float64, 0, e.trials)
	}

	var c circuit.Circuit
	values := make([]float64, len(e.scaleFactors))
	for k := 0; k < e.trials; k++ {
		c = circuit.ExtendIdentity(c, e.source)
		for i, s := range e.scaleFactors {
			v, err := simulator.Evaluate(c, s, e.noise)
			if err != nil {
				if debug.Debug {
					log.Error().Str("stack", debug.Stack()).Msg("evaluation failed")
				}
				return nil, fmt.Errorf("trial %d, scale factor %v: %w", k, s, err)
			}
			values[i] = v
			res.PerScale[i] = append(res.PerScale[i], v)
		}
		zeroNoise, err := richardson.Extrapolate(e.scaleFactors, values)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", k, err)
		}
		res.Depths = append(res.Depths, c.Depth())
		res.ZeroNoise = append(res.ZeroNoise, zeroNoise)
		log.Debug().Int("trial", k).Int("depth", c.Depth()).Float64("zeroNoise", zeroNoise).Msg("trial done")
	}

	log.Info().
		Int("trials", e.trials).
		Int("maxDepth", c.Depth()).
		Float64("noise", e.noise.Probability()).
		Dur("took", time.Since(start)).
		Msg("experiment done")
	return res, nil
}
