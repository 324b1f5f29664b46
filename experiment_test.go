package zne

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quno/zne/circuit"
	"github.com/quno/zne/richardson"
	"github.com/quno/zne/simulator"
)

func TestOptionValidation(t *testing.T) {
	assert := require.New(t)

	_, err := New(WithTrials(0))
	assert.Error(err)

	_, err = New(WithNoise(1.5))
	assert.ErrorIs(err, simulator.ErrInvalidNoiseParameter)

	_, err = New(WithScaleFactors())
	assert.ErrorIs(err, richardson.ErrDegenerateInput)

	_, err = New(WithScaleFactors(1, 2, 2))
	assert.ErrorIs(err, richardson.ErrDegenerateInput)

	_, err = New(WithScaleFactors(0.5, 2))
	assert.ErrorIs(err, circuit.ErrInvalidScaleFactor)

	_, err = New(WithSource(nil))
	assert.Error(err)
}

func TestRunShape(t *testing.T) {
	assert := require.New(t)

	const trials = 10
	exp, err := New(WithTrials(trials), WithSource(circuit.NewPseudoSource(1)))
	assert.NoError(err)

	res, err := exp.Run()
	assert.NoError(err)

	assert.Equal([]float64{1, 2, 3, 4}, res.ScaleFactors)
	assert.Equal(0.01, res.Noise)
	assert.Len(res.Depths, trials)
	assert.Len(res.ZeroNoise, trials)
	assert.Len(res.PerScale, 4)
	for i := range res.PerScale {
		assert.Len(res.PerScale[i], trials)
	}
	// trial k runs the depth 4(k+1) circuit
	for k, depth := range res.Depths {
		assert.Equal(4*(k+1), depth)
	}
}

func TestRunNoiseless(t *testing.T) {
	assert := require.New(t)

	exp, err := New(WithTrials(5), WithNoise(0), WithSource(circuit.NewPseudoSource(2)))
	assert.NoError(err)

	res, err := exp.Run()
	assert.NoError(err)
	for i := range res.PerScale {
		for _, v := range res.PerScale[i] {
			assert.Equal(1.0, v)
		}
	}
	for _, v := range res.ZeroNoise {
		assert.InDelta(1.0, v, 1e-12)
	}
}

func TestRunEndToEnd(t *testing.T) {
	assert := require.New(t)

	// single trial: a 4-gate identity circuit under 1% depolarizing noise
	exp, err := New(WithTrials(1), WithSource(circuit.NewPseudoSource(3)))
	assert.NoError(err)

	res, err := exp.Run()
	assert.NoError(err)

	raw := make([]float64, len(res.PerScale))
	for i := range res.PerScale {
		raw[i] = res.PerScale[i][0]
	}

	// one round of ~1% noise per gate over 4 gates
	assert.Less(raw[0], 1.0)
	assert.Greater(raw[0], 0.9)

	// noise amplification: higher scale factors decay further
	for i := 1; i < len(raw); i++ {
		assert.Less(raw[i], raw[i-1])
	}

	// the extrapolated value beats every raw sample
	zeroNoise := res.ZeroNoise[0]
	for i, v := range raw {
		assert.Less(math.Abs(1-zeroNoise), math.Abs(1-v), "scale factor %v", res.ScaleFactors[i])
	}
}

func TestRunDeterministicWithSeed(t *testing.T) {
	assert := require.New(t)

	run := func() *Result {
		exp, err := New(WithTrials(8), WithSource(circuit.NewPseudoSource(99)))
		assert.NoError(err)
		res, err := exp.Run()
		assert.NoError(err)
		return res
	}

	a, b := run(), run()
	assert.Equal(a, b)
}

func TestRunDecayIsMonotonicAcrossScales(t *testing.T) {
	assert := require.New(t)

	exp, err := New(WithTrials(20), WithSource(circuit.NewPseudoSource(5)))
	assert.NoError(err)

	res, err := exp.Run()
	assert.NoError(err)

	// the channel contracts the Bloch vector per gate, so for every trial
	// the scale-4 value sits below the scale-1 value
	for k := 0; k < 20; k++ {
		assert.Less(res.PerScale[3][k], res.PerScale[0][k], "trial %d", k)
	}
}
