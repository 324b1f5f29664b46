package richardson

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestExtrapolateLinear(t *testing.T) {
	assert := require.New(t)

	// two points on y = 1 - 0.1x
	v, err := Extrapolate([]float64{1, 2}, []float64{0.9, 0.8})
	assert.NoError(err)
	assert.InDelta(1.0, v, 1e-12)
}

func TestExtrapolateExactCubic(t *testing.T) {
	assert := require.New(t)

	cubic := func(x float64) float64 {
		return 0.97 - 0.031*x + 0.0042*x*x - 0.00037*x*x*x
	}
	scales := []float64{1, 2, 3, 4}
	values := make([]float64, len(scales))
	for i, s := range scales {
		values[i] = cubic(s)
	}

	v, err := Extrapolate(scales, values)
	assert.NoError(err)
	assert.InDelta(cubic(0), v, 1e-9)
}

func TestExtrapolateSinglePoint(t *testing.T) {
	assert := require.New(t)

	// convention: a single sample is returned unchanged
	v, err := Extrapolate([]float64{1.0}, []float64{0.73})
	assert.NoError(err)
	assert.Equal(0.73, v)
}

func TestExtrapolateDegenerate(t *testing.T) {
	assert := require.New(t)

	_, err := Extrapolate([]float64{2.0, 2.0}, []float64{0.5, 0.9})
	assert.ErrorIs(err, ErrDegenerateInput)

	_, err = Extrapolate(nil, nil)
	assert.ErrorIs(err, ErrDegenerateInput)

	_, err = Extrapolate([]float64{1, 2, 3}, []float64{0.5, 0.6})
	assert.ErrorIs(err, ErrDegenerateInput)
}

func TestExtrapolateRecoversPolynomials(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("degree-3 polynomials through 4 points are recovered at 0", prop.ForAll(
		func(c0, c1, c2, c3 float64) bool {
			poly := func(x float64) float64 {
				return c0 + c1*x + c2*x*x + c3*x*x*x
			}
			scales := []float64{1, 2, 3, 4}
			values := make([]float64, len(scales))
			for i, s := range scales {
				values[i] = poly(s)
			}
			v, err := Extrapolate(scales, values)
			if err != nil {
				return false
			}
			return math.Abs(v-c0) <= 1e-9
		},
		gen.Float64Range(-1, 1),
		gen.Float64Range(-1, 1),
		gen.Float64Range(-1, 1),
		gen.Float64Range(-1, 1),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
