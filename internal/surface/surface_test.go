package surface

import (
	"testing"

	"ocv-hull/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planeSamples builds samples on E = 2x + 0.01T, which linear interpolation
// must reproduce exactly.
func planeSamples(xs, temps []float64) []model.Sample {
	var out []model.Sample
	for _, t := range temps {
		for _, x := range xs {
			out = append(out, model.Sample{Lithiation: x, TemperatureK: t, Energy: 2*x + 0.01*t})
		}
	}
	return out
}

func mustTable(t *testing.T, samples []model.Sample) *model.SampleTable {
	t.Helper()
	table, err := model.NewSampleTable(samples)
	require.NoError(t, err)
	return table
}

func TestSurfaceReproducesPlane(t *testing.T) {
	table := mustTable(t, planeSamples([]float64{0, 0.25, 0.5, 1}, []float64{300, 500, 800}))
	surf, err := New(table)
	require.NoError(t, err)

	cases := []struct{ x, temp float64 }{
		{0, 300},      // corner sample
		{0.5, 500},    // interior sample
		{0.3, 300},    // between compositions, exact temperature
		{0.5, 400},    // exact composition, between temperatures
		{0.37, 642.5}, // fully interior
		{1, 800},      // far corner
	}
	for _, tc := range cases {
		got, err := surf.Energy(tc.x, tc.temp)
		require.NoError(t, err)
		assert.InDelta(t, 2*tc.x+0.01*tc.temp, got, 1e-12, "x=%v T=%v", tc.x, tc.temp)
	}
}

func TestSurfaceOutOfDomain(t *testing.T) {
	table := mustTable(t, planeSamples([]float64{0, 0.5, 1}, []float64{300, 800}))
	surf, err := New(table)
	require.NoError(t, err)

	_, err = surf.Energy(-0.1, 300)
	require.ErrorIs(t, err, model.ErrOutOfDomain)
	_, err = surf.Energy(1.1, 300)
	require.ErrorIs(t, err, model.ErrOutOfDomain)
	_, err = surf.Energy(0.5, 299.9)
	require.ErrorIs(t, err, model.ErrOutOfDomain)
	_, err = surf.Energy(0.5, 800.1)
	require.ErrorIs(t, err, model.ErrOutOfDomain)
}

func TestSurfaceDomainIsSpanIntersection(t *testing.T) {
	samples := []model.Sample{
		{Lithiation: 0, TemperatureK: 300, Energy: -10},
		{Lithiation: 1, TemperatureK: 300, Energy: -10.1},
		{Lithiation: 0.2, TemperatureK: 500, Energy: -10},
		{Lithiation: 0.8, TemperatureK: 500, Energy: -10.1},
	}
	surf, err := New(mustTable(t, samples))
	require.NoError(t, err)

	xMin, xMax, tMin, tMax := surf.Domain()
	assert.Equal(t, 0.2, xMin)
	assert.Equal(t, 0.8, xMax)
	assert.Equal(t, 300.0, tMin)
	assert.Equal(t, 500.0, tMax)

	// x=0.1 is sampled at 300K but not at 500K, so it is out of domain even
	// for an exact 300K query: one policy everywhere.
	_, err = surf.Energy(0.1, 300)
	require.ErrorIs(t, err, model.ErrOutOfDomain)
}

func TestSurfaceSingleTemperatureIs1D(t *testing.T) {
	samples := []model.Sample{
		{Lithiation: 0, TemperatureK: 300, Energy: -10.0},
		{Lithiation: 0.5, TemperatureK: 300, Energy: -10.3},
		{Lithiation: 1, TemperatureK: 300, Energy: -10.1},
	}
	surf, err := New(mustTable(t, samples))
	require.NoError(t, err)

	got, err := surf.Energy(0.25, 300)
	require.NoError(t, err)
	assert.InDelta(t, -10.15, got, 1e-12)

	// Any other temperature is outside the (degenerate) temperature span.
	_, err = surf.Energy(0.25, 301)
	require.ErrorIs(t, err, model.ErrOutOfDomain)
	_, err = surf.Energy(0.25, 299)
	require.ErrorIs(t, err, model.ErrOutOfDomain)
}

func TestSurfaceDegenerateInputs(t *testing.T) {
	// Too few samples.
	_, err := model.NewSampleTable([]model.Sample{
		{Lithiation: 0, TemperatureK: 300, Energy: -10},
		{Lithiation: 1, TemperatureK: 300, Energy: -10},
	})
	require.ErrorIs(t, err, model.ErrDegenerateInput)

	// Duplicate (x, T) pair.
	_, err = model.NewSampleTable([]model.Sample{
		{Lithiation: 0, TemperatureK: 300, Energy: -10},
		{Lithiation: 0, TemperatureK: 300, Energy: -11},
		{Lithiation: 1, TemperatureK: 300, Energy: -10},
	})
	require.ErrorIs(t, err, model.ErrDegenerateInput)

	// A diagonal line: one composition per temperature, nothing to
	// interpolate along x.
	diag := []model.Sample{
		{Lithiation: 0, TemperatureK: 300, Energy: -10},
		{Lithiation: 0.5, TemperatureK: 500, Energy: -10},
		{Lithiation: 1, TemperatureK: 700, Energy: -10},
	}
	_, err = New(mustTable(t, diag))
	require.ErrorIs(t, err, model.ErrDegenerateInput)

	// Rows that share no composition span.
	split := []model.Sample{
		{Lithiation: 0, TemperatureK: 300, Energy: -10},
		{Lithiation: 0.2, TemperatureK: 300, Energy: -10},
		{Lithiation: 0.8, TemperatureK: 500, Energy: -10},
		{Lithiation: 1, TemperatureK: 500, Energy: -10},
	}
	_, err = New(mustTable(t, split))
	require.ErrorIs(t, err, model.ErrDegenerateInput)
}
