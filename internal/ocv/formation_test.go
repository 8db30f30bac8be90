package ocv

import (
	"testing"

	"ocv-hull/internal/model"
	"ocv-hull/internal/surface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func specScenarioTable(t *testing.T) *model.SampleTable {
	t.Helper()
	table, err := model.NewSampleTable([]model.Sample{
		{Lithiation: 0, TemperatureK: 300, Energy: -10.0},
		{Lithiation: 0.5, TemperatureK: 300, Energy: -10.3},
		{Lithiation: 1, TemperatureK: 300, Energy: -10.1},
	})
	require.NoError(t, err)
	return table
}

func TestFormationEnergyMidpoint(t *testing.T) {
	surf, err := surface.New(specScenarioTable(t))
	require.NoError(t, err)
	ev := NewEvaluator(surf)

	// -10.3 - 0.5*(-10.1) - 0.5*(-10.0) = -0.25
	got, err := ev.FormationEnergy(0.5, 300)
	require.NoError(t, err)
	assert.InDelta(t, -0.25, got, 1e-12)
}

func TestFormationEnergyEndMembersVanish(t *testing.T) {
	var samples []model.Sample
	for _, temp := range []float64{300, 500, 800} {
		for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
			samples = append(samples, model.Sample{
				Lithiation:   x,
				TemperatureK: temp,
				Energy:       -10 - 0.1*x - 0.5*x*(1-x) + 1e-4*temp,
			})
		}
	}
	table, err := model.NewSampleTable(samples)
	require.NoError(t, err)
	surf, err := surface.New(table)
	require.NoError(t, err)
	ev := NewEvaluator(surf)

	for _, temp := range []float64{300, 412.5, 650, 800} {
		for _, x := range []float64{0, 1} {
			got, err := ev.FormationEnergy(x, temp)
			require.NoError(t, err)
			assert.InDelta(t, 0, got, 1e-12, "x=%v T=%v", x, temp)
		}
	}
}

func TestCurveShapeAndResolution(t *testing.T) {
	surf, err := surface.New(specScenarioTable(t))
	require.NoError(t, err)
	ev := NewEvaluator(surf)

	curve, err := ev.Curve(300, 101)
	require.NoError(t, err)
	require.Len(t, curve.Points, 101)
	assert.Equal(t, 0.0, curve.Points[0].X)
	assert.Equal(t, 1.0, curve.Points[100].X)
	assert.InDelta(t, 0, curve.Points[0].Energy, 1e-12)
	assert.InDelta(t, 0, curve.Points[100].Energy, 1e-12)
	assert.InDelta(t, -0.25, curve.Points[50].Energy, 1e-12)

	_, err = ev.Curve(300, 1)
	require.Error(t, err)
}

func TestCurvePropagatesOutOfDomain(t *testing.T) {
	surf, err := surface.New(specScenarioTable(t))
	require.NoError(t, err)
	_, err = NewEvaluator(surf).Curve(350, DefaultNpts)
	require.ErrorIs(t, err, model.ErrOutOfDomain)
}
