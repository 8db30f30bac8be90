package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSampleTableSortsAndValidates(t *testing.T) {
	table, err := NewSampleTable([]Sample{
		{Lithiation: 1, TemperatureK: 800, Energy: -10.1},
		{Lithiation: 0, TemperatureK: 300, Energy: -10.0},
		{Lithiation: 0.5, TemperatureK: 300, Energy: -10.3},
		{Lithiation: 0, TemperatureK: 800, Energy: -10.0},
	})
	require.NoError(t, err)

	// Sorted by (temperature, lithiation).
	assert.Equal(t, 300.0, table.Samples[0].TemperatureK)
	assert.Equal(t, 0.0, table.Samples[0].Lithiation)
	assert.Equal(t, 800.0, table.Samples[3].TemperatureK)
	assert.Equal(t, 1.0, table.Samples[3].Lithiation)

	assert.Equal(t, []float64{300, 800}, table.Temperatures())
}

func TestNewSampleTableRejectsBadSamples(t *testing.T) {
	base := []Sample{
		{Lithiation: 0, TemperatureK: 300, Energy: -10},
		{Lithiation: 0.5, TemperatureK: 300, Energy: -10.3},
		{Lithiation: 1, TemperatureK: 300, Energy: -10.1},
	}

	_, err := NewSampleTable(base[:2])
	require.ErrorIs(t, err, ErrDegenerateInput)

	bad := append(append([]Sample{}, base...), Sample{Lithiation: 1.5, TemperatureK: 300, Energy: -10})
	_, err = NewSampleTable(bad)
	require.Error(t, err)

	bad = append(append([]Sample{}, base...), Sample{Lithiation: 0.25, TemperatureK: 0, Energy: -10})
	_, err = NewSampleTable(bad)
	require.Error(t, err)

	bad = append(append([]Sample{}, base...), Sample{Lithiation: 0.5, TemperatureK: 300, Energy: -9})
	_, err = NewSampleTable(bad)
	require.ErrorIs(t, err, ErrDegenerateInput)
}

func TestStabilityFromVertex(t *testing.T) {
	assert.Equal(t, StabilityStable, StabilityFromVertex(true))
	assert.Equal(t, StabilityTwoPhase, StabilityFromVertex(false))
}
