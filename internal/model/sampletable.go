package model

import (
	"fmt"
	"sort"
)

// SampleTable is the validated, ordered collection of Monte Carlo samples the
// pipeline consumes. Treat it as immutable once a surface has been built from
// it; none of the downstream stages mutate it.
type SampleTable struct {
	Samples []Sample
}

// NewSampleTable validates and wraps a sample slice. The samples are copied
// and sorted by (temperature, lithiation) so downstream grouping is
// deterministic regardless of input order.
func NewSampleTable(samples []Sample) (*SampleTable, error) {
	t := &SampleTable{Samples: make([]Sample, len(samples))}
	copy(t.Samples, samples)
	sort.Slice(t.Samples, func(i, j int) bool {
		a, b := t.Samples[i], t.Samples[j]
		if a.TemperatureK != b.TemperatureK {
			return a.TemperatureK < b.TemperatureK
		}
		return a.Lithiation < b.Lithiation
	})
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the table invariants: at least 3 samples, lithiation in
// [0,1], positive temperatures, and no duplicate (lithiation, temperature)
// pairs. Geometric degeneracy (collinear point sets) is checked when the
// interpolation surface is built, since that is where it matters.
func (t *SampleTable) Validate() error {
	if len(t.Samples) < 3 {
		return fmt.Errorf("%w: need at least 3 samples, got %d", ErrDegenerateInput, len(t.Samples))
	}
	for i, s := range t.Samples {
		if s.Lithiation < 0 || s.Lithiation > 1 {
			return fmt.Errorf("sample %d: lithiation %v outside [0,1]", i, s.Lithiation)
		}
		if s.TemperatureK <= 0 {
			return fmt.Errorf("sample %d: temperature %v must be > 0", i, s.TemperatureK)
		}
		if i > 0 {
			prev := t.Samples[i-1]
			if prev.TemperatureK == s.TemperatureK && prev.Lithiation == s.Lithiation {
				return fmt.Errorf("%w: duplicate sample at x=%v T=%v", ErrDegenerateInput, s.Lithiation, s.TemperatureK)
			}
		}
	}
	return nil
}

// Temperatures returns the distinct temperatures present, ascending.
func (t *SampleTable) Temperatures() []float64 {
	out := make([]float64, 0, 4)
	for _, s := range t.Samples {
		if len(out) == 0 || out[len(out)-1] != s.TemperatureK {
			out = append(out, s.TemperatureK)
		}
	}
	return out
}
