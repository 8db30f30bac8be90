// Package surface builds a queryable energy(x, T) function from scattered
// Monte Carlo samples. Interpolation is piecewise linear along composition
// within each sampled temperature, then linear between the two bracketing
// temperatures. Queries outside the sampled domain fail with
// model.ErrOutOfDomain; nothing extrapolates.
package surface

import (
	"fmt"
	"sort"

	"ocv-hull/internal/model"

	"gonum.org/v1/gonum/mat"
)

// Surface is the 2D grid interpolator. It is read-only after construction
// and safe for concurrent queries.
type Surface struct {
	rows []row
	// Composition domain: the intersection of the per-temperature spans, so
	// every in-domain (x, T) has valid bracketing points on both sides.
	xMin, xMax float64
}

// row holds one temperature's samples, sorted by composition.
type row struct {
	tempK float64
	xs    []float64
	es    []float64
}

// New builds a Surface from a validated sample table.
//
// Degeneracy rules:
//   - every temperature with more than one sampled temperature present must
//     contribute at least 2 compositions, otherwise no interpolation along x
//     is possible at that temperature;
//   - a table with exactly one temperature is accepted as a 1D surface
//     (interpolation along x only; any other temperature is out of domain);
//   - any other (near-)collinear point set is rejected.
func New(table *model.SampleTable) (*Surface, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: nil sample table", model.ErrDegenerateInput)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}

	s := &Surface{}
	for _, smp := range table.Samples {
		n := len(s.rows)
		if n == 0 || s.rows[n-1].tempK != smp.TemperatureK {
			s.rows = append(s.rows, row{tempK: smp.TemperatureK})
			n++
		}
		s.rows[n-1].xs = append(s.rows[n-1].xs, smp.Lithiation)
		s.rows[n-1].es = append(s.rows[n-1].es, smp.Energy)
	}

	if len(s.rows) > 1 {
		for _, r := range s.rows {
			if len(r.xs) < 2 {
				return nil, fmt.Errorf("%w: temperature %v has a single composition", model.ErrDegenerateInput, r.tempK)
			}
		}
		if collinear(table.Samples) {
			return nil, fmt.Errorf("%w: samples are collinear in the (x, T) plane", model.ErrDegenerateInput)
		}
	}

	s.xMin = s.rows[0].xs[0]
	s.xMax = s.rows[0].xs[len(s.rows[0].xs)-1]
	for _, r := range s.rows[1:] {
		if lo := r.xs[0]; lo > s.xMin {
			s.xMin = lo
		}
		if hi := r.xs[len(r.xs)-1]; hi < s.xMax {
			s.xMax = hi
		}
	}
	if s.xMin >= s.xMax {
		return nil, fmt.Errorf("%w: temperature rows share no composition span", model.ErrDegenerateInput)
	}
	return s, nil
}

// Domain reports the queryable region: [xMin, xMax] x [tMin, tMax].
func (s *Surface) Domain() (xMin, xMax, tMin, tMax float64) {
	return s.xMin, s.xMax, s.rows[0].tempK, s.rows[len(s.rows)-1].tempK
}

// Energy evaluates the interpolated energy at (x, tempK).
func (s *Surface) Energy(x, tempK float64) (float64, error) {
	if x < s.xMin || x > s.xMax {
		return 0, fmt.Errorf("%w: x=%v outside [%v, %v]", model.ErrOutOfDomain, x, s.xMin, s.xMax)
	}
	tMin, tMax := s.rows[0].tempK, s.rows[len(s.rows)-1].tempK
	if tempK < tMin || tempK > tMax {
		return 0, fmt.Errorf("%w: T=%v outside [%v, %v]", model.ErrOutOfDomain, tempK, tMin, tMax)
	}

	// First row with tempK <= row temperature.
	hi := sort.Search(len(s.rows), func(i int) bool { return s.rows[i].tempK >= tempK })
	if s.rows[hi].tempK == tempK {
		return s.rows[hi].eval(x), nil
	}
	lo := hi - 1
	eLo := s.rows[lo].eval(x)
	eHi := s.rows[hi].eval(x)
	frac := (tempK - s.rows[lo].tempK) / (s.rows[hi].tempK - s.rows[lo].tempK)
	return eLo*(1-frac) + eHi*frac, nil
}

// eval interpolates along composition within one temperature row. The caller
// has already clamped x to the shared span, so bracketing points exist.
func (r row) eval(x float64) float64 {
	if x <= r.xs[0] {
		return r.es[0]
	}
	n := len(r.xs)
	if x >= r.xs[n-1] {
		return r.es[n-1]
	}
	i := sort.SearchFloat64s(r.xs, x)
	if r.xs[i] == x {
		return r.es[i]
	}
	frac := (x - r.xs[i-1]) / (r.xs[i] - r.xs[i-1])
	return r.es[i-1]*(1-frac) + r.es[i]*frac
}

// collinear reports whether the (x, T) coordinates span less than two
// dimensions, via the singular values of the centered coordinate matrix.
func collinear(samples []model.Sample) bool {
	n := len(samples)
	var meanX, meanT float64
	for _, s := range samples {
		meanX += s.Lithiation
		meanT += s.TemperatureK
	}
	meanX /= float64(n)
	meanT /= float64(n)

	coords := mat.NewDense(n, 2, nil)
	for i, s := range samples {
		coords.Set(i, 0, s.Lithiation-meanX)
		coords.Set(i, 1, (s.TemperatureK-meanT)/meanT)
	}
	var svd mat.SVD
	if !svd.Factorize(coords, mat.SVDNone) {
		return true
	}
	sv := svd.Values(nil)
	const rankTol = 1e-12
	return sv[1] <= rankTol*(1+sv[0])
}
