package ocv

import (
	"fmt"
	"sort"

	"ocv-hull/internal/hull"
	"ocv-hull/internal/model"
)

// HullInterp interpolates formation energy piecewise linearly through the
// stable hull vertices only, ignoring the dense curve between them. That is
// what turns two-phase regions into straight energy segments, and hence the
// voltage curve into flat plateaus with steps at phase boundaries.
//
// It applies the same no-extrapolation policy as the 2D surface: queries
// outside the hull-vertex span fail with model.ErrOutOfDomain.
type HullInterp struct {
	xs []float64
	es []float64
}

// NewHullInterp collects the distinct vertex compositions referenced by the
// retained lower-hull segments and their formation energies. Fails with
// model.ErrInsufficientHull when fewer than 2 distinct vertices exist.
func NewHullInterp(points []model.FormationPoint, segments []model.HullSegment) (*HullInterp, error) {
	idxs := hull.Vertices(points, segments)
	if len(idxs) < 2 {
		return nil, fmt.Errorf("%w: got %d distinct vertices", model.ErrInsufficientHull, len(idxs))
	}
	h := &HullInterp{
		xs: make([]float64, len(idxs)),
		es: make([]float64, len(idxs)),
	}
	for i, idx := range idxs {
		h.xs[i] = points[idx].X
		h.es[i] = points[idx].Energy
	}
	return h, nil
}

// Span reports the composition range covered by the hull vertices.
func (h *HullInterp) Span() (lo, hi float64) {
	return h.xs[0], h.xs[len(h.xs)-1]
}

// Vertices returns copies of the vertex compositions and energies.
func (h *HullInterp) Vertices() (xs, es []float64) {
	xs = append([]float64(nil), h.xs...)
	es = append([]float64(nil), h.es...)
	return xs, es
}

// Eval evaluates the hull-bounded energy at x.
func (h *HullInterp) Eval(x float64) (float64, error) {
	lo, hi := h.Span()
	if x < lo || x > hi {
		return 0, fmt.Errorf("%w: x=%v outside hull span [%v, %v]", model.ErrOutOfDomain, x, lo, hi)
	}
	i := sort.SearchFloat64s(h.xs, x)
	if i < len(h.xs) && h.xs[i] == x {
		return h.es[i], nil
	}
	frac := (x - h.xs[i-1]) / (h.xs[i] - h.xs[i-1])
	return h.es[i-1]*(1-frac) + h.es[i]*frac, nil
}
