package ocv

import (
	"fmt"
	"sort"

	"ocv-hull/internal/model"

	"gonum.org/v1/gonum/floats"
)

// VoltageCurve derives the open-circuit voltage from the hull-bounded energy:
// evaluate the hull interpolator on ngrid uniform points over the hull-vertex
// span, differentiate numerically (central differences, one-sided at the
// ends), and apply V(x) = -(dE/dx - eLiBulk).
//
// The grid is confined to the hull-vertex span; nothing outside it is defined.
func VoltageCurve(h *HullInterp, eLiBulk float64, ngrid int, tempK float64) (model.OCVCurve, []Row, error) {
	if ngrid < 2 {
		return model.OCVCurve{}, nil, fmt.Errorf("ngrid must be >= 2, got %d", ngrid)
	}

	lo, hi := h.Span()
	xs := floats.Span(make([]float64, ngrid), lo, hi)
	energies := make([]float64, ngrid)
	for i, x := range xs {
		e, err := h.Eval(x)
		if err != nil {
			return model.OCVCurve{}, nil, err
		}
		energies[i] = e
	}

	step := xs[1] - xs[0]
	grad := gradient(energies, step)

	vxs, _ := h.Vertices()
	curve := model.OCVCurve{
		TemperatureK: tempK,
		Points:       make([]model.OCVPoint, ngrid),
	}
	rows := make([]Row, ngrid)
	for i, x := range xs {
		v := -(grad[i] - eLiBulk)
		curve.Points[i] = model.OCVPoint{X: x, Voltage: v}
		rows[i] = Row{
			Index:      i,
			X:          x,
			HullEnergy: energies[i],
			Voltage:    v,
			Stability:  model.StabilityFromVertex(nearVertex(vxs, x, step/2)),
		}
	}
	return curve, rows, nil
}

// gradient is the central-difference derivative of ys on a uniform grid with
// the given spacing, one-sided at both ends.
func gradient(ys []float64, step float64) []float64 {
	n := len(ys)
	out := make([]float64, n)
	out[0] = (ys[1] - ys[0]) / step
	out[n-1] = (ys[n-1] - ys[n-2]) / step
	for i := 1; i < n-1; i++ {
		out[i] = (ys[i+1] - ys[i-1]) / (2 * step)
	}
	return out
}

// nearVertex reports whether x lies within tol of any hull vertex.
func nearVertex(vxs []float64, x, tol float64) bool {
	i := sort.SearchFloat64s(vxs, x)
	if i < len(vxs) && vxs[i]-x <= tol {
		return true
	}
	if i > 0 && x-vxs[i-1] <= tol {
		return true
	}
	return false
}
