package ocv

import (
	"fmt"

	"ocv-hull/internal/model"
	"ocv-hull/internal/surface"

	"gonum.org/v1/gonum/floats"
)

// Evaluator computes formation energies from an interpolation surface by
// subtracting the linear combination of the two end members at the same
// temperature. A fully mixed ideal system therefore sits at zero, and stable
// phases show up as negative points below that baseline.
type Evaluator struct {
	surf *surface.Surface
}

func NewEvaluator(surf *surface.Surface) *Evaluator {
	return &Evaluator{surf: surf}
}

// FormationEnergy is E(x,T) - x*E(1,T) - (1-x)*E(0,T), all three terms at
// the same temperature.
func (e *Evaluator) FormationEnergy(x, tempK float64) (float64, error) {
	ex, err := e.surf.Energy(x, tempK)
	if err != nil {
		return 0, err
	}
	eFull, err := e.surf.Energy(1, tempK)
	if err != nil {
		return 0, err
	}
	eEmpty, err := e.surf.Energy(0, tempK)
	if err != nil {
		return 0, err
	}
	return ex - x*eFull - (1-x)*eEmpty, nil
}

// Curve evaluates the formation energy on npts evenly spaced compositions
// over [0,1].
func (e *Evaluator) Curve(tempK float64, npts int) (model.FormationCurve, error) {
	if npts < 2 {
		return model.FormationCurve{}, fmt.Errorf("npts must be >= 2, got %d", npts)
	}
	xs := floats.Span(make([]float64, npts), 0, 1)
	curve := model.FormationCurve{
		TemperatureK: tempK,
		Points:       make([]model.FormationPoint, npts),
	}
	for i, x := range xs {
		ef, err := e.FormationEnergy(x, tempK)
		if err != nil {
			return model.FormationCurve{}, fmt.Errorf("formation energy at x=%v T=%v: %w", x, tempK, err)
		}
		curve.Points[i] = model.FormationPoint{X: x, Energy: ef}
	}
	return curve, nil
}
