// Package ocv turns an energy surface into formation-energy curves, lower
// convex hulls, and open-circuit-voltage curves, one temperature at a time.
package ocv

import (
	"fmt"

	"ocv-hull/internal/hull"
	"ocv-hull/internal/model"
	"ocv-hull/internal/surface"
)

// Defaults for the configurable resolutions.
const (
	DefaultNpts    = 100
	DefaultNgrid   = 500
	DefaultHullTol = 1e-9
)

// Pipeline owns the read-only surface plus the query parameters. Runs at
// different temperatures share it freely; nothing here mutates after New.
type Pipeline struct {
	surf   *surface.Surface
	inputs model.PipelineInputs
}

// New validates the inputs, applies resolution defaults, and builds the
// interpolation surface once. ELiBulk has no default and must be supplied.
func New(inputs model.PipelineInputs) (*Pipeline, error) {
	if inputs.ELiBulk == 0 {
		return nil, fmt.Errorf("e_li_bulk reference energy is required")
	}
	if inputs.Npts == 0 {
		inputs.Npts = DefaultNpts
	}
	if inputs.Ngrid == 0 {
		inputs.Ngrid = DefaultNgrid
	}
	if inputs.HullTol == 0 {
		inputs.HullTol = DefaultHullTol
	}
	surf, err := surface.New(inputs.Table)
	if err != nil {
		return nil, err
	}
	return &Pipeline{surf: surf, inputs: inputs}, nil
}

// Surface exposes the underlying interpolator for direct energy queries.
func (p *Pipeline) Surface() *surface.Surface { return p.surf }

// Run executes one temperature query: formation curve, lower hull, voltage
// curve. An empty lower hull is a valid result (no composition mixes
// favorably); the OCV curve is then empty rather than an error.
func (p *Pipeline) Run(tempK float64) (*Result, error) {
	ev := NewEvaluator(p.surf)
	curve, err := ev.Curve(tempK, p.inputs.Npts)
	if err != nil {
		return nil, err
	}

	segments, err := hull.LowerSegments(curve.Points, p.inputs.HullTol)
	if err != nil {
		return nil, err
	}

	res := &Result{
		TemperatureK: tempK,
		Formation:    curve,
		Segments:     segments,
		OCV:          model.OCVCurve{TemperatureK: tempK},
	}
	if len(segments) == 0 {
		return res, nil
	}

	hi, err := NewHullInterp(curve.Points, segments)
	if err != nil {
		return nil, err
	}
	res.StableVertices = len(hull.Vertices(curve.Points, segments))

	ocvCurve, rows, err := VoltageCurve(hi, p.inputs.ELiBulk, p.inputs.Ngrid, tempK)
	if err != nil {
		return nil, err
	}
	res.OCV = ocvCurve
	res.Rows = rows
	res.summarize()
	return res, nil
}
