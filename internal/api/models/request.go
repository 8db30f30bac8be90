package models

import "ocv-hull/internal/model"

// PipelineParams mirrors config.PipelineConfig for JSON requests. Zero
// fields fall back to the server defaults (or the configured values).
type PipelineParams struct {
	ELiBulk float64 `json:"e_li_bulk"`
	Npts    int     `json:"npts"`
	Ngrid   int     `json:"ngrid"`
	HullTol float64 `json:"hull_tol"`
}

// OCVRequest asks for the full pipeline at one temperature.
type OCVRequest struct {
	Samples      []model.Sample `json:"samples" binding:"required"`
	TemperatureK float64        `json:"temperature_k" binding:"required"`
	Pipeline     PipelineParams `json:"pipeline"`
	Options      RequestOptions `json:"options"`
}

// RequestOptions controls response size.
type RequestOptions struct {
	// IncludeFormation includes the dense formation-energy curve.
	IncludeFormation bool `json:"include_formation"`
	// IncludeGrid includes the per-point voltage grid rows.
	IncludeGrid bool `json:"include_grid"`
}

// HullRequest asks for the formation curve and lower hull only; no
// reference energy is needed for that.
type HullRequest struct {
	Samples      []model.Sample `json:"samples" binding:"required"`
	TemperatureK float64        `json:"temperature_k" binding:"required"`
	Npts         int            `json:"npts"`
	HullTol      float64        `json:"hull_tol"`
}

// SweepRequest runs the pipeline at several temperatures.
type SweepRequest struct {
	Samples       []model.Sample `json:"samples" binding:"required"`
	TemperaturesK []float64      `json:"temperatures_k" binding:"required"`
	Pipeline      PipelineParams `json:"pipeline"`
}
