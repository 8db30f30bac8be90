package models

import "ocv-hull/internal/model"

// OCVResponse is the result of one temperature query.
type OCVResponse struct {
	ID        string                `json:"id,omitempty"`
	Status    string                `json:"status"`
	Summary   Summary               `json:"summary"`
	Segments  []model.HullSegment   `json:"segments"`
	OCV       model.OCVCurve        `json:"ocv"`
	Formation *model.FormationCurve `json:"formation,omitempty"`
	Grid      []GridRow             `json:"grid,omitempty"`
}

// Summary contains the aggregate numbers of one run.
type Summary struct {
	TemperatureK   float64 `json:"temperature_k"`
	StableVertices int     `json:"stable_vertices"`
	GridPoints     int     `json:"grid_points"`
	VoltageMin     float64 `json:"voltage_min"`
	VoltageMax     float64 `json:"voltage_max"`
	VoltageMean    float64 `json:"voltage_mean"`
}

// GridRow is one voltage-grid point in a response.
type GridRow struct {
	Index      int             `json:"index"`
	X          float64         `json:"x"`
	HullEnergy float64         `json:"hull_energy"`
	Voltage    float64         `json:"voltage"`
	Stability  model.Stability `json:"stability"`
}

// HullResponse carries the formation curve and its lower hull.
type HullResponse struct {
	Formation model.FormationCurve `json:"formation"`
	Segments  []model.HullSegment  `json:"segments"`
}

// SweepResponse carries per-temperature summaries.
type SweepResponse struct {
	Entries []SweepEntry `json:"entries"`
}

// SweepEntry is one temperature's outcome in a sweep.
type SweepEntry struct {
	TemperatureK float64  `json:"temperature_k"`
	Summary      *Summary `json:"summary,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// ErrorResponse is the error envelope for all endpoints.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
