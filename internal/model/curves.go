package model

// FormationPoint is one (composition, formation energy) pair at a fixed
// temperature. Energies are eV per formula unit relative to the linear
// combination of the two end members at the same temperature.
type FormationPoint struct {
	X      float64 `json:"x"`
	Energy float64 `json:"energy"`
}

// FormationCurve is the formation energy sampled on a regular composition
// grid at one temperature.
type FormationCurve struct {
	TemperatureK float64          `json:"temperature_k"`
	Points       []FormationPoint `json:"points"`
}

// HullSegment is one retained lower-hull facet: a pair of indices into the
// FormationCurve it was computed from. Segments are ordered by the minimum
// x of their two vertices, so iterating them walks the stable-phase boundary
// left to right.
type HullSegment [2]int

// OCVPoint is one (composition, voltage) pair on the fine voltage grid.
type OCVPoint struct {
	X       float64 `json:"x"`
	Voltage float64 `json:"voltage"`
}

// OCVCurve is the open-circuit voltage over the span of the stable hull
// vertices at one temperature. Recomputed per temperature query.
type OCVCurve struct {
	TemperatureK float64    `json:"temperature_k"`
	Points       []OCVPoint `json:"points"`
}
