package ocv

import "ocv-hull/internal/model"

// Row is one point of per-grid-point output on the voltage grid. This is the
// primary artifact for "what the voltage curve looks like" at a temperature.
type Row struct {
	Index      int
	X          float64
	HullEnergy float64
	Voltage    float64
	Stability  model.Stability
}

// Result bundles everything one temperature query produces.
type Result struct {
	TemperatureK float64
	Formation    model.FormationCurve
	Segments     []model.HullSegment
	OCV          model.OCVCurve
	Rows         []Row

	// Summary fields.
	StableVertices int
	VoltageMin     float64
	VoltageMax     float64
	VoltageMean    float64
}

// summarize fills the summary fields from the voltage rows.
func (r *Result) summarize() {
	if len(r.Rows) == 0 {
		return
	}
	min, max, sum := r.Rows[0].Voltage, r.Rows[0].Voltage, 0.0
	for _, row := range r.Rows {
		if row.Voltage < min {
			min = row.Voltage
		}
		if row.Voltage > max {
			max = row.Voltage
		}
		sum += row.Voltage
	}
	r.VoltageMin = min
	r.VoltageMax = max
	r.VoltageMean = sum / float64(len(r.Rows))
}
