package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"ocv-hull/internal/config"
	"ocv-hull/internal/data"
	"ocv-hull/internal/model"
	"ocv-hull/internal/ocv"
)

// Demo:
// - Load a Monte Carlo sample table from JSON (or fall back to a built-in one)
// - Build the interpolation surface and run one temperature query
// - Print the hull facets and the head of the voltage grid
func main() {
	dataPath := flag.String("data", "", "Path to sample-table JSON (optional; built-in table when empty)")
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	tempK := flag.Float64("temp", 300, "Temperature in Kelvin")
	n := flag.Int("n", 12, "Number of voltage grid rows to print")
	outCSV := flag.String("out", "", "Optional path to write the voltage grid CSV")
	flag.Parse()

	// Defaults (can be overridden via --config).
	inputs := model.PipelineInputs{
		ELiBulk: -1.95,
		Npts:    ocv.DefaultNpts,
		Ngrid:   ocv.DefaultNgrid,
		HullTol: ocv.DefaultHullTol,
	}
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		inputs.ELiBulk = cfg.Pipeline.ELiBulk
		inputs.Npts = cfg.Pipeline.Npts
		inputs.Ngrid = cfg.Pipeline.Ngrid
		inputs.HullTol = cfg.Pipeline.HullTol
	}

	samples := builtinSamples()
	if *dataPath != "" {
		file, err := data.LoadSampleTableJSON(*dataPath)
		if err != nil {
			panic(err)
		}
		if len(file.Samples) == 0 {
			panic("no samples in JSON")
		}
		samples = file.Samples
	}

	table, err := model.NewSampleTable(samples)
	if err != nil {
		panic(err)
	}
	inputs.Table = table

	pipe, err := ocv.New(inputs)
	if err != nil {
		panic(err)
	}
	res, err := pipe.Run(*tempK)
	if err != nil {
		panic(err)
	}

	fmt.Printf("T=%.1fK: %d lower-hull facets, %d stable vertices\n",
		*tempK, len(res.Segments), res.StableVertices)
	for i, seg := range res.Segments {
		a, b := res.Formation.Points[seg[0]], res.Formation.Points[seg[1]]
		fmt.Printf("  facet %d: (%.3f, %.5f) -- (%.3f, %.5f)\n", i, a.X, a.Energy, b.X, b.Energy)
	}

	rows := res.Rows
	if *n < len(rows) {
		rows = rows[:*n]
	}
	fmt.Printf("%-6s %-8s %-12s %-10s %-s\n", "idx", "x", "hull_energy", "voltage", "stability")
	for _, r := range rows {
		fmt.Printf("%-6d %-8.4f %-12.6f %-10.4f %-s\n", r.Index, r.X, r.HullEnergy, r.Voltage, r.Stability)
	}

	if *outCSV != "" {
		if err := os.MkdirAll(filepath.Dir(*outCSV), 0o755); err != nil {
			panic(err)
		}
		if err := ocv.WriteOCVCSV(*outCSV, *tempK, res.Rows); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(res.Rows), *outCSV)
	}
}

// builtinSamples is a small two-temperature table with an ordered phase at
// x=0.5, deep enough to survive on the hull at both temperatures.
func builtinSamples() []model.Sample {
	var out []model.Sample
	for _, t := range []float64{300, 800} {
		for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
			e := -10.0 - 0.1*x - 0.8*x*(1-x)
			if x == 0.5 {
				e -= 0.05 // ground-state well
			}
			out = append(out, model.Sample{Lithiation: x, TemperatureK: t, Energy: e})
		}
	}
	return out
}
