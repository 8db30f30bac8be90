package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"ocv-hull/internal/config"
	"ocv-hull/internal/data"
	"ocv-hull/internal/hull"
	"ocv-hull/internal/model"
	"ocv-hull/internal/ocv"
	"ocv-hull/internal/surface"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "ocv":
		cmdOCV(os.Args[2:])
	case "hull":
		cmdHull(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli ocv   --data samples.json --config examples/config.yaml --temp 300 --out results/ocv_300.csv")
	fmt.Println("  cli hull  --data samples.json --config examples/config.yaml --temp 300")
	fmt.Println("  cli sweep --data samples.json --config examples/config.yaml --temps 300,500,800 --outdir results")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - ocv writes a CSV with stability=STABLE/TWO_PHASE per grid point")
	fmt.Println("  - hull prints the formation curve minima and the lower-hull facets")
	fmt.Println("  - sweep writes one CSV per temperature, computed concurrently")
}

func cmdOCV(args []string) {
	fs := flag.NewFlagSet("ocv", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to sample-table JSON (overrides config samples_file)")
	cfgPath := fs.String("config", "", "Path to YAML config")
	tempK := fs.Float64("temp", 0, "Temperature in Kelvin")
	outPath := fs.String("out", "results/ocv.csv", "Output CSV path")
	_ = fs.Parse(args)

	cfg, table := loadInputs(*cfgPath, *dataPath)
	if *tempK <= 0 {
		fmt.Println("--temp is required and must be > 0")
		os.Exit(2)
	}

	pipe, err := ocv.New(pipelineInputs(cfg, table))
	if err != nil {
		panic(err)
	}
	res, err := pipe.Run(*tempK)
	if err != nil {
		panic(err)
	}
	if len(res.Rows) == 0 {
		fmt.Printf("No stable lower-hull facets at T=%.1fK; nothing to write\n", *tempK)
		return
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := ocv.WriteOCVCSV(*outPath, *tempK, res.Rows); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(res.Rows), *outPath)
	fmt.Printf("T=%.1fK stable vertices=%d V=[%.3f, %.3f] mean=%.3f\n",
		*tempK, res.StableVertices, res.VoltageMin, res.VoltageMax, res.VoltageMean)
}

func cmdHull(args []string) {
	fs := flag.NewFlagSet("hull", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to sample-table JSON (overrides config samples_file)")
	cfgPath := fs.String("config", "", "Path to YAML config")
	tempK := fs.Float64("temp", 0, "Temperature in Kelvin")
	_ = fs.Parse(args)

	cfg, table := loadInputs(*cfgPath, *dataPath)
	if *tempK <= 0 {
		fmt.Println("--temp is required and must be > 0")
		os.Exit(2)
	}

	surf, err := surface.New(table)
	if err != nil {
		panic(err)
	}
	curve, err := ocv.NewEvaluator(surf).Curve(*tempK, cfg.Pipeline.Npts)
	if err != nil {
		panic(err)
	}
	segments, err := hull.LowerSegments(curve.Points, cfg.Pipeline.HullTol)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-6s %-10s %-12s %-10s %-12s\n", "facet", "x_lo", "e_lo", "x_hi", "e_hi")
	for i, seg := range segments {
		a, b := curve.Points[seg[0]], curve.Points[seg[1]]
		if b.X < a.X {
			a, b = b, a
		}
		fmt.Printf("%-6d %-10.4f %-12.6f %-10.4f %-12.6f\n", i, a.X, a.Energy, b.X, b.Energy)
	}
	idxs := hull.Vertices(curve.Points, segments)
	fmt.Printf("%d facets, %d stable vertices\n", len(segments), len(idxs))
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to sample-table JSON (overrides config samples_file)")
	cfgPath := fs.String("config", "", "Path to YAML config")
	tempsStr := fs.String("temps", "", "Comma-separated temperatures in Kelvin (overrides config)")
	outDir := fs.String("outdir", "results", "Directory for per-temperature CSVs")
	_ = fs.Parse(args)

	cfg, table := loadInputs(*cfgPath, *dataPath)
	temps := cfg.Temperatures
	if *tempsStr != "" {
		temps = parseTemps(*tempsStr)
	}
	if len(temps) == 0 {
		fmt.Println("no temperatures: set --temps or temperatures in the config")
		os.Exit(2)
	}
	sort.Float64s(temps)

	pipe, err := ocv.New(pipelineInputs(cfg, table))
	if err != nil {
		panic(err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		panic(err)
	}

	entries := pipe.Sweep(temps)
	fmt.Printf("%-10s %-8s %-10s %-10s %-s\n", "temp_k", "stable", "v_min", "v_max", "out")
	for _, e := range entries {
		if e.Err != nil {
			fmt.Printf("%-10.1f error: %v\n", e.TemperatureK, e.Err)
			continue
		}
		if len(e.Result.Rows) == 0 {
			fmt.Printf("%-10.1f no stable facets\n", e.TemperatureK)
			continue
		}
		out := filepath.Join(*outDir, fmt.Sprintf("ocv_%g.csv", e.TemperatureK))
		if err := ocv.WriteOCVCSV(out, e.TemperatureK, e.Result.Rows); err != nil {
			panic(err)
		}
		fmt.Printf("%-10.1f %-8d %-10.3f %-10.3f %-s\n",
			e.TemperatureK, e.Result.StableVertices, e.Result.VoltageMin, e.Result.VoltageMax, out)
	}
}

func loadInputs(cfgPath, dataPath string) (*config.Config, *model.SampleTable) {
	if cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	path := cfg.SamplesFile
	if dataPath != "" {
		path = dataPath
	}
	if path == "" {
		fmt.Println("no sample table: set --data or samples_file in the config")
		os.Exit(2)
	}
	file, err := data.LoadSampleTableJSON(path)
	if err != nil {
		panic(err)
	}
	table, err := model.NewSampleTable(file.Samples)
	if err != nil {
		panic(err)
	}
	return cfg, table
}

func pipelineInputs(cfg *config.Config, table *model.SampleTable) model.PipelineInputs {
	return model.PipelineInputs{
		Table:   table,
		ELiBulk: cfg.Pipeline.ELiBulk,
		Npts:    cfg.Pipeline.Npts,
		Ngrid:   cfg.Pipeline.Ngrid,
		HullTol: cfg.Pipeline.HullTol,
	}
}

func parseTemps(s string) []float64 {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		t, err := strconv.ParseFloat(p, 64)
		if err != nil {
			panic(fmt.Errorf("bad temperature %q: %w", p, err))
		}
		out = append(out, t)
	}
	return out
}
