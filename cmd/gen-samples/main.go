package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ocv-hull/internal/model"
)

// gen-samples writes a synthetic Monte Carlo sample table for local runs and
// fixtures. The energy model is a regular solution with an optional
// ground-state well at x=0.5:
//
//	E(x,T) = e0*(1-x) + e1*x + w(T)*x*(1-x) - well*exp(-((x-0.5)/0.08)^2)
//	w(T)   = w0 + w1*(T - 300)
//
// Negative w gives favorable mixing; the well carves out a stable ordered
// phase that produces two voltage plateaus.
func main() {
	outPath := flag.String("out", "examples/tables/synthetic.json", "Output JSON path")
	nx := flag.Int("nx", 21, "Compositions per temperature")
	tempsStr := flag.String("temps", "300,500,800", "Comma-separated temperatures in Kelvin")
	e0 := flag.Float64("e0", -10.0, "Delithiated end-member energy (eV/f.u.)")
	e1 := flag.Float64("e1", -10.1, "Lithiated end-member energy (eV/f.u.)")
	w0 := flag.Float64("w0", -0.8, "Mixing energy at 300K (eV/f.u.)")
	w1 := flag.Float64("w1", 2e-4, "Mixing energy slope per Kelvin")
	well := flag.Float64("well", 0.05, "Ground-state well depth at x=0.5 (0 disables)")
	flag.Parse()

	if *nx < 3 {
		fmt.Println("--nx must be >= 3")
		os.Exit(2)
	}
	temps := parseTemps(*tempsStr)
	if len(temps) == 0 {
		fmt.Println("--temps must name at least one temperature")
		os.Exit(2)
	}

	var file model.SampleTableFile
	for _, t := range temps {
		w := *w0 + *w1*(t-300)
		for i := 0; i < *nx; i++ {
			x := float64(i) / float64(*nx-1)
			e := *e0*(1-x) + *e1*x + w*x*(1-x)
			if *well != 0 {
				d := (x - 0.5) / 0.08
				e -= *well * math.Exp(-d*d)
			}
			file.Samples = append(file.Samples, model.Sample{
				Lithiation:   x,
				TemperatureK: t,
				Energy:       e,
			})
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	raw, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile(*outPath, raw, 0o644); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %d samples (%d temperatures x %d compositions) to %s\n",
		len(file.Samples), len(temps), *nx, *outPath)
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
		if err != nil || t <= 0 {
			fmt.Printf("bad temperature %q\n", p)
			os.Exit(2)
		}
		out = append(out, t)
	}
	return out
}
