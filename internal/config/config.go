package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ocv-hull/internal/ocv"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: default sample-table JSON to load (e.g. examples/tables/*.json).
	// CLI flags override this.
	SamplesFile string `yaml:"samples_file"`

	Pipeline PipelineConfig `yaml:"pipeline"`

	// Temperatures drives `cli sweep` when no --temps flag is given.
	Temperatures []float64 `yaml:"temperatures"`
}

// PipelineConfig holds the query parameters of the pipeline.
type PipelineConfig struct {
	// ELiBulk is the bulk lithium metal reference energy in eV/atom.
	// Required; there is no physically sensible default (and 0 is not one).
	ELiBulk float64 `yaml:"e_li_bulk"`
	// Npts is the formation-energy grid resolution. Defaults to 100.
	Npts int `yaml:"npts"`
	// Ngrid is the voltage grid resolution. Defaults to 500.
	Ngrid int `yaml:"ngrid"`
	// HullTol is the lower-hull vertex tolerance. Defaults to 1e-9.
	HullTol float64 `yaml:"hull_tol"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.Pipeline = withDefaults(c.Pipeline)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config without defaulting or validating it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// Interpret a relative samples_file as relative to the config file
	// directory when that resolves, falling back to the path as given.
	if c.SamplesFile != "" && !filepath.IsAbs(c.SamplesFile) {
		cand := filepath.Join(filepath.Dir(path), c.SamplesFile)
		if _, err := os.Stat(cand); err == nil {
			c.SamplesFile = cand
		}
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Pipeline.ELiBulk == 0 {
		return errors.New("pipeline.e_li_bulk is required")
	}
	if c.Pipeline.Npts < 2 {
		return fmt.Errorf("pipeline.npts must be >= 2, got %d", c.Pipeline.Npts)
	}
	if c.Pipeline.Ngrid < 2 {
		return fmt.Errorf("pipeline.ngrid must be >= 2, got %d", c.Pipeline.Ngrid)
	}
	if c.Pipeline.HullTol < 0 {
		return errors.New("pipeline.hull_tol must be >= 0")
	}
	for i, t := range c.Temperatures {
		if t <= 0 {
			return fmt.Errorf("temperatures[%d] must be > 0, got %v", i, t)
		}
	}
	return nil
}

// MergePipeline overlays non-zero fields from override onto base.
// Used when an API request overrides parts of a configured pipeline.
func MergePipeline(base, override PipelineConfig) PipelineConfig {
	out := base
	if override.ELiBulk != 0 {
		out.ELiBulk = override.ELiBulk
	}
	if override.Npts != 0 {
		out.Npts = override.Npts
	}
	if override.Ngrid != 0 {
		out.Ngrid = override.Ngrid
	}
	if override.HullTol != 0 {
		out.HullTol = override.HullTol
	}
	return out
}

func withDefaults(p PipelineConfig) PipelineConfig {
	if p.Npts == 0 {
		p.Npts = ocv.DefaultNpts
	}
	if p.Ngrid == 0 {
		p.Ngrid = ocv.DefaultNgrid
	}
	if p.HullTol == 0 {
		p.HullTol = ocv.DefaultHullTol
	}
	return p
}
