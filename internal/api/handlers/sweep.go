package handlers

import (
	"net/http"

	"ocv-hull/internal/api/models"
	"ocv-hull/internal/config"
	"ocv-hull/internal/model"
	"ocv-hull/internal/ocv"

	"github.com/gin-gonic/gin"
)

// SweepHandler runs the pipeline at several temperatures and returns
// per-temperature summaries. Failed temperatures report their error instead
// of failing the whole sweep.
type SweepHandler struct {
	base config.PipelineConfig
}

func NewSweepHandler(base config.PipelineConfig) *SweepHandler {
	return &SweepHandler{base: base}
}

// RunSweep handles POST /api/v1/sweep
func (h *SweepHandler) RunSweep(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	table, err := model.NewSampleTable(req.Samples)
	if err != nil {
		writePipelineError(c, err)
		return
	}
	merged := config.MergePipeline(h.base, config.PipelineConfig{
		ELiBulk: req.Pipeline.ELiBulk,
		Npts:    req.Pipeline.Npts,
		Ngrid:   req.Pipeline.Ngrid,
		HullTol: req.Pipeline.HullTol,
	})
	pipe, err := ocv.New(model.PipelineInputs{
		Table:   table,
		ELiBulk: merged.ELiBulk,
		Npts:    merged.Npts,
		Ngrid:   merged.Ngrid,
		HullTol: merged.HullTol,
	})
	if err != nil {
		writePipelineError(c, err)
		return
	}

	entries := pipe.Sweep(req.TemperaturesK)
	resp := models.SweepResponse{Entries: make([]models.SweepEntry, len(entries))}
	for i, e := range entries {
		out := models.SweepEntry{TemperatureK: e.TemperatureK}
		if e.Err != nil {
			out.Error = e.Err.Error()
		} else {
			s := buildSummary(e.Result)
			out.Summary = &s
		}
		resp.Entries[i] = out
	}
	c.JSON(http.StatusOK, resp)
}
