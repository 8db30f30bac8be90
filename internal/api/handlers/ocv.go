package handlers

import (
	"net/http"

	"ocv-hull/internal/api/models"
	"ocv-hull/internal/config"
	"ocv-hull/internal/data"
	"ocv-hull/internal/model"
	"ocv-hull/internal/ocv"

	"github.com/gin-gonic/gin"
)

// OCVHandler handles voltage-curve requests.
type OCVHandler struct {
	store *data.ResultStore
	base  config.PipelineConfig
}

// NewOCVHandler creates the handler. base supplies server-side defaults
// (including e_li_bulk when the server was started with a config file);
// request fields override it per call.
func NewOCVHandler(store *data.ResultStore, base config.PipelineConfig) *OCVHandler {
	return &OCVHandler{store: store, base: base}
}

// RunOCV handles POST /api/v1/ocv
func (h *OCVHandler) RunOCV(c *gin.Context) {
	var req models.OCVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := h.run(req.Samples, req.Pipeline, req.TemperatureK)
	if err != nil {
		writePipelineError(c, err)
		return
	}

	id := h.store.Put(res)
	c.JSON(http.StatusOK, buildOCVResponse(id, res, req.Options))
}

// GetResult handles GET /api/v1/ocv/:id
func (h *OCVHandler) GetResult(c *gin.Context) {
	id := c.Param("id")
	res, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "no stored result for id " + id,
			},
		})
		return
	}
	// Stored results come back in full.
	c.JSON(http.StatusOK, buildOCVResponse(id, res, models.RequestOptions{
		IncludeFormation: true,
		IncludeGrid:      true,
	}))
}

func (h *OCVHandler) run(samples []model.Sample, params models.PipelineParams, tempK float64) (*ocv.Result, error) {
	table, err := model.NewSampleTable(samples)
	if err != nil {
		return nil, err
	}
	merged := config.MergePipeline(h.base, config.PipelineConfig{
		ELiBulk: params.ELiBulk,
		Npts:    params.Npts,
		Ngrid:   params.Ngrid,
		HullTol: params.HullTol,
	})
	pipe, err := ocv.New(model.PipelineInputs{
		Table:   table,
		ELiBulk: merged.ELiBulk,
		Npts:    merged.Npts,
		Ngrid:   merged.Ngrid,
		HullTol: merged.HullTol,
	})
	if err != nil {
		return nil, err
	}
	return pipe.Run(tempK)
}

func buildOCVResponse(id string, res *ocv.Result, opts models.RequestOptions) models.OCVResponse {
	resp := models.OCVResponse{
		ID:       id,
		Status:   "completed",
		Summary:  buildSummary(res),
		Segments: res.Segments,
		OCV:      res.OCV,
	}
	if opts.IncludeFormation {
		resp.Formation = &res.Formation
	}
	if opts.IncludeGrid {
		resp.Grid = make([]models.GridRow, len(res.Rows))
		for i, r := range res.Rows {
			resp.Grid[i] = models.GridRow{
				Index:      r.Index,
				X:          r.X,
				HullEnergy: r.HullEnergy,
				Voltage:    r.Voltage,
				Stability:  r.Stability,
			}
		}
	}
	return resp
}

func buildSummary(res *ocv.Result) models.Summary {
	return models.Summary{
		TemperatureK:   res.TemperatureK,
		StableVertices: res.StableVertices,
		GridPoints:     len(res.Rows),
		VoltageMin:     res.VoltageMin,
		VoltageMax:     res.VoltageMax,
		VoltageMean:    res.VoltageMean,
	}
}
