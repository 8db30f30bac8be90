package handlers

import (
	"net/http"

	"ocv-hull/internal/api/models"
	"ocv-hull/internal/hull"
	"ocv-hull/internal/model"
	"ocv-hull/internal/ocv"
	"ocv-hull/internal/surface"

	"github.com/gin-gonic/gin"
)

// HullHandler serves the formation curve and its lower hull without
// deriving a voltage curve, so no lithium reference energy is needed.
type HullHandler struct{}

func NewHullHandler() *HullHandler {
	return &HullHandler{}
}

// ComputeHull handles POST /api/v1/hull
func (h *HullHandler) ComputeHull(c *gin.Context) {
	var req models.HullRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if req.Npts == 0 {
		req.Npts = ocv.DefaultNpts
	}
	if req.HullTol == 0 {
		req.HullTol = ocv.DefaultHullTol
	}

	table, err := model.NewSampleTable(req.Samples)
	if err != nil {
		writePipelineError(c, err)
		return
	}
	surf, err := surface.New(table)
	if err != nil {
		writePipelineError(c, err)
		return
	}
	curve, err := ocv.NewEvaluator(surf).Curve(req.TemperatureK, req.Npts)
	if err != nil {
		writePipelineError(c, err)
		return
	}
	segments, err := hull.LowerSegments(curve.Points, req.HullTol)
	if err != nil {
		writePipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.HullResponse{
		Formation: curve,
		Segments:  segments,
	})
}
