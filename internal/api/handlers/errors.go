package handlers

import (
	"errors"
	"net/http"

	"ocv-hull/internal/api/models"
	"ocv-hull/internal/model"

	"github.com/gin-gonic/gin"
)

// writePipelineError maps the pipeline error taxonomy onto coded responses.
// Degenerate input is the client's data problem (400); out-of-domain and
// insufficient-hull are valid data that cannot answer this particular query
// (422).
func writePipelineError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	code := "INVALID_INPUT"
	switch {
	case errors.Is(err, model.ErrDegenerateInput):
		code = "DEGENERATE_INPUT"
	case errors.Is(err, model.ErrOutOfDomain):
		status = http.StatusUnprocessableEntity
		code = "OUT_OF_DOMAIN"
	case errors.Is(err, model.ErrInsufficientHull):
		status = http.StatusUnprocessableEntity
		code = "INSUFFICIENT_HULL"
	}
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}
