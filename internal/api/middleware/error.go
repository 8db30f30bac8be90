package middleware

import (
	"fmt"
	"net/http"

	"ocv-hull/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts panics into the standard error envelope. The
// pipeline itself never panics on bad data (it returns errors), so anything
// recovered here is a genuine bug.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			msg = v
		case error:
			msg = v.Error()
		case fmt.Stringer:
			msg = v.String()
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
		c.Abort()
	})
}
