// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jdmpulse/internal/modules/estimator"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeAnalysisError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, estimator.ErrModelService):
		writeError(c, http.StatusServiceUnavailable, "model service unavailable")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
