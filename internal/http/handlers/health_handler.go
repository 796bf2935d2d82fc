// README: Health endpoint; reports model readiness.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jdmpulse/internal/modules/estimator"
)

type HealthHandler struct {
	estimator *estimator.Service
}

func NewHealthHandler(est *estimator.Service) *HealthHandler {
	return &HealthHandler{estimator: est}
}

type healthResponse struct {
	Status        string   `json:"status"`
	IsModelLoaded bool     `json:"is_model_loaded"`
	Quantiles     []string `json:"quantiles"`
}

// Health handles GET /health. The service refuses to start without the point
// model, so reaching this handler implies the bundle is loaded.
func (h *HealthHandler) Health(c *gin.Context) {
	quantiles := make([]string, 0, 3)
	for _, q := range h.estimator.LoadedQuantiles() {
		quantiles = append(quantiles, string(q))
	}
	writeJSON(c, http.StatusOK, healthResponse{
		Status:        "ok",
		IsModelLoaded: true,
		Quantiles:     quantiles,
	})
}
