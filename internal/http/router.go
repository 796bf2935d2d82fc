// README: HTTP router registration.
package http

import (
	"github.com/gin-gonic/gin"

	"jdmpulse/internal/http/handlers"
	"jdmpulse/internal/http/middleware"
	"jdmpulse/internal/metrics"
	"jdmpulse/internal/modules/analysis"
	"jdmpulse/internal/modules/estimator"
)

func NewRouter(
	analysisSvc *analysis.Service,
	estimatorSvc *estimator.Service,
	referenceYear int,
	reg *metrics.Registry,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logging())
	r.Use(middleware.CORS())

	analysisHandler := handlers.NewAnalysisHandler(analysisSvc, referenceYear)
	r.POST("/api/v1/analyze", middleware.Metrics(reg), analysisHandler.Analyze)

	healthHandler := handlers.NewHealthHandler(estimatorSvc)
	r.GET("/health", healthHandler.Health)

	r.GET("/metrics", gin.WrapH(reg.Handler()))

	return r
}
