// README: Entry point; loads config and model artifacts, wires services, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jdmpulse/internal/config"
	httptransport "jdmpulse/internal/http"
	"jdmpulse/internal/metrics"
	"jdmpulse/internal/modules/analysis"
	"jdmpulse/internal/modules/duty"
	"jdmpulse/internal/modules/estimator"
	"jdmpulse/internal/modules/features"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The point model is mandatory: no bundle, no service.
	var bundle *estimator.Bundle
	if cfg.Models.RemoteURL != "" {
		bundle, err = estimator.LoadRemoteBundle(ctx, cfg.Models.RemoteURL, cfg.Models.Dir)
	} else {
		bundle, err = estimator.LoadBundle(cfg.Models.Dir)
	}
	if err != nil {
		log.Fatalf("model load: %v", err)
	}

	builder := features.NewBuilder(cfg.Engine.ReferenceYear, bundle.MakeEncoder, bundle.ModelEncoder)
	estimatorSvc := estimator.NewService(bundle, builder)
	calc := duty.NewCalculator(duty.DefaultTariff(), cfg.Engine.ReferenceYear, cfg.Engine.JPYToBDT, cfg.Engine.BDTToUSDDivisor)
	analysisSvc := analysis.NewService(estimatorSvc, calc, cfg.Engine.PlatformFeeRate, cfg.Engine.DefaultWinProb)

	reg := metrics.NewRegistry()
	reg.QuantileModels.Set(float64(len(estimatorSvc.LoadedQuantiles())))

	router := httptransport.NewRouter(analysisSvc, estimatorSvc, cfg.Engine.ReferenceYear, reg)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s (quantile models: %v)", cfg.HTTP.Addr, estimatorSvc.LoadedQuantiles())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
