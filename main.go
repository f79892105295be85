package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MMN3003/tokenrates/src/config"
	cronRepo "github.com/MMN3003/tokenrates/src/cron/repository"
	cronSvc "github.com/MMN3003/tokenrates/src/cron/usecase"
	"github.com/MMN3003/tokenrates/src/logger"
	"github.com/MMN3003/tokenrates/src/metrics"
	"github.com/MMN3003/tokenrates/src/rate/adapter/analyzer"
	cron_adapter "github.com/MMN3003/tokenrates/src/rate/adapter/cron"
	rateHD "github.com/MMN3003/tokenrates/src/rate/delivery/http"
	rate "github.com/MMN3003/tokenrates/src/rate/usecase"

	_ "github.com/MMN3003/tokenrates/docs" // Swagger docs

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.LoadFromEnv()
	logg := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Dependencies ---
	rateMetrics, err := metrics.New(prometheus.DefaultRegisterer)
	if err != nil {
		logg.Fatalf("Failed to register metrics: %v", err)
	}

	cronService := cronSvc.NewService(cronRepo.NewCronRepo(logg), logg)
	engine, err := rate.NewEngine(rate.Config{
		Tokens:            cfg.Rates.Tokens,
		Categories:        cfg.Rates.Categories,
		DefaultPairs:      cfg.Rates.Pairs,
		DemandInfluence:   cfg.Rates.DemandInfluence,
		VolumeInfluence:   cfg.Rates.VolumeInfluence,
		RecomputeInterval: cfg.Rates.RecomputeInterval,
	}, logg.WithField("component", "rate-engine"),
		rate.WithObserver(rateMetrics),
		rate.WithCronGuard(cron_adapter.NewCronPort(cronService, logg.WithField("component", "cron"))),
	)
	if err != nil {
		logg.Fatalf("Failed to build rate engine: %v", err)
	}
	if cfg.Rates.PairsFile != "" {
		logg.Infof("Loaded %d pairs from %s", len(cfg.Rates.Pairs), cfg.Rates.PairsFile)
	}

	contentAnalyzer, err := analyzer.NewMockAnalyzer(cfg.Rates.Keywords, cfg.Rates.FallbackCategory, engine.RecognisesCategory, logg.WithField("component", "analyzer"))
	if err != nil {
		logg.Fatalf("Failed to build content analyzer: %v", err)
	}
	handler := rateHD.NewHandler(engine, contentAnalyzer, logg)

	// --- Router ---
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Core middleware
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logg.Infof("%s %s status:%d duration:%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	})

	// --- Healthcheck ---
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Metrics ---
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- Swagger ---
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- API routes ---
	handler.RegisterRoutes(r)

	// --- Start ---
	if err := engine.Start(); err != nil {
		logg.Fatalf("Failed to start rate scheduler: %v", err)
	}
	defer engine.Stop()

	logg.Infof("Starting service on %s (env=%s)", cfg.ListenAddr, cfg.Env)
	logg.Infof("Swagger UI available at http://localhost%s/swagger/index.html", cfg.ListenAddr)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logg.Infof("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logg.Errorf("Server terminated unexpectedly: %v", err)
		engine.Stop()
		os.Exit(1)
	}
}
