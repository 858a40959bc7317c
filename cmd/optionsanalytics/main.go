package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	chartapp "github.com/wyfcoding/optionslab/internal/charting/application"
	charthttp "github.com/wyfcoding/optionslab/internal/charting/interfaces/http"
	pricingapp "github.com/wyfcoding/optionslab/internal/pricing/application"
	pricinghttp "github.com/wyfcoding/optionslab/internal/pricing/interfaces/http"
	simapp "github.com/wyfcoding/optionslab/internal/simulation/application"
	simdomain "github.com/wyfcoding/optionslab/internal/simulation/domain"
	simhttp "github.com/wyfcoding/optionslab/internal/simulation/interfaces/http"
	"github.com/wyfcoding/optionslab/pkg/config"
	"github.com/wyfcoding/optionslab/pkg/logger"
	"github.com/wyfcoding/optionslab/pkg/metrics"
	"github.com/wyfcoding/optionslab/pkg/middleware"
)

func main() {
	configPath := flag.String("config", "configs/config.toml", "path to config file")
	flag.Parse()

	// 1. Config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Logger
	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
		WithCaller: cfg.Logger.WithCaller,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	appLogger := logger.Get()

	// 3. Metrics
	m := metrics.New(cfg.ServiceName)
	if cfg.Metrics.Enabled {
		if err := m.Register(); err != nil {
			log.Fatalf("failed to register metrics: %v", err)
		}
	}

	// 4. Layers
	var samplerFactory simdomain.SamplerFactory
	switch cfg.Simulation.Sampler {
	case "rand":
		samplerFactory = func(seed int64) simdomain.NormalSampler { return simdomain.NewRandSampler(seed) }
	default:
		samplerFactory = func(seed int64) simdomain.NormalSampler { return simdomain.NewLCGSampler(seed) }
	}

	pricingService := pricingapp.NewPricingService(appLogger, m)
	chartingService := chartapp.NewChartingService(appLogger, m)
	simulationService := simapp.NewSimulationService(appLogger, m, samplerFactory, simapp.Limits{
		MaxPaths: cfg.Simulation.MaxPaths,
		MaxSteps: cfg.Simulation.MaxSteps,
	})

	// 5. HTTP
	if cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(middleware.Recovery(), middleware.Logging(), middleware.CORS())
	if cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics(m))
		engine.GET(cfg.Metrics.Path, metrics.Handler())
	}

	pricinghttp.NewHandler(engine, pricingService)
	charthttp.NewHandler(engine, chartingService)
	simhttp.NewHandler(engine, simulationService)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   cfg.ServiceName,
			"version":   cfg.Version,
			"timestamp": time.Now().Unix(),
		})
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	go func() {
		appLogger.Info("server started", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	// 6. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("server shutdown failed", "error", err)
	}
}
