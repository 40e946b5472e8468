package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/canvas-classifier/internal/api/handlers"
	mw "github.com/donaldgifford/canvas-classifier/internal/api/middleware"
	"github.com/donaldgifford/canvas-classifier/internal/config"
	"github.com/donaldgifford/canvas-classifier/internal/engine"
	"github.com/donaldgifford/canvas-classifier/internal/store"
	"github.com/donaldgifford/canvas-classifier/pkg/logger"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and override scheduler",
		Example: `  canvas-classifier serve
  canvas-classifier serve --config /etc/canvas/config.yaml`,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	startCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	a, err := newApp(startCtx, cfg, log)
	cancel()
	if err != nil {
		return err
	}
	defer a.Close()

	var st store.Store
	if a.store != nil {
		st = a.store

		sched, err := engine.NewScheduler(a.engine, cfg.Overrides.RefreshInterval, log)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start()
		defer func() {
			<-sched.Stop().Done()
			log.Info("scheduler stopped")
		}()
	}

	e := newServer(cfg, a.engine, st, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	// Start server in a goroutine.
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// newServer wires routes and middleware. st may be nil, in which case the
// override CRUD routes are not registered.
func newServer(cfg *config.Config, eng *engine.Engine, st store.Store, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(mw.Recovery(log))
	e.Use(mw.RequestLog(log))
	e.Use(mw.Metrics())
	e.Use(echomw.CORS())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)

	// Prometheus metrics.
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, apiConfig())
	registerAPI(api, eng)
	if st != nil {
		handlers.RegisterOverrideRoutes(api, handlers.NewOverridesHandler(st, eng))
	}

	upload := handlers.NewUploadHandler(eng, cfg.Upload.ResultSuffix, log)
	handlers.RegisterUploadRoutes(e, upload,
		echomw.BodyLimit(strconv.FormatInt(cfg.Upload.MaxBytes, 10)),
		mw.RateLimit(mw.NewLimiter(cfg.Upload.RatePerSecond, cfg.Upload.Burst)),
	)

	return e
}

func apiConfig() huma.Config {
	return huma.DefaultConfig("canvas-classifier API", Version)
}

// registerAPI adds the routes that need no database.
func registerAPI(api huma.API, eng *engine.Engine) {
	handlers.RegisterClassifyRoutes(api, handlers.NewClassifyHandler(eng))
	handlers.RegisterCatalogRoutes(api, handlers.NewCatalogHandler(eng.Classifier().Catalog(), eng.Overrides()))
}
