package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/canvas-classifier/internal/config"
	"github.com/donaldgifford/canvas-classifier/internal/engine"
	"github.com/donaldgifford/canvas-classifier/internal/store"
	"github.com/donaldgifford/canvas-classifier/pkg/catalog"
	"github.com/donaldgifford/canvas-classifier/pkg/classify"
)

// loadConfig reads --config, or returns the defaults when it is unset.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// loadCatalog reads the configured catalog file or the embedded default.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default()
	}
	return catalog.Load(cfg.Catalog.Path)
}

// app is the engine plus the store it reads overrides from, if any.
type app struct {
	engine *engine.Engine
	store  *store.PostgresStore
}

// Close releases the database pool.
func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
}

// newApp builds an engine from cfg. When a database is configured it
// is connected, migrated and used to load the first override snapshot.
func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	opts := []engine.EngineOption{engine.WithLogger(log)}
	a := &app{}

	if cfg.Database.Enabled() {
		st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		if err := st.Migrate(ctx); err != nil {
			st.Close()
			return nil, fmt.Errorf("running migrations: %w", err)
		}
		a.store = st
		opts = append(opts, engine.WithStore(st))
	}

	a.engine = engine.NewEngine(classify.New(cat), opts...)

	if err := a.engine.RefreshOverrides(ctx); err != nil {
		a.Close()
		return nil, err
	}

	log.Info("catalog loaded",
		"sizes", len(cat.Sizes),
		"type_rules", len(cat.TypeRules),
		"overrides", a.engine.Overrides().Len(),
		"database", cfg.Database.Enabled(),
	)
	return a, nil
}
