package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/muni-cli/internal/entity"
	"github.com/sells-group/muni-cli/internal/override"
	"github.com/sells-group/muni-cli/internal/pipeline"
	"github.com/sells-group/muni-cli/internal/store"
)

// env holds the initialized store, registry, override table, and pipeline
// shared by the processing commands.
type env struct {
	Store     store.Store
	Registry  *entity.Registry
	Overrides *override.Table
	Pipeline  *pipeline.Pipeline
}

// Close releases resources held by the environment.
func (e *env) Close() {
	if e.Store != nil {
		_ = e.Store.Close()
	}
}

// initEnv opens the store, seeds the registry, loads optional fixture and
// override files, and builds the pipeline. Callers should defer env.Close().
func initEnv(ctx context.Context) (*env, error) {
	st, err := store.Open(ctx, cfg.Store.Driver, cfg.Store.Path, cfg.Store.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}

	reg, err := initRegistry()
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	ovr, err := initOverrides()
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	return &env{
		Store:     st,
		Registry:  reg,
		Overrides: ovr,
		Pipeline:  pipeline.New(cfg, st, reg, ovr),
	}, nil
}

// initRegistry builds the seeded entity registry, extended by the optional
// fixture file from config.
func initRegistry() (*entity.Registry, error) {
	reg := entity.NewSeededRegistry()
	if cfg.Registry.FixturePath != "" {
		n, err := entity.LoadFixture(reg, cfg.Registry.FixturePath)
		if err != nil {
			return nil, eris.Wrap(err, "load registry fixture")
		}
		zap.L().Info("registry fixture loaded",
			zap.String("path", cfg.Registry.FixturePath),
			zap.Int("entities", n),
		)
	}
	return reg, nil
}

// initOverrides loads the per-source override table, empty when unset.
func initOverrides() (*override.Table, error) {
	if cfg.Overrides.Path == "" {
		return override.New(nil), nil
	}
	t, err := override.Load(cfg.Overrides.Path)
	if err != nil {
		return nil, eris.Wrap(err, "load overrides")
	}
	zap.L().Info("overrides loaded",
		zap.String("path", cfg.Overrides.Path),
		zap.Int("sources", t.Len()),
	)
	return t, nil
}
