package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/config"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctxlog"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/dimension"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/engine"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/executor"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	model    *config.Model
	registry *registry.Registry
	engine   *engine.Engine
	chain    dimension.SummaryChain
	summary  *executor.Summary
}

// NewApp is the constructor for the main application. Reports are written to
// outW and logs to logW. When no modules are given the core modules are
// registered. Any startup failure panics.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load all configuration into the format-agnostic model first.
	cfgModel, err := loader.Load(ctx, appConfig.ConfigPaths...)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	relations, err := loadRelations(ctx, cfgModel.Relations)
	if err != nil {
		panic(err)
	}

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules(relations, logger)
	}
	reg.RegisterModules(modules...)
	logger.Debug("All Go modules registered.", "count", len(modules))

	// Unknown names are skipped by the engine, so this is only reported.
	if err := reg.ValidateNames(ctx, cfgModel.Functions); err != nil {
		logger.Warn("Some configured functions are unavailable.", "error", err)
	}
	eng := engine.New(ctx, reg, cfgModel.Functions...)

	chain, err := buildChain(ctx, eng, cfgModel.Summaries)
	if err != nil {
		panic(fmt.Errorf("failed to build summary chain: %w", err))
	}
	if appConfig.Summary != "" {
		if chain, err = chain.Select(appConfig.Summary); err != nil {
			panic(fmt.Errorf("failed to select summary: %w", err))
		}
	}
	logger.Debug("Summary chain built.", "units", chain.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		model:    cfgModel,
		registry: reg,
		engine:   eng,
		chain:    chain,
		summary:  executor.NewSummary(executor.NewStream(eng)),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Engine returns the evaluation engine the summaries run on.
func (a *App) Engine() *engine.Engine {
	return a.engine
}

// Chain returns the summary units the app runs, in order.
func (a *App) Chain() dimension.SummaryChain {
	return a.chain
}
