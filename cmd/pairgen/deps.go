package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ersonp/pairgen/internal/application/handlers"
	"github.com/ersonp/pairgen/internal/domain/services"
	"github.com/ersonp/pairgen/internal/infrastructure/config"
)

// Deps holds high-level dependencies for commands.
type Deps struct {
	Config         *config.Config
	Logger         *zap.Logger
	FileOptions    handlers.FileOptions
	RosterHandler  *handlers.RosterHandler
	PairHandler    *handlers.PairHandler
	SessionHandler *handlers.SessionHandler
}

// withDeps loads config, applies flag overrides, builds dependencies and
// calls fn.
func withDeps(cmd *cobra.Command, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	deps, err := buildDeps(cmd, cfg)
	if err != nil {
		return err
	}

	return fn(deps)
}

// buildDeps wires services and handlers for a loaded config.
func buildDeps(cmd *cobra.Command, cfg *config.Config) (*Deps, error) {
	applyFlagOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	mode := cfg.PairingMode()
	categories := cfg.CategorySet()

	strategy, err := services.StrategyFor(mode, categories, len(cfg.Tags))
	if err != nil {
		return nil, err
	}

	rosterService := services.NewRosterService(services.RosterOptions{
		Mode:       mode,
		Categories: categories,
		TagCount:   len(cfg.Tags),
		Flatten:    cfg.FlattenCells,
	})
	engine := services.NewPairingEngine(services.NewRandom(cfg.Seed))
	fileOpts := handlers.FileOptions{Format: cfg.Format, Sheet: cfg.Sheet}

	rosterHandler := handlers.NewRosterHandler(rosterService, logger)
	session := services.NewSession(rosterService, engine, strategy, logger)

	logger.Debug("Configuration resolved",
		zap.String("mode", string(mode)),
		zap.Strings("categories", cfg.Categories),
		zap.Strings("tags", cfg.Tags),
		zap.String("format", cfg.Format),
		zap.Uint64("seed", cfg.Seed))

	return &Deps{
		Config:         cfg,
		Logger:         logger,
		FileOptions:    fileOpts,
		RosterHandler:  rosterHandler,
		PairHandler:    handlers.NewPairHandler(rosterHandler, engine, strategy, logger),
		SessionHandler: handlers.NewSessionHandler(session, fileOpts, logger),
	}, nil
}

// applyFlagOverrides copies explicitly set global flags onto cfg.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if flagChanged(cmd, "mode") {
		cfg.Mode = globals.mode
	}
	if flagChanged(cmd, "format") {
		cfg.Format = globals.format
	}
	if flagChanged(cmd, "sheet") {
		cfg.Sheet = globals.sheet
	}
	if flagChanged(cmd, "seed") {
		cfg.Seed = globals.seed
	}
	if flagChanged(cmd, "flatten") {
		cfg.FlattenCells = globals.flatten
	}
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}
