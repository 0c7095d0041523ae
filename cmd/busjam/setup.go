package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/busjam/internal/config"
	"github.com/vovakirdan/busjam/internal/core"
	"github.com/vovakirdan/busjam/internal/games/busjam"
	"github.com/vovakirdan/busjam/internal/games/busjam/levels"
	"github.com/vovakirdan/busjam/internal/platform/tui"
	"github.com/vovakirdan/busjam/internal/registry"
	"github.com/vovakirdan/busjam/internal/storage"
)

// newLogger builds the process-wide logger from --log-level.
func newLogger() (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "busjam",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	return logger, nil
}

// loadConfig reads the tuning config and applies the difficulty preset.
func loadConfig() (config.BusJamConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.BusJamConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// levelLoader returns the loader for --levels, or the built-in levels.
func levelLoader(logger *log.Logger) *levels.Loader {
	if flagLevelsDir != "" {
		return levels.NewLoader(flagLevelsDir).WithLogger(logger)
	}
	return levels.Builtin().WithLogger(logger)
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}

// app holds everything a playing command needs.
type app struct {
	env    tui.Env
	config config.BusJamConfig
}

// newApp loads config and levels, registers the game modes, and opens the
// store. A store that cannot be opened is only fatal when required.
func newApp(requireStore bool) (*app, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	lvls, err := levelLoader(logger).LoadAll()
	if err != nil {
		return nil, fmt.Errorf("loading levels: %w", err)
	}
	logger.Debug("levels loaded", "count", len(lvls))

	theme, err := tui.ThemeByName(flagTheme)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	if err := busjam.Register(reg, busjam.Settings{Config: cfg, Levels: lvls, Logger: logger}); err != nil {
		return nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		if requireStore {
			return nil, err
		}
		// Continue without storage - the game still works
		logger.Warn("progress will not be saved", "err", err)
		store = nil
	}

	return &app{
		env: tui.Env{
			Registry: reg,
			Levels:   lvls,
			Store:    store,
			Logger:   logger,
			Theme:    theme,
		},
		config: cfg,
	}, nil
}

// Close releases the store.
func (a *app) Close() {
	if a.env.Store != nil {
		a.env.Store.Close()
	}
}
