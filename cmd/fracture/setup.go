package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-fracture/internal/config"
	"github.com/vovakirdan/neon-fracture/internal/core"
	"github.com/vovakirdan/neon-fracture/internal/levels"
	"github.com/vovakirdan/neon-fracture/internal/settings"
	"github.com/vovakirdan/neon-fracture/internal/storage"
)

// loadRunnerConfig loads runner.yaml and applies the difficulty preset.
// An empty difficulty uses the preset named in the file.
func loadRunnerConfig(path, difficulty string) (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(path)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	if difficulty == "" {
		difficulty = string(cfg.Difficulty.Preset)
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	config.ApplyRunnerPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// loadCampaign loads custom sectors from dir, validated against the
// movement in cfg. An empty dir means the built-in campaign, returned as nil.
func loadCampaign(dir string, cfg config.RunnerConfig) ([]levels.Level, error) {
	if dir == "" {
		return nil, nil
	}
	lvls, err := levels.NewLoader(dir, cfg.Tuning()).LoadAll()
	if err != nil {
		return nil, err
	}
	if len(lvls) == 0 {
		return nil, fmt.Errorf("no valid levels in %s", dir)
	}
	return lvls, nil
}

// screenConfig sizes the screen from the terminal. A tick rate of 0 lets
// the saved settings decide.
func screenConfig(cmd *cobra.Command) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = 0
	if cmd.Flags().Changed("fps") {
		cfg.TickRate = flagFPS
	}
	return cfg
}

// openStore opens the stats database. Failure is not fatal for play.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open stats database, progress will not be saved", "err", err)
		return nil
	}
	return store
}

// openSettings loads saved preferences, falling back to in-memory ones.
func openSettings() *settings.Manager {
	m, err := settings.Open()
	if err != nil {
		log.Warn("could not open settings, using defaults", "err", err)
		return settings.New(nil)
	}
	return m
}

// logToFile sends log output to ~/.fracture/fracture.log while a full
// screen program owns the terminal. The returned func restores stderr.
func logToFile() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	dir := filepath.Join(home, ".fracture")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "fracture.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return func() {}
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}
}

// parseSector converts a 1-based sector number to an index.
func parseSector(arg string, count int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid sector %q", arg)
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("sector %d out of range (1-%d)", n, count)
	}
	return n - 1, nil
}
