package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-fracture/internal/characters"
	"github.com/vovakirdan/neon-fracture/internal/levels"
	"github.com/vovakirdan/neon-fracture/internal/platform/tui"
	"github.com/vovakirdan/neon-fracture/internal/runner"
	"github.com/vovakirdan/neon-fracture/internal/storage"
)

var (
	flagLevel      int
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start the campaign at the highest unlocked sector.

Controls:
  W/A/S/D, arrows  - Move
  Space            - Jump (press again in the air to double jump)
  E/F/L            - Phase dash in the direction you are moving
  P                - Pause
  R                - Restart the sector
  N                - Next sector (after clearing)
  M                - Mute
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - Falls cost 15 HP, fast regeneration
  normal  - Falls cost 25 HP, +1 HP every 200ms
  hard    - Falls cost 34 HP, no regeneration
  fixed   - Values from the config file, untouched

Custom sectors loaded with --levels are practice runs: every sector is
open and nothing is recorded.

Examples:
  fracture play
  fracture play --level 2
  fracture play --difficulty hard
  fracture play --config ./my-runner.yaml
  fracture play --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Sector number to start on (must be unlocked)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of custom level YAML files")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadRunnerConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	campaign, err := loadCampaign(flagLevelsDir, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}
	count := len(campaign)
	if count == 0 {
		count = levels.Count()
	}

	stats := storage.DefaultStats(flagProfile)
	var store *storage.Store
	if campaign == nil {
		store = openStore()
	}
	if store != nil {
		if loaded, loadErr := store.LoadStats(flagProfile); loadErr == nil {
			stats = loaded
		} else {
			logger.Warn("could not load stats", "err", loadErr)
		}
	}

	start := levels.StartIndex(stats.HighestLevel, count)
	if flagLevel != 0 {
		if flagLevel < 1 || flagLevel > count {
			fmt.Fprintf(os.Stderr, "Error: sector %d out of range (1-%d)\n", flagLevel, count)
			os.Exit(1)
		}
		start = flagLevel - 1
		if store != nil && start > stats.HighestLevel {
			fmt.Fprintf(os.Stderr, "Error: sector %d is locked. Clear sector %d first.\n", flagLevel, stats.HighestLevel+1)
			os.Exit(1)
		}
	}

	opts := runner.Options{
		Config:    cfg,
		Campaign:  campaign,
		Character: characters.ByID(stats.Equipped),
	}
	if store != nil {
		opts.Recorder = store.Recorder(flagProfile)
	}

	restore := logToFile()
	runErr := tui.Run(tui.GameOptions{
		Runner:     opts,
		StartIndex: start,
		Screen:     screenConfig(cmd),
		Settings:   openSettings(),
	})
	restore()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
