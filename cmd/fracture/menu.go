package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-fracture/internal/platform/tui"
	"github.com/vovakirdan/neon-fracture/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a sector from the interactive selector",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a sector.
Leaving a paused, cleared or lost run returns to the menu.

Controls:
  Up/Down/j/k  - Navigate sectors
  Enter/Space  - Play sector
  Tab          - Best times
  C            - Switch to the next owned frame
  B/Esc        - Back to menu (from a paused or finished run)
  Q            - Quit

Examples:
  fracture menu
  fracture menu --fps 30
  fracture menu --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of custom level YAML files")
}

func runMenu(cmd *cobra.Command, _ []string) {
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

	var store *storage.Store
	if campaign == nil {
		store = openStore()
	}

	restore := logToFile()
	runErr := tui.RunSession(tui.SessionOptions{
		Store:    store,
		Profile:  flagProfile,
		Config:   cfg,
		Campaign: campaign,
		Screen:   screenConfig(cmd),
		Settings: openSettings(),
	})
	restore()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
