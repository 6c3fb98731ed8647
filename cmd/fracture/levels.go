package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-fracture/internal/levels"
	"github.com/vovakirdan/neon-fracture/internal/physics"
	"github.com/vovakirdan/neon-fracture/internal/runner"
	"github.com/vovakirdan/neon-fracture/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List sectors",
	Long: `Shows the campaign sectors with their lock status and your best time.
With --levels, lists and validates a directory of custom sectors instead.

Examples:
  fracture levels
  fracture levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of custom level YAML files")
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Runner config YAML to validate custom levels against")
}

func runLevels(_ *cobra.Command, _ []string) {
	if flagLevelsDir != "" {
		cfg, err := loadRunnerConfig(flagConfig, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		listCustomLevels(flagLevelsDir, cfg.Tuning())
		return
	}

	stats := storage.DefaultStats(flagProfile)
	var summaries map[int]storage.LevelSummary
	if store := openStore(); store != nil {
		if s, err := store.LoadStats(flagProfile); err == nil {
			stats = s
		}
		summaries, _ = store.LevelSummaries(flagProfile)
		store.Close()
	}

	fmt.Println("Sectors:")
	fmt.Println()
	fmt.Printf("  %-3s  %-26s  %-8s  %s\n", "#", "Name", "Status", "Best")
	fmt.Printf("  %-3s  %-26s  %-8s  %s\n", "--", "----", "------", "----")

	for i, l := range levels.All() {
		status := "open"
		if i > stats.HighestLevel {
			status = "locked"
		}
		best := "-"
		if s, ok := summaries[i]; ok && s.Clears > 0 {
			best = fmt.Sprintf("%s (%d clears)", runner.FormatDuration(s.BestTime), s.Clears)
		}
		fmt.Printf("  %-3d  %-26s  %-8s  %s\n", i+1, l.Name, status, best)
	}

	fmt.Println()
	fmt.Println("Run 'fracture play --level <#>' to play an unlocked sector.")
}

func listCustomLevels(dir string, tuning physics.Tuning) {
	loader := levels.NewLoader(dir, tuning)
	lvls, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(lvls) == 0 {
		fmt.Printf("No valid levels in %s.\n", dir)
		return
	}

	fmt.Printf("Custom sectors in %s:\n", dir)
	fmt.Println()
	for i, l := range lvls {
		fmt.Printf("  %-3d  %-26s  %2d platforms  %s\n", i+1, l.Name, len(l.Platforms), l.FilePath)
	}
}
