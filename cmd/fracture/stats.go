package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-fracture/internal/characters"
	"github.com/vovakirdan/neon-fracture/internal/levels"
	"github.com/vovakirdan/neon-fracture/internal/storage"
)

var flagReset bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show or reset the player record",
	Long: `Display credits, progress and counters for a profile.

Examples:
  fracture stats
  fracture stats --profile ssh:alice
  fracture stats --reset`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagReset, "reset", false, "Reset the record and its clear times")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stats database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ResetStats(flagProfile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Printf("Record for %q reset.\n", flagProfile)
		return
	}

	stats, err := store.LoadStats(flagProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stats: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	unlocked := min(stats.HighestLevel+1, levels.Count())
	lastLogin := "never"
	if !stats.LastLogin.IsZero() {
		lastLogin = stats.LastLogin.Local().Format("2006-01-02 15:04")
	}

	fmt.Printf("Player record - %s\n", stats.Profile)
	fmt.Println()
	fmt.Printf("  %-16s %d\n", "Credits", stats.Credits)
	fmt.Printf("  %-16s %d / %d\n", "Sectors open", unlocked, levels.Count())
	fmt.Printf("  %-16s %d\n", "Runs", stats.GamesPlayed)
	fmt.Printf("  %-16s %d\n", "Deaths", stats.TotalDeaths)
	fmt.Printf("  %-16s %s\n", "Frame", characters.ByID(stats.Equipped).Name)
	fmt.Printf("  %-16s %d\n", "Frames owned", len(stats.Inventory))
	fmt.Printf("  %-16s %s\n", "Last played", lastLogin)
}
