package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-fracture/internal/levels"
	"github.com/vovakirdan/neon-fracture/internal/runner"
	"github.com/vovakirdan/neon-fracture/internal/storage"
)

var recordsCmd = &cobra.Command{
	Use:   "records <sector>",
	Short: "Show best clear times for a sector",
	Long: `Display the 10 fastest clears of a sector across all profiles.

Examples:
  fracture records 1
  fracture records 10`,
	Args: cobra.ExactArgs(1),
	Run:  runRecords,
}

func runRecords(_ *cobra.Command, args []string) {
	index, err := parseSector(args[0], levels.Count())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	level, _ := levels.Get(index)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stats database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	clears, err := store.BestClears(index, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("Best Times - %s\n", level.Name)
	fmt.Println()

	if len(clears) == 0 {
		fmt.Println("No clears recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'fracture play --level %d' to set the first time!\n", index+1)
		return
	}

	fmt.Printf("  %-4s  %-9s  %-16s  %s\n", "Rank", "Time", "Runner", "Date")
	fmt.Printf("  %-4s  %-9s  %-16s  %s\n", "----", "----", "------", "----")
	for i, c := range clears {
		fmt.Printf("  %-4d  %-9s  %-16s  %s\n", i+1, runner.FormatDuration(c.Time), c.Profile, c.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	summaries, err := store.LevelSummaries(flagProfile)
	if err == nil {
		if s, ok := summaries[index]; ok && s.Clears > 0 {
			fmt.Println()
			fmt.Printf("Your best: %s over %d clears\n", runner.FormatDuration(s.BestTime), s.Clears)
		}
	}
}
