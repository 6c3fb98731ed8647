// fracture is a terminal platformer: run, jump and phase-dash across
// floating neon sectors to reach the goal beacon.
//
// Usage:
//
//	fracture play              - Play from the highest unlocked sector
//	fracture menu              - Pick a sector interactively
//	fracture levels            - List sectors and their lock status
//	fracture characters        - List runner frames
//	fracture equip <id>        - Equip an owned frame
//	fracture stats             - Show or reset the player record
//	fracture records <sector>  - Show best clear times for a sector
//	fracture serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: saved setting, 60)
//	--db <path>        - Set database path (default: ~/.fracture/stats.db)
//	--profile <name>   - Player record to use (default: local)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-fracture/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagProfile string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "fracture",
})

func main() {
	log.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fracture",
	Short: "Neon Fracture - a neon platformer in your terminal",
	Long: `Neon Fracture is a terminal platformer. Run across floating sectors,
double jump over gaps and phase-dash through the void to reach the goal.

Available commands:
  play        - Play the campaign
  menu        - Interactive sector selector
  levels      - List sectors
  characters  - List runner frames
  equip       - Equip an owned frame
  stats       - Show or reset the player record
  records     - Best clear times
  serve       - Start SSH server for remote play

Examples:
  fracture play
  fracture play --level 3 --difficulty hard
  fracture menu
  fracture records 1
  fracture serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second); the saved setting is used when not set")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fracture/stats.db", "Path to stats database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Player record to use")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(equipCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(serveCmd)
}
