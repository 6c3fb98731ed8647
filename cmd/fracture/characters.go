package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-fracture/internal/characters"
	"github.com/vovakirdan/neon-fracture/internal/storage"
)

var charactersCmd = &cobra.Command{
	Use:     "characters",
	Aliases: []string{"frames"},
	Short:   "List runner frames",
	Long: `Shows every runner frame with its rarity, and marks the frames you
own (*) and the one equipped (>).`,
	Args: cobra.NoArgs,
	Run:  runCharacters,
}

var equipCmd = &cobra.Command{
	Use:   "equip <id>",
	Short: "Equip an owned frame",
	Long: `Equips a runner frame from your inventory.

Examples:
  fracture equip frame_v01`,
	Args: cobra.ExactArgs(1),
	Run:  runEquip,
}

func runCharacters(_ *cobra.Command, _ []string) {
	stats := storage.DefaultStats(flagProfile)
	if store := openStore(); store != nil {
		if s, err := store.LoadStats(flagProfile); err == nil {
			stats = s
		}
		store.Close()
	}

	fmt.Println("Frames:")
	fmt.Println()
	for _, c := range characters.All() {
		mark := "  "
		switch {
		case c.ID == stats.Equipped:
			mark = "> "
		case stats.Owns(c.ID):
			mark = "* "
		}
		glyph := lipgloss.NewStyle().Foreground(lipgloss.Color(string(c.Color()))).Render(string(c.Glyph()))
		rarity := lipgloss.NewStyle().Foreground(lipgloss.Color(string(characters.RarityColor(c.Rarity)))).Render(fmt.Sprintf("%-9s", c.Rarity))
		fmt.Printf("  %s%s  %-14s  %s  %s\n", mark, glyph, c.Name, rarity, c.ID)
	}
	fmt.Println()
	fmt.Printf("%d of %d owned. Run 'fracture equip <id>' to switch.\n", len(stats.Inventory), len(characters.All()))
}

func runEquip(_ *cobra.Command, args []string) {
	id := args[0]
	c, ok := characters.Lookup(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown frame %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'fracture characters' to see available frames.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stats database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if _, err := store.Equip(flagProfile, id); err != nil {
		if errors.Is(err, storage.ErrNotOwned) {
			fmt.Fprintf(os.Stderr, "You do not own %s.\n", c.Name)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		store.Close()
		os.Exit(1)
	}
	fmt.Printf("Equipped %s.\n", c.Name)
}
