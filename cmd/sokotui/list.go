package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarpows/sokotui/internal/levels"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List embedded collections",
	Long:  `Shows the built-in level collections and how many levels each holds.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	packs := levels.Packs()

	if len(packs) == 0 {
		fmt.Println("No collections available.")
		return
	}

	fmt.Println("Embedded collections:")
	fmt.Println()

	// Calculate column width
	maxNameLen := 4 // "Name" header
	for _, name := range packs {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "Name", "Levels", "Comment")
	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "----", "------", "-------")

	for _, name := range packs {
		col, err := levels.LoadPack(name)
		if err != nil {
			fmt.Printf("  %-*s  %s\n", maxNameLen, name, "(unreadable)")
			continue
		}
		fmt.Printf("  %-*s  %-7d  %s\n", maxNameLen, name, len(col.Levels), col.Comment)
	}

	fmt.Println()
	fmt.Println("Run 'sokotui play <name>' to play a collection.")
}
