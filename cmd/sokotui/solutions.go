package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var solutionsCmd = &cobra.Command{
	Use:   "solutions <source>",
	Short: "Show recorded best solutions",
	Long: `Display the recorded best solution for each level of a collection.

Examples:
  sokotui solutions starter
  sokotui solutions ~/puzzles/microban.xsb`,
	Args: cobra.ExactArgs(1),
	Run:  runSolutions,
}

func runSolutions(cmd *cobra.Command, args []string) {
	source := args[0]

	col, set, err := loadSource(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	stores := openStores(cfg)
	defer closeStores(stores)
	if len(stores) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no solution store available")
		os.Exit(1)
	}

	best, err := stores[0].BestAll(set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solutions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best solutions - %s\n", set)
	fmt.Println()

	// Print header
	fmt.Printf("  %-6s  %-10s  %-6s  %-7s  %s\n", "Level", "Id", "Moves", "Pushes", "Solution")
	fmt.Printf("  %-6s  %-10s  %-6s  %-7s  %s\n", "-----", "--", "-----", "------", "--------")

	solved := 0
	for _, lvl := range col.Levels {
		rec, ok := best[lvl.Fingerprint]
		if !ok {
			fmt.Printf("  %-6d  %08X  %-6s  %-7s  %s\n", lvl.Index, lvl.Fingerprint, "-", "-", "-")
			continue
		}
		solved++
		fmt.Printf("  %-6d  %08X  %-6d  %-7d  %s\n",
			lvl.Index, lvl.Fingerprint, rec.Solution.MoveCount, rec.Solution.PushCount, rec.Solution.Encoded)
	}

	fmt.Println()
	fmt.Printf("Solved %d of %d levels.\n", solved, len(col.Levels))
}
