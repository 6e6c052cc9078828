package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkarpows/sokotui/internal/levels"
)

var flagFetchOut string

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Download a collection from a URL",
	Long: `Download and validate a level collection from the internet. The
collection is saved as an .xsb file for offline play.

Examples:
  sokotui fetch https://example.com/levels/pack.xsb
  sokotui fetch https://example.com/levels/pack.xsb --out ~/puzzles/pack.xsb`,
	Args: cobra.ExactArgs(1),
	Run:  runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&flagFetchOut, "out", "", "Output file (default: derived from the URL)")
}

func runFetch(cmd *cobra.Command, args []string) {
	url := args[0]

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	col, err := levels.Fetch(ctx, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := flagFetchOut
	if out == "" {
		out = levels.SetName(url) + ".xsb"
	}

	// Re-render from the parsed levels so the saved file is normalized.
	var text string
	if col.Comment != "" {
		text = "; " + col.Comment + "\n\n"
	}
	for i, lvl := range col.Levels {
		if i > 0 {
			text += "\n"
		}
		text += lvl.Text() + "\n"
	}
	if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", out, err)
		os.Exit(1)
	}

	fmt.Printf("Fetched %d levels", len(col.Levels))
	if col.Comment != "" {
		fmt.Printf(" (%s)", col.Comment)
	}
	fmt.Printf(" -> %s\n", out)
	fmt.Printf("Run 'sokotui play %s' to play.\n", out)
}
