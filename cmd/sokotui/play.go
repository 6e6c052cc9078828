package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkarpows/sokotui/internal/levels"
	"github.com/mkarpows/sokotui/internal/sokoban"
	"github.com/mkarpows/sokotui/internal/tui"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [source]",
	Short: "Play a collection",
	Long: `Start playing. With no source, a collection picker opens. The source
may be the name of an embedded pack, a path to an .xsb level file, or an
http(s) URL of one.

Controls:
  Arrows/WASD - Move
  Bksp/U      - Undo
  R           - Restart level
  P           - Replay recorded best
  C / V       - Copy moves / play pasted moves
  F5 / F7     - Save / load position
  Esc         - Back
  Q/Ctrl+C    - Quit

Examples:
  sokotui play
  sokotui play starter
  sokotui play starter --level 3
  sokotui play ~/puzzles/microban.xsb
  sokotui play https://example.com/levels.xsb`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Open this level directly (1-based)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	stores := openStores(cfg)
	defer closeStores(stores)

	clip := tui.SystemClipboard{}

	var app tui.App
	if len(args) == 0 {
		app = tui.NewApp(cfg, stores, clip, width, height)
	} else {
		source := args[0]
		col, set, loadErr := loadSource(source)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", loadErr)
			os.Exit(1)
		}
		if flagLevel > 0 {
			if flagLevel > len(col.Levels) {
				fmt.Fprintf(os.Stderr, "Error: %s has %d levels, no level %d\n", source, len(col.Levels), flagLevel)
				os.Exit(1)
			}
			app = tui.NewAppAtLevel(cfg, stores, clip, set, col, flagLevel, width, height)
		} else {
			app = tui.NewAppWithCollection(cfg, stores, clip, set, col, width, height)
		}
	}

	if err := tui.Run(app); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSource resolves a source argument: an embedded pack name first,
// then an http(s) URL, then a file path.
func loadSource(source string) (*sokoban.Collection, string, error) {
	if !strings.ContainsAny(source, "/\\.") {
		if col, err := levels.LoadPack(source); err == nil {
			return col, source, nil
		}
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		col, err := levels.Fetch(context.Background(), source)
		if err != nil {
			return nil, "", err
		}
		return col, levels.SetName(source), nil
	}
	col, err := levels.LoadFile(source)
	if err != nil {
		return nil, "", err
	}
	return col, levels.SetName(source), nil
}
