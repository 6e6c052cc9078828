// sokotui is a terminal puzzle game for pushing boxes onto goals.
//
// Usage:
//
//	sokotui play [source]     - Play a collection (embedded pack or .xsb file)
//	sokotui list              - List embedded collections
//	sokotui solutions <src>   - Show recorded best solutions
//	sokotui fetch <url>       - Download a collection from the internet
//	sokotui serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to config YAML
//	--db <path>      - Solution database path (default: ~/.sokotui/solutions.db)
//	--save-dir <dir> - Mirror best solutions as plain files in this directory
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkarpows/sokotui/internal/config"
	"github.com/mkarpows/sokotui/internal/solutions"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagSaveDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokotui",
	Short: "Sokotui - box-pushing puzzles in your terminal",
	Long: `Sokotui is a terminal puzzle game: push every box onto a goal
in as few moves as you can. Best solutions are recorded per level.

Available commands:
  play       - Play a collection
  list       - Show embedded collections
  solutions  - View recorded best solutions
  fetch      - Download a collection from a URL
  serve      - Start SSH server for remote play

Examples:
  sokotui play
  sokotui play starter --level 3
  sokotui play ~/puzzles/microban.xsb
  sokotui solutions starter
  sokotui serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Solution database path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagSaveDir, "save-dir", "", "Mirror best solutions as plain files (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(solutionsCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Database = flagDBPath
	}
	if flagSaveDir != "" {
		cfg.Storage.SaveDir = flagSaveDir
	}
	return cfg, nil
}

// openStores opens the solution database plus the optional file mirror.
// A failed database open degrades to no storage; the game still works.
func openStores(cfg config.Config) []solutions.Store {
	var stores []solutions.Store

	store, err := solutions.Open(cfg.Storage.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solution database: %v\n", err)
	} else {
		stores = append(stores, store)
	}

	if cfg.Storage.SaveDir != "" {
		fileStore, err := solutions.NewFileStore(cfg.Storage.SaveDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open save directory: %v\n", err)
		} else {
			stores = append(stores, fileStore)
		}
	}

	return stores
}

func closeStores(stores []solutions.Store) {
	for _, s := range stores {
		s.Close()
	}
}
