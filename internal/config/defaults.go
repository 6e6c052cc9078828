package config

import (
	_ "embed"
)

//go:embed defaults/sokotui.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when no config file
// is found or the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Database: "~/.sokotui/solutions.db",
		},
		Levels: LevelsConfig{
			DefaultPack: "starter",
		},
		Display: DisplayConfig{
			Unicode:       true,
			ShowBest:      true,
			DeadlockHints: true,
		},
	}
}
