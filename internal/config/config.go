// Package config loads application configuration from YAML.
// Search order: explicit path -> ~/.sokotui/config.yaml -> ./sokotui.yaml
// -> embedded default.
package config

// Config is the full application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Levels  LevelsConfig  `yaml:"levels"`
	Display DisplayConfig `yaml:"display"`
}

// StorageConfig controls where solutions and snapshots live.
type StorageConfig struct {
	// Database is the SQLite path for best solutions and snapshots.
	Database string `yaml:"database"`
	// SaveDir, when set, mirrors best solutions as plain .sav files.
	SaveDir string `yaml:"save_dir"`
}

// LevelsConfig controls where puzzles come from.
type LevelsConfig struct {
	// DefaultPack is the embedded pack opened when no source is given.
	DefaultPack string `yaml:"default_pack"`
	// ExtraDirs are scanned for .xsb files in the source picker.
	ExtraDirs []string `yaml:"extra_dirs"`
}

// DisplayConfig controls rendering.
type DisplayConfig struct {
	// Unicode enables block-drawing glyphs; ASCII symbols otherwise.
	Unicode bool `yaml:"unicode"`
	// ShowBest displays the recorded best next to the live counters.
	ShowBest bool `yaml:"show_best"`
	// DeadlockHints highlights boxes pushed into dead corners.
	DeadlockHints bool `yaml:"deadlock_hints"`
}
