// Package levels loads puzzle collections from the embedded packs,
// local files, or remote URLs. All sources funnel through the same
// parser, so a pack behaves the same no matter where it came from.
package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mkarpows/sokotui/internal/sokoban"
)

//go:embed packs/*.xsb
var packFS embed.FS

// ErrUnknownPack reports a pack name with no embedded file behind it.
var ErrUnknownPack = fmt.Errorf("levels: unknown pack")

// Packs lists the embedded pack names, sorted.
func Packs() []string {
	entries, err := packFS.ReadDir("packs")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".xsb"))
	}
	sort.Strings(names)
	return names
}

// LoadPack parses one embedded pack by name.
func LoadPack(name string) (*sokoban.Collection, error) {
	data, err := packFS.ReadFile("packs/" + name + ".xsb")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPack, name)
	}
	col, err := sokoban.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: pack %s: %w", name, err)
	}
	return col, nil
}

// LoadFile parses a collection from a local file. A leading ~ expands
// to the home directory.
func LoadFile(path string) (*sokoban.Collection, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("levels: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: cannot read %s: %w", path, err)
	}
	col, err := sokoban.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", path, err)
	}
	return col, nil
}

// SetName derives the solution-store set name for a source: the pack
// name for embedded packs, the base filename without extension for
// files and URLs.
func SetName(source string) string {
	base := filepath.Base(source)
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return base
}
