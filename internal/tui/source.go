package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarpows/sokotui/internal/levels"
	"github.com/mkarpows/sokotui/internal/sokoban"
)

// SourceItem is one selectable collection source.
type SourceItem struct {
	Name string
	Path string // Empty for embedded packs
}

// Load parses the item's collection.
func (it SourceItem) Load() (*sokoban.Collection, error) {
	if it.Path == "" {
		return levels.LoadPack(it.Name)
	}
	return levels.LoadFile(it.Path)
}

// SetName returns the solution-store set name for the item.
func (it SourceItem) SetName() string {
	if it.Path == "" {
		return it.Name
	}
	return levels.SetName(it.Path)
}

// SourceModel is the Bubble Tea model for the collection picker.
type SourceModel struct {
	items    []SourceItem
	cursor   int
	width    int
	height   int
	selected *SourceItem
	backing  bool
	quitting bool
}

// NewSourceModel builds the picker from embedded packs plus any .xsb
// files found in the extra directories.
func NewSourceModel(extraDirs []string, width, height int) SourceModel {
	var items []SourceItem
	for _, name := range levels.Packs() {
		items = append(items, SourceItem{Name: name})
	}
	for _, dir := range extraDirs {
		items = append(items, scanDir(dir)...)
	}

	return SourceModel{
		items:  items,
		width:  width,
		height: height,
	}
}

// scanDir lists .xsb files in dir. A missing or unreadable directory
// contributes nothing.
func scanDir(dir string) []SourceItem {
	if dir != "" && dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		dir = filepath.Join(home, dir[1:])
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var items []SourceItem
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".xsb") {
			continue
		}
		items = append(items, SourceItem{
			Name: strings.TrimSuffix(e.Name(), ".xsb"),
			Path: filepath.Join(dir, e.Name()),
		})
	}
	return items
}

// Init initializes the picker.
func (m SourceModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m SourceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch menuActionFor(msg.String()) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack:
			m.backing = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			if len(m.items) > 0 {
				selected := m.items[m.cursor]
				m.selected = &selected
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the picker.
func (m SourceModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("S O K O T U I", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a collection", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		label := item.Name
		if item.Path != "" {
			label = fmt.Sprintf("%s (%s)", item.Name, item.Path)
		}
		b.WriteString(centerText(cursor+label, m.width))
		b.WriteString("\n")
	}

	if len(m.items) == 0 {
		b.WriteString(centerText("No collections found", m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(statusStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen source, or nil.
func (m SourceModel) Selected() *SourceItem {
	return m.selected
}

// IsQuitting returns true if the user requested to quit.
func (m SourceModel) IsQuitting() bool {
	return m.quitting
}
