package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkarpows/sokotui/internal/sokoban"
	"github.com/mkarpows/sokotui/internal/solutions"
)

// LevelSelectModel is the Bubble Tea model for the level picker of one
// collection.
type LevelSelectModel struct {
	set      string
	col      *sokoban.Collection
	best     map[uint32]*solutions.Record
	table    table.Model
	width    int
	height   int
	selected int // 1-based level index, 0 = none
	backing  bool
	quitting bool
}

// NewLevelSelectModel creates the level picker. best may be nil when no
// store is available.
func NewLevelSelectModel(set string, col *sokoban.Collection, best map[uint32]*solutions.Record, width, height int) LevelSelectModel {
	m := LevelSelectModel{
		set:    set,
		col:    col,
		best:   best,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates the level table.
func (m *LevelSelectModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 7},
		{Title: "Size", Width: 9},
		{Title: "Best moves", Width: 12},
		{Title: "Best pushes", Width: 12},
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the collection and best scores.
func (m *LevelSelectModel) updateTableRows() {
	rows := make([]table.Row, len(m.col.Levels))
	for i, lvl := range m.col.Levels {
		label := fmt.Sprintf("%d", lvl.Index)
		moves, pushes := "-", "-"
		if rec, ok := m.best[lvl.Fingerprint]; ok {
			label += " *"
			moves = fmt.Sprintf("%d", rec.Solution.MoveCount)
			pushes = fmt.Sprintf("%d", rec.Solution.PushCount)
		}
		rows[i] = table.Row{
			label,
			fmt.Sprintf("%dx%d", lvl.Width, lvl.Height),
			moves,
			pushes,
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the level picker.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the level picker.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch menuActionFor(msg.String()) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack:
			m.backing = true
			return m, nil
		case MenuActionSelect:
			if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.col.Levels) {
				m.selected = cursor + 1
			}
			return m, nil
		}
		// Pass navigation to the table
		m.table, cmd = m.table.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the level picker.
func (m LevelSelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := strings.ToUpper(m.set)
	if m.col.Comment != "" {
		title = fmt.Sprintf("%s - %s", strings.ToUpper(m.set), m.col.Comment)
	}
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerBlock(tableStyle.Render(m.table.View()), m.width))
	b.WriteString("\n\n")

	solved := 0
	for _, lvl := range m.col.Levels {
		if _, ok := m.best[lvl.Fingerprint]; ok {
			solved++
		}
	}
	progress := fmt.Sprintf("Solved %d of %d", solved, len(m.col.Levels))
	if solved == len(m.col.Levels) && solved > 0 {
		progress += "  -  set complete!"
	}
	b.WriteString(statusStyle.Render(centerText(progress, m.width)))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Enter: Play  |  Esc: Back  |  Q: Quit"
	b.WriteString(statusStyle.Render(centerText(controls, m.width)))

	return b.String()
}

// Selected returns the chosen 1-based level index, or 0.
func (m LevelSelectModel) Selected() int {
	return m.selected
}

// IsGoingBack returns true if the user wants the collection picker.
func (m LevelSelectModel) IsGoingBack() bool {
	return m.backing
}

// IsQuitting returns true if the user requested to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}
