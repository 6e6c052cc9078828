package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkarpows/sokotui/internal/sokoban"
)

// Board glyph styles.
var (
	wallStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	goalStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	boxStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	boxDoneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	playerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	deadStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	solvedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	playbackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

// glyphSet maps board contents to display strings.
type glyphSet struct {
	Wall      string
	Floor     string
	Goal      string
	Box       string
	BoxOnGoal string
	Player    string
	Blank     string
}

var unicodeGlyphs = glyphSet{
	Wall:      "█",
	Floor:     " ",
	Goal:      "·",
	Box:       "▣",
	BoxOnGoal: "▩",
	Player:    "☻",
	Blank:     " ",
}

var asciiGlyphs = glyphSet{
	Wall:      "#",
	Floor:     " ",
	Goal:      ".",
	Box:       "$",
	BoxOnGoal: "*",
	Player:    "@",
	Blank:     " ",
}

// renderBoard draws the live grid. deadX/deadY mark a box flagged as
// stuck in a corner; negative coordinates mean no highlight.
func renderBoard(g *sokoban.Game, glyphs glyphSet, deadX, deadY int) string {
	lvl := g.Level()
	px, py := g.Player()

	var b strings.Builder
	for y := 0; y < lvl.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < lvl.Width; x++ {
			c := g.Cell(x, y)
			switch {
			case x == px && y == py:
				b.WriteString(playerStyle.Render(glyphs.Player))
			case c.HasBox() && x == deadX && y == deadY:
				b.WriteString(deadStyle.Render(glyphs.Box))
			case c.HasBox() && c.IsGoal():
				b.WriteString(boxDoneStyle.Render(glyphs.BoxOnGoal))
			case c.HasBox():
				b.WriteString(boxStyle.Render(glyphs.Box))
			case c.IsGoal():
				b.WriteString(goalStyle.Render(glyphs.Goal))
			case c.IsWall():
				b.WriteString(wallStyle.Render(glyphs.Wall))
			case c.IsFloor():
				b.WriteString(glyphs.Floor)
			default:
				b.WriteString(glyphs.Blank)
			}
		}
	}
	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers a multi-line block horizontally within width.
func centerBlock(block string, width int) string {
	lines := strings.Split(block, "\n")
	longest := 0
	for _, l := range lines {
		if w := lipgloss.Width(l); w > longest {
			longest = w
		}
	}
	if longest >= width {
		return block
	}
	pad := strings.Repeat(" ", (width-longest)/2)
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
