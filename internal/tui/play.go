package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarpows/sokotui/internal/config"
	"github.com/mkarpows/sokotui/internal/sokoban"
	"github.com/mkarpows/sokotui/internal/solutions"
)

// playbackTickMsg advances an in-progress solution replay.
type playbackTickMsg time.Time

// playbackInterval is the delay between replayed moves.
const playbackInterval = 120 * time.Millisecond

func playbackTick() tea.Cmd {
	return tea.Tick(playbackInterval, func(t time.Time) tea.Msg {
		return playbackTickMsg(t)
	})
}

// PlayModel is the Bubble Tea model for playing one level.
type PlayModel struct {
	set     string
	setFps  []uint32
	game    *sokoban.Game
	stores  []solutions.Store
	clip    Clipboard
	display config.DisplayConfig
	keys    PlayKeyMap
	help    help.Model
	glyphs  glyphSet

	width  int
	height int
	status string

	// Highlighted stuck box; -1 when none.
	deadX, deadY int

	// Active replay state.
	playback []sokoban.Move
	playIdx  int
	playing  bool

	bestSaved  bool
	setCleared bool
	wantNext   bool
	backing    bool
	quitting   bool
}

// NewPlayModel creates the puzzle screen for a level. setFps holds the
// fingerprints of every level in the set, so finishing the last
// unsolved one can be called out. stores may be
// empty; the first store is used for reads, all stores receive writes.
func NewPlayModel(set string, setFps []uint32, level *sokoban.Level, stores []solutions.Store, clip Clipboard, display config.DisplayConfig, width, height int) PlayModel {
	glyphs := asciiGlyphs
	if display.Unicode {
		glyphs = unicodeGlyphs
	}
	h := help.New()
	h.ShowAll = false

	return PlayModel{
		set:     set,
		setFps:  setFps,
		game:    sokoban.NewGame(level),
		stores:  stores,
		clip:    clip,
		display: display,
		keys:    DefaultPlayKeyMap(),
		help:    h,
		glyphs:  glyphs,
		width:   width,
		height:  height,
		deadX:   -1,
		deadY:   -1,
	}
}

// Init initializes the puzzle screen.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case playbackTickMsg:
		return m.handlePlaybackTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	// Any other key interrupts a running replay.
	if m.playing {
		m.stopPlayback("replay interrupted")
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.backing = true
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.move(sokoban.Up)
	case key.Matches(msg, m.keys.Down):
		return m.move(sokoban.Down)
	case key.Matches(msg, m.keys.Left):
		return m.move(sokoban.Left)
	case key.Matches(msg, m.keys.Right):
		return m.move(sokoban.Right)

	case key.Matches(msg, m.keys.Undo):
		if err := m.game.Undo(); err != nil {
			m.status = "nothing to undo"
		} else {
			m.clearTransient()
			m.bestSaved = false
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.game.Reset()
		m.clearTransient()
		m.bestSaved = false
		return m, nil

	case key.Matches(msg, m.keys.Playback):
		return m.startBestPlayback()

	case key.Matches(msg, m.keys.Copy):
		m.copyMoves()
		return m, nil

	case key.Matches(msg, m.keys.Paste):
		return m.pasteMoves()

	case key.Matches(msg, m.keys.SavePos):
		m.savePosition()
		return m, nil

	case key.Matches(msg, m.keys.LoadPos):
		m.loadPosition()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if m.game.Solved() {
			m.wantNext = true
		}
		return m, nil
	}

	return m, nil
}

// move commits one move and reacts to its outcome.
func (m PlayModel) move(dir sokoban.Direction) (tea.Model, tea.Cmd) {
	if m.game.Solved() {
		return m, nil
	}

	res := m.game.Move(dir, true)
	if !res.Legal {
		return m, nil
	}
	m.clearTransient()

	if res.Pushed && res.CornerDeadlock && m.display.DeadlockHints {
		px, py := m.game.Player()
		dx, dy := dir.Delta()
		m.deadX, m.deadY = px+dx, py+dy
		m.status = "box is stuck in a corner, undo or restart"
	}

	if res.Solved {
		m.recordSolution()
	}

	return m, nil
}

// recordSolution saves the finished ledger as a candidate best.
func (m *PlayModel) recordSolution() {
	if m.bestSaved {
		return
	}
	m.bestSaved = true

	sol := sokoban.SolutionFromHistory(m.game.History())
	m.status = fmt.Sprintf("solved in %d moves, %d pushes", sol.MoveCount, sol.PushCount)

	improved := false
	for _, store := range m.stores {
		saved, err := store.SaveIfBetter(m.set, m.game.Level().Fingerprint, *sol)
		if err == nil && saved {
			improved = true
		}
	}
	if improved {
		m.status += "  (new best)"
	}
	m.setCleared = m.wholeSetSolved()
}

// wholeSetSolved reports whether every level of the set now has a
// recorded solution.
func (m *PlayModel) wholeSetSolved() bool {
	if len(m.setFps) == 0 || len(m.stores) == 0 {
		return false
	}
	best, err := m.stores[0].BestAll(m.set)
	if err != nil {
		return false
	}
	for _, fp := range m.setFps {
		if _, ok := best[fp]; !ok {
			return false
		}
	}
	return true
}

// startBestPlayback resets the level and replays the recorded best.
func (m PlayModel) startBestPlayback() (tea.Model, tea.Cmd) {
	if len(m.stores) == 0 {
		m.status = "no solution store available"
		return m, nil
	}
	rec, err := m.stores[0].Best(m.set, m.game.Level().Fingerprint)
	if err != nil {
		m.status = "no best solution recorded yet"
		return m, nil
	}
	moves, err := rec.Solution.Moves()
	if err != nil {
		m.status = "recorded solution is corrupt"
		return m, nil
	}
	return m.startPlayback(moves)
}

// startPlayback resets the level and animates the given moves.
func (m PlayModel) startPlayback(moves []sokoban.Move) (tea.Model, tea.Cmd) {
	m.game.Reset()
	m.clearTransient()
	m.bestSaved = false
	m.playback = moves
	m.playIdx = 0
	m.playing = true
	m.status = "replaying..."
	return m, playbackTick()
}

// handlePlaybackTick applies the next replay move.
func (m PlayModel) handlePlaybackTick() (tea.Model, tea.Cmd) {
	if !m.playing {
		return m, nil
	}
	if m.playIdx >= len(m.playback) {
		m.stopPlayback("replay finished")
		if m.game.Solved() {
			m.recordSolution()
		}
		return m, nil
	}

	res := m.game.Move(m.playback[m.playIdx].Dir, true)
	if !res.Legal {
		m.stopPlayback("replay does not fit this level")
		return m, nil
	}
	m.playIdx++

	if res.Solved {
		m.stopPlayback("")
		m.recordSolution()
		return m, nil
	}
	return m, playbackTick()
}

func (m *PlayModel) stopPlayback(status string) {
	m.playing = false
	m.playback = nil
	m.status = status
}

// copyMoves puts the current ledger on the clipboard, tagged with the
// level fingerprint so the origin survives a round trip.
func (m *PlayModel) copyMoves() {
	if m.clip == nil {
		m.status = "no clipboard available"
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "; Level id: %08X\n\n", m.game.Level().Fingerprint)
	b.WriteString(m.game.Level().Text())
	b.WriteString("\n\n")
	if m.game.Moves() > 0 {
		fmt.Fprintf(&b, "; Solution\n; %s\n", m.game.History().EncodeRLE())
	} else {
		b.WriteString("; No solution available\n")
	}
	if err := m.clip.Write(b.String()); err != nil {
		m.status = "clipboard write failed"
		return
	}
	m.status = fmt.Sprintf("%d moves copied", m.game.Moves())
}

// pasteMoves replays a solution string from the clipboard.
func (m PlayModel) pasteMoves() (tea.Model, tea.Cmd) {
	if m.clip == nil {
		m.status = "no clipboard available"
		return m, nil
	}
	text, err := m.clip.Read()
	if err != nil {
		m.status = "clipboard read failed"
		return m, nil
	}
	moves, err := sokoban.DecodeSolution(extractSolution(text))
	if err != nil {
		m.status = "clipboard does not hold a valid solution"
		return m, nil
	}
	return m.startPlayback(moves)
}

// savePosition stores the current ledger as a named snapshot.
func (m *PlayModel) savePosition() {
	if len(m.stores) == 0 {
		m.status = "no solution store available"
		return
	}
	if err := m.stores[0].SaveSnapshot(m.set, m.game.Level().Fingerprint, m.game.History().EncodeRLE()); err != nil {
		m.status = "could not save position"
		return
	}
	m.status = "position saved"
}

// loadPosition restores the saved snapshot by replaying it.
func (m *PlayModel) loadPosition() {
	if len(m.stores) == 0 {
		m.status = "no solution store available"
		return
	}
	snap, err := m.stores[0].Snapshot(m.set, m.game.Level().Fingerprint)
	if err != nil {
		m.status = "no saved position"
		return
	}

	var moves []sokoban.Move
	if snap.Encoded != "" {
		if moves, err = sokoban.DecodeSolution(snap.Encoded); err != nil {
			m.status = "saved position is corrupt"
			return
		}
	}
	game, err := sokoban.Replay(m.game.Level(), moves)
	if err != nil {
		m.status = "saved position does not fit this level"
		return
	}
	m.game = game
	m.clearTransient()
	m.bestSaved = false
	m.status = "position restored"
}

func (m *PlayModel) clearTransient() {
	m.status = ""
	m.deadX, m.deadY = -1, -1
}

// View renders the puzzle screen.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	lvl := m.game.Level()

	var b strings.Builder
	b.WriteString("\n")
	title := fmt.Sprintf("Level %d  [%08X]", lvl.Index, lvl.Fingerprint)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerBlock(renderBoard(m.game, m.glyphs, m.deadX, m.deadY), m.width))
	b.WriteString("\n\n")

	counters := fmt.Sprintf("Moves %d   Pushes %d", m.game.Moves(), m.game.Pushes())
	if m.display.ShowBest && len(m.stores) > 0 {
		if rec, err := m.stores[0].Best(m.set, lvl.Fingerprint); err == nil {
			counters += fmt.Sprintf("   Best %d/%d", rec.Solution.MoveCount, rec.Solution.PushCount)
		}
	}
	b.WriteString(centerText(counters, m.width))
	b.WriteString("\n")

	switch {
	case m.playing:
		line := fmt.Sprintf("replaying %d/%d", m.playIdx, len(m.playback))
		b.WriteString(playbackStyle.Render(centerText(line, m.width)))
	case m.game.Solved():
		line := "SOLVED"
		if m.status != "" {
			line = m.status
		}
		b.WriteString(solvedStyle.Render(centerText(line+"  (enter: next level)", m.width)))
		if m.setCleared {
			b.WriteString("\n")
			b.WriteString(solvedStyle.Render(centerText("Congratulations, every level in this set is solved!", m.width)))
		}
	case m.status != "":
		b.WriteString(statusStyle.Render(centerText(m.status, m.width)))
	}
	b.WriteString("\n\n")

	b.WriteString(statusStyle.Render(centerText(m.help.View(m.keys), m.width)))

	return b.String()
}

// WantsNext reports that the user finished the level and asked for the
// next one.
func (m PlayModel) WantsNext() bool {
	return m.wantNext
}

// IsGoingBack returns true if the user wants the level picker.
func (m PlayModel) IsGoingBack() bool {
	return m.backing
}

// IsQuitting returns true if the user requested to quit.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}
