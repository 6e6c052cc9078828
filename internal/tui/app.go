// Package tui provides the Bubble Tea interface for playing puzzle
// collections: a collection picker, a level picker, and the puzzle
// screen itself. The same session model serves both the local terminal
// and SSH sessions.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarpows/sokotui/internal/config"
	"github.com/mkarpows/sokotui/internal/sokoban"
	"github.com/mkarpows/sokotui/internal/solutions"
)

// AppState tracks which screen the session is on.
type AppState int

const (
	StateSelectSource AppState = iota
	StateSelectLevel
	StatePlaying
)

// App manages the full session flow: collection -> level -> puzzle.
type App struct {
	cfg    config.Config
	stores []solutions.Store
	clip   Clipboard
	width  int
	height int

	state  AppState
	source SourceModel
	levels LevelSelectModel
	play   PlayModel

	// Current collection context.
	set string
	col *sokoban.Collection

	quitting bool
}

// NewApp creates a session model. stores may be empty; the first store
// is used for reads, all stores receive writes.
func NewApp(cfg config.Config, stores []solutions.Store, clip Clipboard, width, height int) App {
	return App{
		cfg:    cfg,
		stores: stores,
		clip:   clip,
		width:  width,
		height: height,
		state:  StateSelectSource,
		source: NewSourceModel(cfg.Levels.ExtraDirs, width, height),
	}
}

// NewAppWithCollection creates a session model that starts directly on
// the level picker of a preloaded collection.
func NewAppWithCollection(cfg config.Config, stores []solutions.Store, clip Clipboard, set string, col *sokoban.Collection, width, height int) App {
	app := NewApp(cfg, stores, clip, width, height)
	app.openCollection(set, col)
	return app
}

// NewAppAtLevel creates a session model that starts directly on one
// level of a preloaded collection.
func NewAppAtLevel(cfg config.Config, stores []solutions.Store, clip Clipboard, set string, col *sokoban.Collection, index, width, height int) App {
	app := NewAppWithCollection(cfg, stores, clip, set, col, width, height)
	app.openLevel(index)
	return app
}

// openCollection switches the session to the level picker for col.
func (a *App) openCollection(set string, col *sokoban.Collection) {
	a.set = set
	a.col = col
	a.levels = NewLevelSelectModel(set, col, a.loadBests(set), a.width, a.height)
	a.state = StateSelectLevel
}

// openLevel switches the session to the puzzle screen for the 1-based
// level index.
func (a *App) openLevel(index int) {
	if index < 1 || index > len(a.col.Levels) {
		return
	}
	fps := make([]uint32, len(a.col.Levels))
	for i, lvl := range a.col.Levels {
		fps[i] = lvl.Fingerprint
	}
	a.play = NewPlayModel(a.set, fps, a.col.Levels[index-1], a.stores, a.clip, a.cfg.Display, a.width, a.height)
	a.state = StatePlaying
}

// loadBests fetches recorded best solutions, degrading to none on error.
func (a *App) loadBests(set string) map[uint32]*solutions.Record {
	if len(a.stores) == 0 {
		return nil
	}
	best, err := a.stores[0].BestAll(set)
	if err != nil {
		return nil
	}
	return best
}

// Init initializes the session.
func (a App) Init() tea.Cmd {
	switch a.state {
	case StateSelectLevel:
		return a.levels.Init()
	case StatePlaying:
		return a.play.Init()
	default:
		return a.source.Init()
	}
}

// Update handles messages for the session.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally so screen switches start correct.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsm.Width
		a.height = wsm.Height
	}

	switch a.state {
	case StateSelectSource:
		return a.updateSource(msg)
	case StateSelectLevel:
		return a.updateLevels(msg)
	default:
		return a.updatePlay(msg)
	}
}

// updateSource handles the collection picker screen.
func (a App) updateSource(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.source.Update(msg)
	if sm, ok := model.(SourceModel); ok {
		a.source = sm
	}

	if a.source.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}

	if selected := a.source.Selected(); selected != nil {
		col, err := selected.Load()
		if err != nil {
			// Rebuild the picker; a broken file stays listed but
			// selecting it does nothing further.
			a.source = NewSourceModel(a.cfg.Levels.ExtraDirs, a.width, a.height)
			return a, nil
		}
		a.openCollection(selected.SetName(), col)
		return a, a.levels.Init()
	}

	return a, cmd
}

// updateLevels handles the level picker screen.
func (a App) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.levels.Update(msg)
	if lm, ok := model.(LevelSelectModel); ok {
		a.levels = lm
	}

	if a.levels.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}

	if a.levels.IsGoingBack() {
		a.state = StateSelectSource
		a.source = NewSourceModel(a.cfg.Levels.ExtraDirs, a.width, a.height)
		return a, a.source.Init()
	}

	if index := a.levels.Selected(); index > 0 {
		a.openLevel(index)
		return a, a.play.Init()
	}

	return a, cmd
}

// updatePlay handles the puzzle screen.
func (a App) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.play.Update(msg)
	if pm, ok := model.(PlayModel); ok {
		a.play = pm
	}

	if a.play.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}

	if a.play.IsGoingBack() {
		// Re-read bests so a fresh solve shows up in the picker.
		a.openCollection(a.set, a.col)
		return a, a.levels.Init()
	}

	if a.play.WantsNext() {
		index := a.play.game.Level().Index + 1
		if index > len(a.col.Levels) {
			a.openCollection(a.set, a.col)
			return a, a.levels.Init()
		}
		a.openLevel(index)
		return a, a.play.Init()
	}

	return a, cmd
}

// View renders the current screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	switch a.state {
	case StateSelectSource:
		return a.source.View()
	case StateSelectLevel:
		return a.levels.View()
	default:
		return a.play.View()
	}
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(app App) error {
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
