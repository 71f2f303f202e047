package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/room-twice/internal/config"
	"github.com/vovakirdan/room-twice/internal/core"
	"github.com/vovakirdan/room-twice/internal/game"
	"github.com/vovakirdan/room-twice/internal/storage"
)

// RunSaver records finished runs. *storage.Store implements it.
type RunSaver interface {
	SaveRun(packID string, seconds float64, deaths int) (int64, error)
}

var _ RunSaver = (*storage.Store)(nil)

// Model is the Bubble Tea model running one level pack.
type Model struct {
	game     *game.Game
	packID   string
	screen   *core.Screen
	store    RunSaver
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	releaser *releaser
	// pressedInMessage marks directions pressed while the current message
	// was showing. Only their releases may dismiss it.
	pressedInMessage [4]bool
	quitting         bool
	runSaved         bool // Whether the finished run has been recorded
}

// NewModel creates a model for the given game. store and logger may be nil.
func NewModel(g *game.Game, packID string, store RunSaver, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = NewLogger(io.Discard, log.InfoLevel)
	}

	return Model{
		game:     g,
		packID:   packID,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:    store,
		logger:   logger,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		releaser: newReleaser(g.Config().Input.ReleaseAfter),
	}
}

// NewLogger returns the structured logger used by the host.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "roomtwice",
		Level:           level,
	})
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("run started", "pack", m.packID, "levels", m.game.Levels().MaxLevel())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, ev := m.keys.MapKey(msg)

	switch action {
	case KeyQuit:
		m.quitting = true
		s := m.game.State()
		m.logger.Info("quit", "level", s.LevelNumber, "deaths", s.Deaths, "time", game.FormatClock(s.Time))
		return m, tea.Quit
	case KeyScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	if d, ok := ev.PressedDir(); ok {
		m.releaser.Press(d)
		if m.game.State().Paused() {
			m.pressedInMessage[d] = true
		}
	}
	m.apply(ev)
	return m, nil
}

// handleTick advances the simulation by one tick, then delivers any
// synthetic key releases. A release of a key last pressed before the
// current message appeared only updates the key state.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := m.config.TickDuration()

	m.apply(core.TimePasses(dt))
	for _, ev := range m.releaser.Advance(dt) {
		d, _ := ev.ReleasedDir()
		if m.game.State().Paused() && !m.pressedInMessage[d] {
			m.game.ReleaseKey(d)
			continue
		}
		m.apply(ev)
	}

	m.saveRun()

	return m, tickCmd(m.config.TickRate)
}

// apply feeds one event to the game and logs what it did.
func (m *Model) apply(ev core.RawInputEvent) {
	wasPaused := m.game.State().Paused()
	a := m.game.Update(ev)
	if a.None() {
		return
	}
	if !wasPaused && m.game.State().Paused() {
		m.pressedInMessage = [4]bool{}
	}

	s := m.game.State()
	switch a.Kind {
	case game.ActionTransitionLevel:
		m.logger.Info("level transition", "from", a.Src, "to", a.Dst, "time", game.FormatClock(s.Time))
	case game.ActionDie:
		m.logger.Debug("death", "level", s.LevelNumber, "x", a.FPos.X, "y", a.FPos.Y, "deaths", s.Deaths)
	case game.ActionReadSign:
		m.logger.Debug("sign", "level", s.LevelNumber, "text", a.Text)
	default:
		m.logger.Debug("action", "action", a.String(), "level", s.LevelNumber)
	}
}

// saveRun records the run once the ending is reached.
func (m *Model) saveRun() {
	s := m.game.State()
	if !s.Frozen || m.runSaved {
		return
	}
	m.runSaved = true

	m.logger.Info("run finished", "pack", m.packID, "deaths", s.Deaths, "time", game.FormatClock(s.Time))
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(m.packID, s.Time, s.Deaths); err != nil {
		m.logger.Error("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := config.UserPath("screenshots")
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.packID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the game the model runs.
func (m Model) Game() *game.Game {
	return m.game
}

// Run starts the Bubble Tea program for one run of a pack.
func Run(g *game.Game, packID string, store RunSaver, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(g, packID, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
