package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/busjam/internal/core"
	"github.com/vovakirdan/busjam/internal/games/busjam/levels"
	"github.com/vovakirdan/busjam/internal/registry"
	"github.com/vovakirdan/busjam/internal/storage"
)

// Env bundles the services shared by the terminal front ends.
type Env struct {
	Registry *registry.Registry
	Levels   []levels.Level
	// Store may be nil, in which case nothing is persisted.
	Store  *storage.Store
	Logger *log.Logger
	Theme  Theme
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(width, height int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	env        Env
	screen     *core.Screen
	config     core.RuntimeConfig
	width      int
	height     int
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	standalone bool // quit instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game. The runtime
// config holds the full terminal size; one line is kept for key help.
func NewModel(game registry.Game, env Env, cfg core.RuntimeConfig) Model {
	if env.Theme.Palette == nil {
		env.Theme = DefaultTheme()
	}

	m := Model{
		game:       game,
		env:        env,
		config:     cfg,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
	}
	m.help.Width = cfg.ScreenW
	m.config.ScreenH = m.gameHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if kind, ok := pointerKind(msg); ok {
			m.inputFrame.AddPointer(kind, float64(msg.X), float64(msg.Y))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.inputFrame.AddPointer(core.PointerCancel, 0, 0)
		m.applySize()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.applySize()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if !m.gameState.GameOver && !m.gameState.Paused {
			return m, nil
		}
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// gameHeight is the terminal height left for the game after key help.
func (m Model) gameHeight() int {
	return max(m.height-lipgloss.Height(m.help.View(m.keys)), 1)
}

// applySize resizes the screen buffer and tells the game about it.
func (m *Model) applySize() {
	m.help.Width = m.width
	m.config.ScreenW = m.width
	m.config.ScreenH = m.gameHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Finished {
		m.record(result.State)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config)
}

// record stores the outcome of a finished level and moves saved progress
// past it on a win.
func (m Model) record(st core.GameState) {
	logger := m.env.logger()
	if m.env.Store == nil {
		return
	}

	_, err := m.env.Store.SaveResult(storage.LevelResult{
		LevelID:        st.LevelID,
		Mode:           m.game.ID(),
		Won:            st.Won,
		TimeLeft:       st.TimeLeft,
		Elapsed:        st.Elapsed,
		BusesCompleted: st.Score,
		BusesTotal:     st.Goal,
	})
	if err != nil {
		logger.Error("could not save level result", "level", st.LevelID, "err", err)
	}

	if !st.Won {
		return
	}
	index, err := m.env.Store.AdvanceLevel(st.LevelIndex)
	if err != nil {
		logger.Error("could not save progress", "level", st.LevelID, "err", err)
		return
	}
	logger.Debug("progress saved", "level_index", index)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	logger := m.env.logger()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".busjam", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.env.Theme) + "\n" + m.help.View(m.keys)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game until the player quits.
func Run(game registry.Game, env Env, cfg core.RuntimeConfig) error {
	model := NewModel(game, env, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
