package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/busjam/internal/core"
	"github.com/vovakirdan/busjam/internal/registry"
)

// SessionModel manages the full flow: level picker -> game -> picker.
// It is the top-level model for the menu command and SSH sessions.
type SessionModel struct {
	env       Env
	config    core.RuntimeConfig
	username  string
	menu      MenuModel
	gameModel *Model
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(env Env, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		env:      env,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(env, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	game, err := m.env.Registry.Create(m.menu.GameID(), registry.Options{StartLevel: selected.Index})
	if err != nil {
		m.env.logger().Error("could not create game", "game", m.menu.GameID(), "err", err)
		m.menu = NewMenuModel(m.env, m.config)
		return m, nil
	}

	m.env.logger().Info("game started",
		"user", m.username,
		"game", game.ID(),
		"level", selected.LevelID,
	)
	gameModel := NewModel(game, m.env, m.config)
	m.gameModel = &gameModel
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		// Rebuild the picker so it shows fresh progress and stats.
		m.menu = NewMenuModel(m.env, m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}

// RunSession runs the picker and games in the local terminal.
func RunSession(env Env, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(env, cfg, ""),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
