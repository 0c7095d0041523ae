package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/busjam/internal/core"
	"github.com/vovakirdan/busjam/internal/games/busjam"
	"github.com/vovakirdan/busjam/internal/storage"
)

// MenuItem is one level in the picker.
type MenuItem struct {
	Index   int
	LevelID string
	Name    string
	Stats   *storage.LevelStats
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items        []MenuItem
	cursor       int
	scrollOffset int
	progress     int // saved index of the next level to play
	zen          bool
	width        int
	height       int
	config       core.RuntimeConfig
	theme        Theme
	keys         MenuKeyMap
	help         help.Model
	quitting     bool
	selected     *MenuItem
}

// NewMenuModel creates a level picker. Saved progress and per-level stats
// come from the store when one is available.
func NewMenuModel(env Env, cfg core.RuntimeConfig) MenuModel {
	if env.Theme.Palette == nil {
		env.Theme = DefaultTheme()
	}

	var stats map[string]*storage.LevelStats
	progress := 0
	if env.Store != nil {
		var err error
		if stats, err = env.Store.AllLevelStats(); err != nil {
			env.logger().Warn("could not load level stats", "err", err)
		}
		if progress, err = env.Store.LevelIndex(); err != nil {
			env.logger().Warn("could not load progress", "err", err)
		}
	}

	items := make([]MenuItem, len(env.Levels))
	for i, l := range env.Levels {
		name := l.Name
		if name == "" {
			name = l.ID
		}
		items[i] = MenuItem{Index: i, LevelID: l.ID, Name: name, Stats: stats[l.ID]}
	}

	m := MenuModel{
		items:    items,
		progress: progress,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		config:   cfg,
		theme:    env.Theme,
		keys:     DefaultMenuKeyMap(),
		help:     help.New(),
	}
	if len(items) > 0 {
		m.cursor = core.Clamp(progress, 0, len(items)-1)
	}
	m.help.Width = cfg.ScreenW
	m.updateScroll()
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.updateScroll()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
			m.updateScroll()
		}

	case key.Matches(msg, m.keys.Mode):
		m.zen = !m.zen

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}
	}

	return m, nil
}

// visibleItems is the number of list rows that fit between header and footer.
func (m MenuModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *MenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.center(m.theme.MenuTitle.Render("B U S   J A M")))
	b.WriteString("\n\n")

	mode := "Timed"
	if m.zen {
		mode = "Zen (no timer)"
	}
	b.WriteString(m.center(m.theme.MenuDescription.Render("Mode: ") + m.theme.MenuMode.Render(mode)))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(m.center(m.theme.MenuDescription.Render("No levels found")))
		b.WriteString("\n")
	}

	end := min(m.scrollOffset+m.visibleItems(), len(m.items))
	if m.scrollOffset > 0 {
		b.WriteString(m.center(m.theme.MenuDescription.Render("... more above ...")))
		b.WriteString("\n")
	}
	for i := m.scrollOffset; i < end; i++ {
		b.WriteString(m.center(m.renderItem(i)))
		b.WriteString("\n")
	}
	if end < len(m.items) {
		b.WriteString(m.center(m.theme.MenuDescription.Render("... more below ...")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.center(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) renderItem(i int) string {
	item := m.items[i]

	cursor := "  "
	style := m.theme.MenuItemNormal
	switch {
	case i == m.cursor:
		cursor = "> "
		style = m.theme.MenuItemActive
	case i < m.progress:
		style = m.theme.MenuItemCleared
	}

	mark := " "
	switch {
	case i < m.progress:
		mark = "✓"
	case i == m.progress:
		mark = "•"
	}

	line := fmt.Sprintf("%s%s %2d. %-24s", cursor, mark, i+1, item.Name)
	return style.Render(line) + m.theme.MenuDescription.Render(statsSummary(item.Stats))
}

// statsSummary formats the stored results of a level for the picker.
func statsSummary(st *storage.LevelStats) string {
	if st == nil || st.Plays == 0 {
		return "  not played"
	}
	s := fmt.Sprintf("  %d/%d won", st.Wins, st.Plays)
	if st.Wins > 0 && st.FastestWin > 0 {
		s += "  best " + st.FastestWin.Round(100*time.Millisecond).String()
	}
	return s
}

func (m MenuModel) center(s string) string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// GameID returns the registry ID for the chosen mode.
func (m MenuModel) GameID() string {
	if m.zen {
		return busjam.ZenGameID
	}
	return busjam.GameID
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
