package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/busjam/internal/core"
	"github.com/vovakirdan/busjam/internal/games/busjam"
	"github.com/vovakirdan/busjam/internal/games/busjam/levels"
	"github.com/vovakirdan/busjam/internal/registry"
	"github.com/vovakirdan/busjam/internal/storage"
)

// fakeGame records the frames it is stepped with and returns a scripted
// result.
type fakeGame struct {
	frames  []core.InputFrame
	next    core.StepResult
	resizes [][2]int
	resets  int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState { return g.next.State }
func (g *fakeGame) Resize(width, height int) { g.resizes = append(g.resizes, [2]int{width, height}) }
func (g *fakeGame) lastFrame() core.InputFrame { return g.frames[len(g.frames)-1] }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	res := g.next
	g.next.Finished = false
	return res
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"n", runeKey('n'), core.ActionConfirm},
		{"r", runeKey('r'), core.ActionRestart},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, keys.Action(tc.msg))
		})
	}
}

func TestModelMouseBecomesPointer(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, Env{}, testConfig())

	m = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 9, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m = update(t, m, tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})

	frame := game.lastFrame()
	require.Len(t, frame.Pointer, 3)
	assert.Equal(t, core.PointerEvent{Kind: core.PointerDown, X: 3, Y: 4}, frame.Pointer[0])
	assert.Equal(t, core.PointerEvent{Kind: core.PointerMove, X: 5, Y: 4}, frame.Pointer[1])
	assert.Equal(t, core.PointerUp, frame.Pointer[2].Kind)

	m = update(t, m, TickMsg{})
	assert.Empty(t, game.lastFrame().Pointer, "input is cleared after each tick")
}

func TestModelKeysBecomeActions(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, Env{}, testConfig())

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	assert.True(t, game.lastFrame().Has(core.ActionRestart))

	next, cmd := m.Update(runeKey('q'))
	assert.NotNil(t, cmd)
	assert.True(t, next.(Model).IsQuitting())
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, Env{}, testConfig())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu(), "back is ignored mid-level")

	game.next.State.GameOver = true
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
}

func TestModelResizeKeepsHelpLine(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, Env{}, testConfig())

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	require.Len(t, game.resizes, 1)
	assert.Equal(t, [2]int{100, 29}, game.resizes[0])
	assert.Zero(t, game.resets, "resizable games are not reset")

	m = update(t, m, TickMsg{})
	require.NotEmpty(t, game.lastFrame().Pointer)
	assert.Equal(t, core.PointerCancel, game.lastFrame().Pointer[0].Kind)
}

func TestModelRecordsFinishedLevel(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{}
	m := NewModel(game, Env{Store: store}, testConfig())

	game.next = core.StepResult{
		Finished: true,
		State: core.GameState{
			GameOver:   true,
			Won:        true,
			Score:      2,
			Goal:       2,
			LevelID:    "001",
			LevelIndex: 0,
		},
	}
	m = update(t, m, TickMsg{})
	// A second tick with the same state must not record again.
	update(t, m, TickMsg{})

	index, err := store.LevelIndex()
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	results, err := store.RecentResults("001", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Won)
	assert.Equal(t, "fake", results[0].Mode)
	assert.Equal(t, 2, results[0].BusesTotal)
}

func TestModelLossKeepsProgress(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.SetLevelIndex(2))
	game := &fakeGame{}
	m := NewModel(game, Env{Store: store}, testConfig())

	game.next = core.StepResult{
		Finished: true,
		State:    core.GameState{GameOver: true, LevelID: "003", LevelIndex: 2},
	}
	update(t, m, TickMsg{})

	index, err := store.LevelIndex()
	require.NoError(t, err)
	assert.Equal(t, 2, index)
}

func testLevels() []levels.Level {
	var lvls []levels.Level
	for _, id := range []string{"001", "002", "003"} {
		l := levels.Level{}
		l.ID = id
		l.Name = "Level " + id
		lvls = append(lvls, l)
	}
	return lvls
}

func TestMenuStartsAtSavedProgress(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.SetLevelIndex(1))

	m := NewMenuModel(Env{Store: store, Levels: testLevels()}, testConfig())
	assert.Equal(t, 1, m.cursor)
	assert.Equal(t, busjam.GameID, m.GameID())

	next, _ := m.Update(runeKey('z'))
	m = next.(MenuModel)
	assert.Equal(t, busjam.ZenGameID, m.GameID())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	require.NotNil(t, m.Selected())
	assert.Equal(t, 2, m.Selected().Index)
	assert.Equal(t, "003", m.Selected().LevelID)
	assert.Contains(t, m.View(), "Level 002")
}

func TestSessionStartsSelectedGame(t *testing.T) {
	reg := registry.New()
	var got registry.Options
	require.NoError(t, reg.Register(busjam.GameID, func(opts registry.Options) registry.Game {
		got = opts
		return &fakeGame{}
	}))

	s := NewSessionModel(Env{Registry: reg, Levels: testLevels()}, testConfig(), "tester")
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s = next.(SessionModel)
	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)

	require.NotNil(t, s.gameModel)
	assert.NotNil(t, cmd, "game model starts ticking")
	assert.Equal(t, 1, got.StartLevel)
	assert.Contains(t, s.View(), "fake")
}
