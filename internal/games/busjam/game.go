// Package busjam provides the bus puzzle game for the terminal platform.
// Players drag buses by either end across a grid so that each bus reaches
// the passenger queue of its color and fills up.
package busjam

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/busjam/internal/config"
	platformcore "github.com/vovakirdan/busjam/internal/core"
	"github.com/vovakirdan/busjam/internal/games/busjam/core"
	"github.com/vovakirdan/busjam/internal/games/busjam/levels"
	"github.com/vovakirdan/busjam/internal/registry"
)

// Registry identifiers for the two modes.
const (
	GameID    = "busjam"
	ZenGameID = "busjam_zen"
)

// Settings are shared by every game instance created from the registry.
type Settings struct {
	Config config.BusJamConfig
	Levels []levels.Level
	Logger *log.Logger
}

// Register adds the timed and zen modes to the registry.
func Register(reg *registry.Registry, s Settings) error {
	if err := reg.Register(GameID, func(opts registry.Options) registry.Game {
		return New(s, opts)
	}); err != nil {
		return err
	}
	return reg.Register(ZenGameID, func(opts registry.Options) registry.Game {
		opts.Zen = true
		return New(s, opts)
	})
}

// Game implements registry.Game for the bus puzzle.
type Game struct {
	id     string
	title  string
	levels []levels.Level
	opts   core.Options
	logger *log.Logger

	levelIndex int
	level      core.LevelData
	session    *core.Session

	screenW int
	screenH int
	dt      time.Duration
	layout  layout

	paused   bool
	reported bool // level end already returned through StepResult.Finished
}

// New creates a game. Invalid tuning falls back to the defaults.
func New(s Settings, opts registry.Options) *Game {
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sessionOpts, err := OptionsFromConfig(s.Config)
	if err != nil {
		logger.Warn("using default tuning", "err", err)
		sessionOpts = core.DefaultOptions()
	}

	g := &Game{
		id:     GameID,
		title:  "Bus Jam",
		levels: s.Levels,
		opts:   sessionOpts,
		logger: logger,
		dt:     platformcore.DefaultConfig().TickDuration(),
	}
	if opts.Zen {
		g.id = ZenGameID
		g.title = "Bus Jam (Zen)"
		g.opts.TimerEnabled = false
	}
	if len(g.levels) > 0 {
		g.levelIndex = platformcore.Clamp(opts.StartLevel, 0, len(g.levels)-1)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset starts the current level from scratch.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.dt = cfg.TickDuration()
	g.startLevel(g.levelIndex)
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.session == nil {
		return
	}
	g.layout = computeLayout(&g.level, width, height)
	g.session.SetCamera(g.layout.camera)
	g.session.Drag().Release()
}

func (g *Game) startLevel(index int) {
	g.paused = false
	g.reported = false
	if len(g.levels) == 0 {
		g.session = nil
		return
	}

	g.levelIndex = platformcore.Clamp(index, 0, len(g.levels)-1)
	// The session keeps a pointer to the level; copy it so restarts
	// always begin from the loaded data.
	g.level = g.levels[g.levelIndex].LevelData
	g.layout = computeLayout(&g.level, g.screenW, g.screenH)
	g.session = core.NewSession(&g.level, g.layout.camera, g.opts)

	g.logger.Info("level started",
		"level", g.level.ID,
		"index", g.levelIndex,
		"buses", len(g.level.Buses),
		"timed", g.session.Timed(),
	)
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.session == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionRestart) {
		g.startLevel(g.levelIndex)
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionConfirm) && g.session.Won() && g.HasNextLevel() {
		g.startLevel(g.levelIndex + 1)
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && !g.session.Over() {
		g.paused = !g.paused
		if g.paused {
			g.session.Drag().Release()
		}
	}

	if g.paused || g.layout.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	pointer := make([]platformcore.PointerEvent, len(in.Pointer))
	for i, ev := range in.Pointer {
		pointer[i] = centerPointer(ev)
	}
	g.logEvents(g.session.Update(g.dt, pointer))

	result := platformcore.StepResult{State: g.State()}
	if g.session.Over() && !g.reported {
		g.reported = true
		result.Finished = true
	}
	return result
}

func (g *Game) logEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventPassengerBoarded:
			g.logger.Debug("passenger boarded", "bus", ev.BusID, "color", ev.Color, "passenger", ev.PassengerID)
		case core.EventBusFull:
			g.logger.Info("bus full", "bus", ev.BusID, "color", ev.Color, "cell", ev.Cell)
		case core.EventBusCompleted:
			g.logger.Debug("bus completed", "bus", ev.BusID,
				"full", g.session.Counter().Full(), "total", g.session.Counter().Total())
		case core.EventLevelWon:
			g.logger.Info("level won", "level", g.level.ID,
				"elapsed", g.session.Elapsed(), "time_left", g.session.TimeLeft())
		case core.EventLevelTimedOut:
			g.logger.Info("level timed out", "level", g.level.ID,
				"full", g.session.Counter().Full(), "total", g.session.Counter().Total())
		}
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Paused:     g.paused,
		LevelIndex: g.levelIndex,
	}
	if g.session == nil {
		st.GameOver = true
		return st
	}
	st.Score = g.session.Counter().Full()
	st.Goal = g.session.Counter().Total()
	st.GameOver = g.session.Over()
	st.Won = g.session.Won()
	st.LevelID = g.level.ID
	st.TimeLeft = g.session.TimeLeft()
	st.Elapsed = g.session.Elapsed()
	return st
}

// Session returns the running level session, or nil without levels.
func (g *Game) Session() *core.Session {
	return g.session
}

// LevelIndex returns the index of the level being played.
func (g *Game) LevelIndex() int {
	return g.levelIndex
}

// LevelCount returns the number of loaded levels.
func (g *Game) LevelCount() int {
	return len(g.levels)
}

// HasNextLevel returns true if a level follows the current one.
func (g *Game) HasNextLevel() bool {
	return g.levelIndex+1 < len(g.levels)
}
