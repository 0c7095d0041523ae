package core

import "time"

// RuntimeConfig describes the terminal a game runs in.
type RuntimeConfig struct {
	ScreenW  int // Columns available to the game
	ScreenH  int // Rows available to the game
	TickRate int // Simulation ticks per second
}

// TickDuration returns the simulated time covered by one tick.
// A non-positive TickRate means 60 ticks per second.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// DefaultConfig returns an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is what the front end needs to know about the running level.
type GameState struct {
	Score    int  // Buses completed in the current level
	Goal     int  // Buses required to clear the level
	GameOver bool // Whether the current level has ended
	Won      bool // Whether the level ended with every bus full
	Paused   bool

	LevelID    string
	LevelIndex int           // Position of the level in the loaded list
	TimeLeft   time.Duration // Zero when untimed
	Elapsed    time.Duration
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
	// Finished is set on the single tick where a level ends.
	Finished bool
}
