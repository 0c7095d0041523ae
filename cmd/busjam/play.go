package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/busjam/internal/games/busjam"
	"github.com/vovakirdan/busjam/internal/games/busjam/levels"
	"github.com/vovakirdan/busjam/internal/platform/tui"
	"github.com/vovakirdan/busjam/internal/registry"
)

var flagZen bool

var playCmd = &cobra.Command{
	Use:   "play [level-id]",
	Short: "Play from saved progress or a given level",
	Long: `Start playing. Without a level id the game resumes at the first
level not yet cleared.

Controls:
  Mouse drag   - Move a bus by its head or tail
  Enter/N      - Next level (after a win)
  R            - Restart level
  P/Space      - Pause
  Ctrl+S       - Save a text screenshot
  ?            - Toggle key help
  Q/Ctrl+C     - Quit

Examples:
  busjam play
  busjam play 003
  busjam play --zen
  busjam play --difficulty hard
  busjam play --levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagZen, "zen", false, "Play without the level timer")
}

func runPlay(_ *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	start, err := startIndex(a, args)
	if err != nil {
		return err
	}

	gameID := busjam.GameID
	if flagZen {
		gameID = busjam.ZenGameID
	}
	game, err := a.env.Registry.Create(gameID, registry.Options{StartLevel: start})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, a.env, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// startIndex resolves the level to begin with: the named level, or the
// saved progress.
func startIndex(a *app, args []string) (int, error) {
	if len(args) == 1 {
		i := levels.IndexOf(a.env.Levels, args[0])
		if i < 0 {
			return 0, fmt.Errorf("%w: %s (run 'busjam list' to see levels)", levels.ErrLevelNotFound, args[0])
		}
		return i, nil
	}
	if a.env.Store == nil {
		return 0, nil
	}
	i, err := a.env.Store.LevelIndex()
	if err != nil {
		a.env.Logger.Warn("could not load progress", "err", err)
		return 0, nil
	}
	return i, nil
}
