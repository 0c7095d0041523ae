package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/busjam/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a level, Enter to play it. After a level
ends, Esc returns to the picker.

Controls:
  Up/Down/j/k  - Navigate levels
  Z/Tab        - Toggle timed and zen mode
  Enter/Space  - Play level
  Q/Esc        - Quit

Examples:
  busjam menu
  busjam menu --fps 30
  busjam menu --db ./busjam.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := tui.RunSession(a.env, runtimeConfig()); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
