// busjam is a terminal bus puzzle: drag buses along the grid to the
// passenger queue of their color until every bus is full.
//
// Usage:
//
//	busjam play [level-id]    - Play from saved progress or a given level
//	busjam menu               - Pick levels interactively
//	busjam list               - List levels and game modes
//	busjam validate [path]    - Check level files for authoring mistakes
//	busjam progress           - Show saved progress and level results
//	busjam serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.busjam/busjam.db)
//	--config <path>       - Load tuning from a YAML file
//	--levels <dir>        - Load levels from a directory instead of the built-ins
//	--difficulty <name>   - easy, normal, hard or zen
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagLevelsDir  string
	flagDifficulty string
	flagLogLevel   string
	flagTheme      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "busjam",
	Short: "Bus Jam - a bus and passenger puzzle in your terminal",
	Long: `Bus Jam is a grid puzzle played with the mouse. Drag a bus by its
head or tail; the rest of the bus follows like a snake. Park it next to
the passenger queue of its color and the passengers board. Fill every
bus before the clock runs out.

Available commands:
  play      - Continue from saved progress or start a level
  menu      - Interactive level picker
  list      - Show levels and game modes
  validate  - Check level files
  progress  - Show saved progress and results
  serve     - Start SSH server for remote play

Examples:
  busjam play
  busjam play 002 --zen
  busjam menu --theme neon
  busjam validate ./levels
  busjam serve --addr :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.busjam/busjam.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, zen")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Color theme: default, neon, mono")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}
