package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/busjam/internal/games/busjam/core"
	"github.com/vovakirdan/busjam/internal/games/busjam/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check level files for authoring mistakes",
	Long: `Parse and check level files. The path may be a single level file or a
directory; without one, --levels or the built-in levels are checked.

Checks:
  - board and cell size are positive
  - every bus is non-empty, in bounds, connected, and free of repeats
  - no bus sits on a block or on another bus
  - seats per color match passengers per color

Examples:
  busjam validate
  busjam validate ./levels
  busjam validate ./levels/004_detour.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loader := levelLoader(logger)
	var files []string
	if len(args) == 1 {
		info, err := os.Stat(args[0])
		if err != nil {
			return err
		}
		if info.IsDir() {
			loader = levels.NewLoader(args[0])
		} else {
			loader = levels.NewLoader(filepath.Dir(args[0]))
			files = []string{filepath.Base(args[0])}
		}
	}
	if files == nil {
		if files, err = loader.Files(); err != nil {
			return err
		}
	}

	failed := validateFiles(cmd.OutOrStdout(), loader, files, cfg.Boarding.SeatsPerSegment)
	if failed > 0 {
		return fmt.Errorf("%d of %d level files have problems", failed, len(files))
	}
	return nil
}

// validateFiles checks each file and reports every problem found. It
// returns the number of files with problems.
func validateFiles(w io.Writer, loader *levels.Loader, files []string, seatsPerSegment int) int {
	if len(files) == 0 {
		fmt.Fprintln(w, "No level files found.")
		return 0
	}

	failed := 0
	for _, p := range files {
		lvl, err := loader.LoadFile(p)
		if err == nil {
			err = core.ValidateLevel(&lvl.LevelData, seatsPerSegment)
		}
		if err == nil {
			fmt.Fprintf(w, "  ok    %s (%s)\n", p, lvl.ID)
			continue
		}

		failed++
		fmt.Fprintf(w, "  FAIL  %s\n", p)
		for _, problem := range problems(err) {
			fmt.Fprintf(w, "          %s\n", problem)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d checked, %d failed\n", len(files), failed)
	return failed
}

// problems splits a joined error into its lines.
func problems(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return strings.Split(err.Error(), "\n")
}
