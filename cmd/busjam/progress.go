package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var flagResetProgress bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show saved progress and level results",
	Long: `Display the next level to play and the recorded results of every level.

Examples:
  busjam progress
  busjam progress --reset
  busjam progress --db ./busjam.db`,
	Args: cobra.NoArgs,
	RunE: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagResetProgress, "reset", false, "Start over from the first level")
}

func runProgress(_ *cobra.Command, _ []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.Close()
	store := a.env.Store

	if flagResetProgress {
		if err := store.ResetProgress(); err != nil {
			return err
		}
		fmt.Println("Progress reset.")
		return nil
	}

	index, err := store.LevelIndex()
	if err != nil {
		return err
	}
	stats, err := store.AllLevelStats()
	if err != nil {
		return err
	}

	lvls := a.env.Levels
	switch {
	case len(lvls) == 0:
		fmt.Println("No levels available.")
		return nil
	case index >= len(lvls):
		fmt.Printf("All %d levels cleared.\n", len(lvls))
	default:
		fmt.Printf("Next level: %s (%d of %d)\n", lvls[index].Name, index+1, len(lvls))
	}
	fmt.Println()

	fmt.Printf("  %-4s  %-24s  %-6s  %-10s  %-10s  %s\n", "#", "Level", "Won", "Best left", "Fastest", "Last played")
	fmt.Printf("  %-4s  %-24s  %-6s  %-10s  %-10s  %s\n", "-", "-----", "---", "---------", "-------", "-----------")
	for i, l := range lvls {
		st := stats[l.ID]
		if st == nil || st.Plays == 0 {
			fmt.Printf("  %-4d  %-24s  %-6s  %-10s  %-10s  %s\n", i+1, l.Name, "-", "-", "-", "never")
			continue
		}
		won := fmt.Sprintf("%d/%d", st.Wins, st.Plays)
		best, fastest := "-", "-"
		if st.Wins > 0 {
			best = st.BestTimeLeft.Round(100 * time.Millisecond).String()
			fastest = st.FastestWin.Round(100 * time.Millisecond).String()
		}
		fmt.Printf("  %-4d  %-24s  %-6s  %-10s  %-10s  %s\n", i+1, l.Name, won, best, fastest,
			st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
