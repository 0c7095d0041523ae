package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List levels and game modes",
	Long:  `Shows every level that would be played, in order, and the available game modes.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Println("Game modes:")
	fmt.Println()
	for _, g := range a.env.Registry.List() {
		fmt.Printf("  %-12s  %s\n", g.ID, g.Title)
	}
	fmt.Println()

	if len(a.env.Levels) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range a.env.Levels {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-24s  %-5s  %-5s  %s\n", maxIDLen, "ID", "Name", "Size", "Buses", "Time")
	fmt.Printf("  %-*s  %-24s  %-5s  %-5s  %s\n", maxIDLen, "--", "----", "----", "-----", "----")
	for _, l := range a.env.Levels {
		limit := "-"
		if l.Duration > 0 {
			limit = l.Duration.String()
		}
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-*s  %-24s  %-5s  %-5d  %s\n", maxIDLen, l.ID, l.Name, size, len(l.Buses), limit)
	}

	fmt.Println()
	fmt.Println("Run 'busjam play <id>' to play a level.")
	return nil
}
