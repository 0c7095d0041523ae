package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/busjam/internal/core"
)

// Theme contains the visual styles of the terminal front end.
type Theme struct {
	// Palette maps screen colors to terminal styles.
	Palette map[core.Color]lipgloss.Style

	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuItemCleared lipgloss.Style
	MenuDescription lipgloss.Style
	MenuMode        lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault:       lipgloss.NewStyle(),
			core.ColorRed:           fg("196"),
			core.ColorGreen:         fg("40"),
			core.ColorYellow:        fg("220"),
			core.ColorMagenta:       fg("135"), // Purple buses and passengers
			core.ColorCyan:          fg("51"),
			core.ColorWhite:         fg("252"),
			core.ColorBrightRed:     fg("210").Bold(true),
			core.ColorBrightGreen:   fg("120").Bold(true),
			core.ColorBrightYellow:  fg("229").Bold(true),
			core.ColorBrightMagenta: fg("183").Bold(true),
			core.ColorBrightWhite:   fg("255").Bold(true),
			core.ColorGray:          fg("240"),
		},

		MenuTitle:       fg("51").Bold(true),
		MenuItemNormal:  fg("252"),
		MenuItemActive:  fg("226").Bold(true),
		MenuItemCleared: fg("40"),
		MenuDescription: fg("245"),
		MenuMode:        fg("213").Bold(true),
	}
}

// NeonTheme returns a high-saturation theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Palette[core.ColorRed] = fg("199")
	theme.Palette[core.ColorGreen] = fg("118")
	theme.Palette[core.ColorYellow] = fg("227")
	theme.Palette[core.ColorMagenta] = fg("171")
	theme.MenuTitle = fg("87").Bold(true)
	return theme
}

// MonochromeTheme renders everything in the terminal's default colors.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	for c := range theme.Palette {
		theme.Palette[c] = lipgloss.NewStyle()
	}
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuItemNormal = lipgloss.NewStyle()
	theme.MenuItemActive = lipgloss.NewStyle().Reverse(true)
	theme.MenuItemCleared = lipgloss.NewStyle()
	theme.MenuDescription = lipgloss.NewStyle().Faint(true)
	theme.MenuMode = lipgloss.NewStyle().Bold(true)
	return theme
}

// ThemeByName returns a named theme: default, neon, or mono.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "default":
		return DefaultTheme(), nil
	case "neon":
		return NeonTheme(), nil
	case "mono", "monochrome":
		return MonochromeTheme(), nil
	}
	return Theme{}, fmt.Errorf("tui: unknown theme %q", name)
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}
