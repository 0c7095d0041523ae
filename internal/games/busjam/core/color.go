package core

import "strings"

// Color is shared by buses and passengers; a passenger only boards a bus of
// the same color.
type Color uint8

const (
	ColorRed Color = iota
	ColorYellow
	ColorGreen
	ColorPurple
)

var colorNames = [...]string{"red", "yellow", "green", "purple"}

// String returns the lowercase color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// ParseColor parses a color name, ignoring case.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range colorNames {
		if s == name {
			return Color(i), true
		}
	}
	return 0, false
}

// AllColors returns every color in declaration order.
func AllColors() []Color {
	return []Color{ColorRed, ColorYellow, ColorGreen, ColorPurple}
}
