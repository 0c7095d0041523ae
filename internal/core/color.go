package core

// Color is a logical screen color. The front end's theme decides which
// terminal color each one becomes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorCyan
	ColorRed
	ColorYellow
	ColorGreen
	ColorMagenta
	ColorBrightWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightGreen
	ColorBrightMagenta
)

// Bright returns the highlighted variant of c. Colors without one are
// returned unchanged.
func (c Color) Bright() Color {
	switch c {
	case ColorWhite:
		return ColorBrightWhite
	case ColorRed:
		return ColorBrightRed
	case ColorYellow:
		return ColorBrightYellow
	case ColorGreen:
		return ColorBrightGreen
	case ColorMagenta:
		return ColorBrightMagenta
	}
	return c
}
