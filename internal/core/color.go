package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors. The first five double as the Stroop ink palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorGreen
	ColorYellow
	ColorPurple
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
	ColorBrightGreen
	ColorBrightRed
)

// String returns the lower-case color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorOrange:
		return "orange"
	case ColorBrightGreen:
		return "bright-green"
	case ColorBrightRed:
		return "bright-red"
	default:
		return "default"
	}
}
