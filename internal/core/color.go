package core

// Color represents a foreground color for a screen cell.
// The platform layer decides how each color is drawn on the terminal.
type Color uint8

// Palette used by the game renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightRed:
		return "bright-red"
	case ColorBrightGreen:
		return "bright-green"
	case ColorBrightCyan:
		return "bright-cyan"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
