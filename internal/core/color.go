package core

// Color is a logical cell color. Platforms map it to ANSI codes or RGB.
// ColorNone is the zero value and means "empty" everywhere in the game.
type Color uint8

// Predefined colors.
const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorPurple
	ColorCyan
	ColorOrange
	ColorWhite
	ColorGray
	ColorDarkTeal
)

// String returns a lowercase color name.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	case ColorCyan:
		return "cyan"
	case ColorOrange:
		return "orange"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorDarkTeal:
		return "dark-teal"
	default:
		return "unknown"
	}
}

// RGB returns the 24-bit value used by pixel renderers.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 255, 0, 0
	case ColorGreen:
		return 0, 255, 0
	case ColorYellow:
		return 255, 255, 0
	case ColorBlue:
		return 0, 0, 255
	case ColorPurple:
		return 128, 0, 128
	case ColorCyan:
		return 0, 255, 255
	case ColorOrange:
		return 255, 128, 0
	case ColorWhite:
		return 255, 255, 255
	case ColorGray:
		return 128, 128, 128
	case ColorDarkTeal:
		return 0, 60, 60
	default:
		return 0, 0, 0
	}
}
