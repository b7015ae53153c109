package core

// Color is a foreground color for a screen cell.
// Values map onto ANSI 256-color codes in the platform layer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorPink    // enemy body
	ColorTeal    // player body
	ColorOrange  // food
	ColorGray    // grid dots
	ColorDimGray // fading particles
)
