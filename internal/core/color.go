package core

// Color is a foreground color tag for a screen cell.
// The platform maps it to an ANSI color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorWhite
	ColorBrightYellow
	ColorGray
)
