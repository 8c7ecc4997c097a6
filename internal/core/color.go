package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI styles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)
