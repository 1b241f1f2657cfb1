package ui

import "strconv"

// Glyph metrics of the debug font.
const (
	CharWidth  = 6
	LineHeight = 16
)

// Label is a line of text at a pixel position (top-left).
type Label struct {
	Text string
	X, Y float64
}

// TextWidth approximates the rendered width of s in pixels.
func TextWidth(s string) float64 {
	return float64(len([]rune(s)) * CharWidth)
}

// FormatRaw prints a value the way a range input reports it: shortest form,
// no rounding.
func FormatRaw(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatTons prints a mass with one decimal.
func FormatTons(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + " tons"
}
