package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for different elements in the
// report output
type ColorScheme struct {
	Value     *color.Color
	Undefined *color.Color
	Caution   *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Value:     color.New(color.FgCyan, color.Bold),
		Undefined: color.New(color.FgYellow, color.Bold),
		Caution:   color.New(color.FgRed),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Value.DisableColor()
	scheme.Undefined.DisableColor()
	scheme.Caution.DisableColor()

	return scheme
}
