package console

import (
	"fmt"
	"strings"
)

// ColorScheme defines the colors used when drawing the prompt prefix and
// the completion listing.
type ColorScheme struct {
	Name   string `json:"name"`
	Prefix Color  `json:"prefix"`
	Match  Color  `json:"match"`
	Notice Color  `json:"notice"`
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ThemeDefault is the default color scheme with a green prefix
var ThemeDefault = &ColorScheme{
	Name:   "default",
	Prefix: Color{R: 0, G: 255, B: 0, Bold: true},
	Match:  Color{R: 200, G: 200, B: 200, Bold: false},
	Notice: Color{R: 128, G: 128, B: 128, Bold: false},
}

// ThemeDark is a dark theme with light blue prefix
var ThemeDark = &ColorScheme{
	Name:   "Dark",
	Prefix: Color{R: 102, G: 217, B: 239, Bold: true},
	Match:  Color{R: 189, G: 147, B: 249, Bold: false},
	Notice: Color{R: 98, G: 114, B: 164, Bold: false},
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}

	// RGB color (true color support)
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
