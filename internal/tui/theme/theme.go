// Package theme holds the wallet palette and the lipgloss styles built from it.
package theme

import (
	"image/color"
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name string

	// Brand colors
	Primary   string // Deep teal used for cards and focused buttons
	Secondary string // Mint accent used for amounts and highlights

	// Neutrals
	White    string
	Black    string
	Gray     string
	DarkGray string
	Muted    string

	// Status colors
	Success string
	Warning string
	Error   string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

// NewBlinx returns the default wallet theme.
func NewBlinx() *Theme {
	return &Theme{
		Name:      "blinx",
		Primary:   "#1A4B4A",
		Secondary: "#80FA98",
		White:     "#FFFFFF",
		Black:     "#000000",
		Gray:      "#F5F5F5",
		DarkGray:  "#333333",
		Muted:     "#8A8F98",
		Success:   "#80FA98",
		Warning:   "#F5C26B",
		Error:     "#F2545B",
	}
}

var (
	current     *Theme
	currentOnce sync.Once
)

// Current returns the process-wide theme.
func Current() *Theme {
	currentOnce.Do(func() {
		current = NewBlinx()
	})
	return current
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

// HexToColor converts a "#RRGGBB" string to a color.Color.
func HexToColor(hex string) color.Color {
	return lipgloss.Color(hex)
}
