package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/blinxlabs/zaps/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Primary action, highlighted
)

// Button represents a single button in the button bar.
type Button struct {
	Label string
	State ButtonState
}

// ButtonBar renders a centered row of buttons.
type ButtonBar struct {
	buttons []Button
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		width:   60,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// Buttons returns the buttons in display order.
func (b *ButtonBar) Buttons() []Button {
	return b.buttons
}

// Render renders the button bar with proper spacing and styling.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	s := theme.Current().S()
	rendered := make([]string, 0, len(b.buttons))
	for _, btn := range b.buttons {
		switch btn.State {
		case ButtonDisabled:
			rendered = append(rendered, s.ButtonDisabled.Render(btn.Label))
		case ButtonFocused:
			rendered = append(rendered, s.ButtonFocused.Render(btn.Label))
		default:
			rendered = append(rendered, s.ButtonNormal.Render(btn.Label))
		}
	}

	return lipgloss.PlaceHorizontal(b.width, lipgloss.Center, strings.Join(rendered, ""))
}

// FlowButtons creates the Back/Continue pair shown under every flow step.
// Continue is disabled whenever the current step cannot advance.
func FlowButtons(canContinue bool, continueLabel string) []Button {
	next := ButtonFocused
	if !canContinue {
		next = ButtonDisabled
	}
	return []Button{
		{Label: "← Back", State: ButtonNormal},
		{Label: continueLabel, State: next},
	}
}
