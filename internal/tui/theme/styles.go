package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Amount   lipgloss.Style
	Error    lipgloss.Style

	// Cards are the selectable blocks on choose steps and menus.
	Card         lipgloss.Style
	CardSelected lipgloss.Style

	// Screen frame
	Frame       lipgloss.Style
	StepCounter lipgloss.Style

	ButtonNormal   lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonFocused  lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Toast lipgloss.Style
}

func (t *Theme) buildStyles() *Styles {
	button := lipgloss.NewStyle().Padding(0, 2).MarginLeft(1).MarginRight(1)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Gray)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Amount: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)),

		Card: card.
			BorderForeground(lipgloss.Color(t.DarkGray)).
			Foreground(lipgloss.Color(t.Gray)),
		CardSelected: card.
			BorderForeground(lipgloss.Color(t.Secondary)).
			Foreground(lipgloss.Color(t.White)).
			Bold(true),

		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Primary)).
			Padding(1, 2),
		StepCounter: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Italic(true),

		ButtonNormal: button.
			Foreground(lipgloss.Color(t.White)).
			Background(lipgloss.Color(t.DarkGray)),
		ButtonDisabled: button.
			Foreground(lipgloss.Color(t.Muted)).
			Background(lipgloss.Color(t.Black)),
		ButtonFocused: button.
			Foreground(lipgloss.Color(t.Black)).
			Background(lipgloss.Color(t.Secondary)).
			Bold(true),

		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Black)).
			Background(lipgloss.Color(t.Secondary)).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Gray)).
			Padding(0, 1),

		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Black)).
			Background(lipgloss.Color(t.Warning)).
			Padding(0, 1).
			Bold(true),
	}
}
