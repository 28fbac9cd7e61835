package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/blinxlabs/zaps/internal/tui/theme"
)

// scanScreen stands in for the camera view; terminals have no camera, so it
// offers tap to pay instead.
type scanScreen struct {
	env   *env
	flash bool
	menu  *menu
}

func newScanScreen(e *env) *scanScreen {
	s := &scanScreen{env: e}
	s.menu = newMenu(
		menuItem{Label: "Toggle flash", Action: func() tea.Cmd {
			s.flash = !s.flash
			return nil
		}},
		menuItem{Label: "Tap to pay instead", Action: func() tea.Cmd {
			return replace(newTapToPayScreen(e))
		}},
	)
	return s
}

func (s *scanScreen) Init() tea.Cmd { return nil }

func (s *scanScreen) Title() string { return "Scan" }

func (s *scanScreen) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc":
			return back
		case "f":
			s.flash = !s.flash
			return nil
		}
	}
	return s.menu.Update(msg)
}

func (s *scanScreen) View(width, height int) string {
	st := theme.Current().S()
	t := theme.Current()

	border := t.DarkGray
	if s.flash {
		border = t.Secondary
	}
	viewfinder := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(border)).
		Width(24).
		Height(8).
		Align(lipgloss.Center, lipgloss.Center).
		Render(st.Muted.Render("camera unavailable"))

	flash := "off"
	if s.flash {
		flash = "on"
	}
	body := strings.Join([]string{
		lipgloss.PlaceHorizontal(frameWidth(width)-6, lipgloss.Center, viewfinder),
		"",
		st.Subtitle.Render("Align the QR code within the frame."),
		st.Muted.Render("Flash: " + flash + " (f)"),
		"",
		s.menu.View(),
	}, "\n")
	return renderFrame(width, height, "Scan to pay", "", body, "")
}
