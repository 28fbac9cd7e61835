package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/blinxlabs/zaps/internal/logger"
	"github.com/blinxlabs/zaps/internal/tui/theme"
)

// settingsScreen shows merchant toggles. Changes are saved immediately.
type settingsScreen struct {
	env  *env
	menu *menu
}

func newSettingsScreen(e *env) *settingsScreen {
	s := &settingsScreen{env: e}
	m := &e.prefs.Merchant
	s.menu = newMenu(
		menuItem{Label: "Payment notifications", Action: func() tea.Cmd {
			m.Notifications = !m.Notifications
			s.refresh()
			e.savePrefs()
			logger.Debug("Notifications set to %t", m.Notifications)
			return nil
		}},
		menuItem{Label: "Biometric unlock", Action: func() tea.Cmd {
			m.Biometrics = !m.Biometrics
			s.refresh()
			e.savePrefs()
			logger.Debug("Biometrics set to %t", m.Biometrics)
			return nil
		}},
		menuItem{Label: "Change password", Action: func() tea.Cmd {
			return push(newChangePasswordScreen(e))
		}},
		menuItem{Label: "Log out", Action: func() tea.Cmd {
			logger.Info("Logged out")
			return reset(newWelcomeScreen(e))
		}},
	)
	s.refresh()
	return s
}

// refresh writes the toggle states into the menu details.
func (s *settingsScreen) refresh() {
	s.menu.items[0].Detail = onOff(s.env.prefs.Merchant.Notifications)
	s.menu.items[1].Detail = onOff(s.env.prefs.Merchant.Biometrics)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (s *settingsScreen) Init() tea.Cmd { return nil }

func (s *settingsScreen) Title() string { return "Settings" }

func (s *settingsScreen) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "esc" {
		return back
	}
	return s.menu.Update(msg)
}

func (s *settingsScreen) View(width, height int) string {
	st := theme.Current().S()
	body := st.Subtitle.Render(s.env.cfg.MerchantName) + "\n\n" + s.menu.View()
	return renderFrame(width, height, "Settings", "", body, st.Muted.Render("enter toggles • esc back"))
}
