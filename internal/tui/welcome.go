package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/blinxlabs/zaps/internal/logger"
	"github.com/blinxlabs/zaps/internal/tui/theme"
	"github.com/blinxlabs/zaps/internal/wallet"
)

const (
	logoLine1 = "▀▀█ ▄▀█ █▀█ █▀"
	logoLine2 = "█▄▄ █▀█ █▀▀ ▄█"
)

// Logo renders the wordmark with the brand gradient.
func Logo() string {
	t := theme.Current()
	return strings.Join([]string{
		theme.ApplyGradient(logoLine1, t.Secondary, t.White),
		theme.ApplyGradient(logoLine2, t.Secondary, t.White),
	}, "\n")
}

type welcomeScreen struct {
	env  *env
	menu *menu
}

func newWelcomeScreen(e *env) *welcomeScreen {
	s := &welcomeScreen{env: e}
	s.menu = newMenu(
		menuItem{Label: "Get started", Detail: "create an account", Action: func() tea.Cmd {
			return push(newAccountTypeScreen(e))
		}},
	)
	return s
}

func (s *welcomeScreen) Init() tea.Cmd { return nil }

func (s *welcomeScreen) Title() string { return "Welcome" }

func (s *welcomeScreen) Update(msg tea.Msg) tea.Cmd {
	return s.menu.Update(msg)
}

func (s *welcomeScreen) View(width, height int) string {
	st := theme.Current().S()
	body := Logo() + "\n\n" +
		st.Subtitle.Render("Send, receive and accept payments on Stellar.") + "\n\n" +
		s.menu.View()
	return renderFrame(width, height, "Welcome to Zaps", "", body, "")
}

type accountTypeScreen struct {
	env    *env
	picker *picker
}

var accountKinds = []wallet.AccountKind{wallet.AccountPersonal, wallet.AccountMerchant}

func newAccountTypeScreen(e *env) *accountTypeScreen {
	return &accountTypeScreen{
		env: e,
		picker: newPicker(
			[]string{"Personal", "Merchant"},
			[]string{"Send and receive money", "Accept payments from customers"},
		),
	}
}

func (s *accountTypeScreen) Init() tea.Cmd { return nil }

func (s *accountTypeScreen) Title() string { return "Account type" }

func (s *accountTypeScreen) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc":
			return back
		case "enter":
			i := s.picker.Selected()
			if i < 0 {
				return nil
			}
			switch accountKinds[i] {
			case wallet.AccountMerchant:
				s.env.profile = wallet.DefaultProfile(wallet.AccountMerchant, s.env.cfg.Username)
				logger.Info("Merchant account selected")
				return reset(newMerchantHomeScreen(s.env))
			default:
				return push(newOnboardingScreen(s.env))
			}
		}
	}
	s.picker.Update(msg)
	return nil
}

func (s *accountTypeScreen) View(width, height int) string {
	footer := flowFooter(width, s.picker.Selected() >= 0, "Continue")
	return renderFrame(width, height, "Choose an account type", "", s.picker.View(width), footer)
}
