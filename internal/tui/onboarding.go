package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/blinxlabs/zaps/internal/flows"
	"github.com/blinxlabs/zaps/internal/logger"
	"github.com/blinxlabs/zaps/internal/stepwizard"
	"github.com/blinxlabs/zaps/internal/tui/theme"
	"github.com/blinxlabs/zaps/internal/wallet"
)

// onboardingScreen hosts personal account setup.
type onboardingScreen struct {
	env    *env
	wizard *stepwizard.Wizard[*flows.OnboardingData]
	data   *flows.OnboardingData

	username  *fieldGroup
	passwords *fieldGroup
	biometric *picker
}

func newOnboardingScreen(e *env) *onboardingScreen {
	s := &onboardingScreen{
		env:       e,
		wizard:    flows.NewOnboarding(),
		data:      &flows.OnboardingData{},
		username:  newFieldGroup().Add("Username", newInput("e.g. ejembiii", false)),
		passwords: newFieldGroup().Add("Password", newInput("password", true)).Add("Confirm password", newInput("repeat password", true)),
		biometric: newPicker(
			[]string{"Enable biometrics", "Skip for now"},
			[]string{"Unlock with fingerprint or face", ""},
		),
	}
	if e.cfg.Username != "" {
		s.username.SetValue(0, e.cfg.Username)
		s.data.Username = e.cfg.Username
	}
	return s
}

func (s *onboardingScreen) Init() tea.Cmd {
	return s.enterStep()
}

func (s *onboardingScreen) Title() string { return "Create account" }

func (s *onboardingScreen) CapturesInput() bool {
	switch s.wizard.Current().ID {
	case flows.OnboardUsername, flows.OnboardPassword:
		return true
	}
	return false
}

// enterStep focuses the fields belonging to the current step.
func (s *onboardingScreen) enterStep() tea.Cmd {
	s.username.Blur()
	s.passwords.Blur()
	switch s.wizard.Current().ID {
	case flows.OnboardUsername:
		return s.username.Focus(0)
	case flows.OnboardPassword:
		return s.passwords.Focus(0)
	}
	return nil
}

func (s *onboardingScreen) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc":
			if s.wizard.Retreat() == stepwizard.RetreatExit {
				return back
			}
			return s.enterStep()
		case "enter":
			return s.proceed()
		case "space":
			if s.wizard.Current().ID == flows.OnboardBackupKey {
				s.data.BackedUp = !s.data.BackedUp
				return nil
			}
		}
	}

	var cmd tea.Cmd
	switch s.wizard.Current().ID {
	case flows.OnboardUsername:
		cmd = s.username.Update(msg)
		s.data.Username = strings.TrimSpace(s.username.Value(0))
	case flows.OnboardPassword:
		cmd = s.passwords.Update(msg)
		s.data.Password = s.passwords.Value(0)
		s.data.ConfirmPassword = s.passwords.Value(1)
	case flows.OnboardBiometric:
		if s.biometric.Update(msg) {
			s.data.Biometric = s.biometric.Selected() == 0
		}
	}
	return cmd
}

func (s *onboardingScreen) proceed() tea.Cmd {
	switch s.wizard.Continue(s.data) {
	case stepwizard.OutcomeAdvanced:
		return s.enterStep()
	case stepwizard.OutcomeComplete:
		s.env.profile = wallet.DefaultProfile(wallet.AccountPersonal, s.data.Username)
		logger.Info("Onboarding complete for %s (biometric=%t)", s.env.profile.ZapsID, s.data.Biometric)
		return reset(newPersonalHomeScreen(s.env))
	}
	return nil
}

func (s *onboardingScreen) View(width, height int) string {
	st := theme.Current().S()
	var title, body string
	label := "Continue"

	switch s.wizard.Current().ID {
	case flows.OnboardUsername:
		title = "Choose a username"
		body = s.username.View()
		if id := wallet.ZapsID(s.data.Username); id != "" {
			body += "\n\n" + st.Muted.Render("Your Zaps ID: ") + st.Amount.Render(id)
		}
	case flows.OnboardPassword:
		title = "Secure your account"
		body = s.passwords.View()
		if s.data.ConfirmPassword != "" && s.data.Password != s.data.ConfirmPassword {
			body += "\n\n" + st.Error.Render("Passwords do not match")
		}
	case flows.OnboardBiometric:
		title = "Biometric unlock"
		body = s.biometric.View(width)
	case flows.OnboardCreateWallet:
		title = "Your wallet"
		body = st.Subtitle.Render("A Stellar wallet has been created for you.") + "\n\n" +
			st.Muted.Render("Address: ") + wallet.DefaultProfile(wallet.AccountPersonal, s.data.Username).WalletAddress
	case flows.OnboardBackupKey:
		title = "Back up your secret key"
		box := "[ ]"
		if s.data.BackedUp {
			box = "[x]"
		}
		body = st.Subtitle.Render("Write this key down and keep it somewhere safe.") + "\n\n" +
			st.Amount.Render(wallet.DefaultProfile(wallet.AccountPersonal, s.data.Username).SecretKey) + "\n\n" +
			box + " I've backed up my key " + st.Muted.Render("(space)")
		label = "Finish"
	}

	footer := flowFooter(width, s.wizard.CanAdvance(s.data), label)
	return renderFrame(width, height, title, stepCounter(s.wizard.Position()), body, footer)
}
