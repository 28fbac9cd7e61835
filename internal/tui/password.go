package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/blinxlabs/zaps/internal/flows"
	"github.com/blinxlabs/zaps/internal/logger"
	"github.com/blinxlabs/zaps/internal/stepwizard"
	"github.com/blinxlabs/zaps/internal/tui/theme"
)

type changePasswordScreen struct {
	wizard *stepwizard.Wizard[*flows.PasswordData]
	data   *flows.PasswordData
	fields *fieldGroup
}

func newChangePasswordScreen(*env) *changePasswordScreen {
	return &changePasswordScreen{
		wizard: flows.NewChangePassword(),
		data:   &flows.PasswordData{},
		fields: newFieldGroup().
			Add("Current password", newInput("current", true)).
			Add("New password", newInput("new", true)).
			Add("Confirm new password", newInput("repeat new", true)),
	}
}

func (s *changePasswordScreen) Init() tea.Cmd { return s.fields.Focus(0) }

func (s *changePasswordScreen) Title() string { return "Change password" }

func (s *changePasswordScreen) CapturesInput() bool {
	return s.wizard.Current().ID == flows.PasswordForm
}

func (s *changePasswordScreen) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc":
			if s.wizard.Retreat() == stepwizard.RetreatExit {
				return back
			}
			return s.fields.Focus(0)
		case "enter":
			switch s.wizard.Continue(s.data) {
			case stepwizard.OutcomeAdvanced:
				s.fields.Blur()
				logger.Info("Password changed")
			case stepwizard.OutcomeComplete:
				return home
			}
			return nil
		}
	}
	if s.wizard.Current().ID != flows.PasswordForm {
		return nil
	}
	cmd := s.fields.Update(msg)
	s.data.Current = s.fields.Value(0)
	s.data.New = s.fields.Value(1)
	s.data.Confirm = s.fields.Value(2)
	return cmd
}

func (s *changePasswordScreen) View(width, height int) string {
	st := theme.Current().S()
	if s.wizard.Current().ID == flows.PasswordDone {
		body := st.Amount.Render("Your password has been updated.")
		return renderFrame(width, height, "Password changed", stepCounter(s.wizard.Position()), body, flowFooter(width, true, "Done"))
	}
	body := s.fields.View()
	if s.data.Confirm != "" && s.data.New != s.data.Confirm {
		body += "\n\n" + st.Error.Render("New passwords do not match")
	}
	return renderFrame(width, height, "Change password", stepCounter(s.wizard.Position()), body,
		flowFooter(width, s.wizard.CanAdvance(s.data), "Save"))
}
