package tui

import (
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/blinxlabs/zaps/internal/flows"
	"github.com/blinxlabs/zaps/internal/logger"
	"github.com/blinxlabs/zaps/internal/stepwizard"
	"github.com/blinxlabs/zaps/internal/tui/theme"
	"github.com/blinxlabs/zaps/internal/wallet"
)

// acceptPaymentScreen hosts the merchant accept-payment flow. Waiting and
// contactMade advance on their own after the configured delays.
type acceptPaymentScreen struct {
	env    *env
	wizard *stepwizard.Wizard[*flows.AcceptData]
	data   *flows.AcceptData

	amount        *fieldGroup
	preset        int
	presetFocused bool

	spinner spinner.Model
	waiting *Delay
	contact *Delay
}

func newAcceptPaymentScreen(e *env) *acceptPaymentScreen {
	return &acceptPaymentScreen{
		env:    e,
		wizard: flows.NewAcceptPayment(),
		data:   &flows.AcceptData{},
		amount: newFieldGroup().Add("Amount (USD)", newInput("0.00", false)),
		preset: -1,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current().Secondary))),
		),
		waiting: NewDelay(e.cfg.WaitingDelay),
		contact: NewDelay(e.cfg.ContactDelay),
	}
}

func (s *acceptPaymentScreen) Init() tea.Cmd {
	return s.enterStep()
}

func (s *acceptPaymentScreen) Title() string { return "Accept payment" }

func (s *acceptPaymentScreen) CapturesInput() bool {
	return s.wizard.Current().ID == flows.AcceptAmount && !s.presetFocused
}

// Close cancels any pending step timer.
func (s *acceptPaymentScreen) Close() {
	s.waiting.Stop()
	s.contact.Stop()
}

func (s *acceptPaymentScreen) enterStep() tea.Cmd {
	s.Close()
	s.amount.Blur()
	switch s.wizard.Current().ID {
	case flows.AcceptAmount:
		s.presetFocused = false
		return s.amount.Focus(0)
	case flows.AcceptWaiting:
		return tea.Batch(s.waiting.Start(), s.spinner.Tick)
	case flows.AcceptContactMade:
		return tea.Batch(s.contact.Start(), s.spinner.Tick)
	case flows.AcceptReceived:
		tx := wallet.Transaction{
			Kind:    wallet.KindReceived,
			Address: "Customer",
			Amount:  s.data.Amount,
			Value:   "$" + s.data.Amount,
			Token:   "usdc",
		}
		logger.Info("Payment of $%s received by %s", s.data.Amount, s.env.cfg.MerchantName)
		return record(tx)
	}
	return nil
}

func (s *acceptPaymentScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case DelayMsg:
		if s.waiting.Fired(msg) || s.contact.Fired(msg) {
			if s.wizard.Advance(s.data) {
				return s.enterStep()
			}
		}
		return nil
	case spinner.TickMsg:
		if s.waiting.Active() || s.contact.Active() {
			var cmd tea.Cmd
			s.spinner, cmd = s.spinner.Update(msg)
			return cmd
		}
		return nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			if s.wizard.Current().ID == flows.AcceptReceived {
				return home
			}
			if s.wizard.Retreat() == stepwizard.RetreatExit {
				return back
			}
			return s.enterStep()
		case "enter":
			return s.proceed()
		}
	}

	if s.wizard.Current().ID == flows.AcceptAmount {
		return s.updateAmount(msg)
	}
	return nil
}

// updateAmount handles the amount field and the preset row below it.
func (s *acceptPaymentScreen) updateAmount(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "tab", "down", "shift+tab", "up":
			s.presetFocused = !s.presetFocused
			if s.presetFocused {
				s.amount.Blur()
				return nil
			}
			return s.amount.Focus(0)
		case "left", "right":
			if s.presetFocused {
				n := len(flows.PresetAmounts)
				if key.String() == "right" {
					s.preset = (s.preset + 1) % n
				} else if s.preset <= 0 {
					s.preset = n - 1
				} else {
					s.preset--
				}
				s.amount.SetValue(0, flows.PresetAmounts[s.preset])
				s.data.Amount = flows.PresetAmounts[s.preset]
				return nil
			}
		}
	}
	if s.presetFocused {
		return nil
	}
	cmd := s.amount.Update(msg)
	s.data.Amount = strings.TrimSpace(s.amount.Value(0))
	s.preset = -1
	for i, p := range flows.PresetAmounts {
		if p == s.data.Amount {
			s.preset = i
		}
	}
	return cmd
}

func (s *acceptPaymentScreen) proceed() tea.Cmd {
	switch s.wizard.Current().ID {
	case flows.AcceptWaiting, flows.AcceptContactMade:
		return nil
	}
	switch s.wizard.Continue(s.data) {
	case stepwizard.OutcomeAdvanced:
		return s.enterStep()
	case stepwizard.OutcomeComplete:
		return home
	}
	return nil
}

func (s *acceptPaymentScreen) presetsView() string {
	st := theme.Current().S()
	chips := make([]string, 0, len(flows.PresetAmounts))
	for i, p := range flows.PresetAmounts {
		if i == s.preset {
			chips = append(chips, st.TabActive.Render("$"+p))
		} else {
			chips = append(chips, st.TabInactive.Render("$"+p))
		}
	}
	hint := "tab for presets"
	if s.presetFocused {
		hint = "←/→ to pick"
	}
	return strings.Join(chips, " ") + "  " + st.Muted.Render(hint)
}

func (s *acceptPaymentScreen) View(width, height int) string {
	st := theme.Current().S()
	var title, body string
	label := "Continue"
	showButtons := true

	switch s.wizard.Current().ID {
	case flows.AcceptAmount:
		title = "Enter amount"
		body = s.amount.View() + "\n\n" + s.presetsView()
		if s.data.Amount != "" && !flows.ValidAmount(s.data.Amount) {
			body += "\n\n" + st.Error.Render("Enter a positive amount")
		}
		label = "Request"
	case flows.AcceptWaiting:
		title = "Waiting for customer"
		body = st.Amount.Render("$"+s.data.Amount) + "\n\n" +
			s.spinner.View() + " " + st.Subtitle.Render("Ask the customer to tap their phone.")
		showButtons = false
	case flows.AcceptContactMade:
		title = "Contact made"
		body = s.spinner.View() + " " + st.Subtitle.Render("Processing $"+s.data.Amount+"…")
		showButtons = false
	case flows.AcceptReceived:
		title = "Payment received"
		body = st.Amount.Render("$"+s.data.Amount) + "\n" + st.Subtitle.Render("paid to "+s.env.cfg.MerchantName)
		label = "Done"
	}

	footer := st.Muted.Render("esc to cancel")
	if showButtons {
		footer = flowFooter(width, s.wizard.CanAdvance(s.data), label)
	}
	return renderFrame(width, height, title, stepCounter(s.wizard.Position()), body, footer)
}
