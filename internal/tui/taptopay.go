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

// tapToPayScreen hosts the tap-to-pay flow. The searching and terminalFound
// steps advance on their own when their delays fire; back is always linear.
type tapToPayScreen struct {
	env    *env
	wizard *stepwizard.Wizard[*flows.TapToPayData]
	data   *flows.TapToPayData
	form   *paymentForm

	spinner  spinner.Model
	search   *Delay
	terminal *Delay
}

func newTapToPayScreen(e *env) *tapToPayScreen {
	return &tapToPayScreen{
		env:    e,
		wizard: flows.NewTapToPay(),
		data:   &flows.TapToPayData{},
		form:   newPaymentForm(""),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current().Secondary))),
		),
		search:   NewDelay(e.cfg.SearchDelay),
		terminal: NewDelay(e.cfg.TerminalDelay),
	}
}

func (s *tapToPayScreen) Init() tea.Cmd {
	return loadTokens(s.env)
}

func (s *tapToPayScreen) Title() string { return "Tap to pay" }

func (s *tapToPayScreen) CapturesInput() bool {
	return s.wizard.Current().ID == flows.TapTransfer
}

// Close cancels any pending step timer.
func (s *tapToPayScreen) Close() {
	s.search.Stop()
	s.terminal.Stop()
}

// enterStep arms the timer or focuses the form of the current step. Timers of
// other steps are cancelled first.
func (s *tapToPayScreen) enterStep() tea.Cmd {
	s.Close()
	s.form.Blur()
	switch s.wizard.Current().ID {
	case flows.TapSearching:
		return tea.Batch(s.search.Start(), s.spinner.Tick)
	case flows.TapTerminalFound:
		return s.terminal.Start()
	case flows.TapTransfer:
		return s.form.Focus(0)
	}
	return nil
}

func (s *tapToPayScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tokensLoadedMsg:
		if msg.err != nil {
			logger.Error("Failed to load tokens: %v", msg.err)
			return showToast("Could not load tokens")
		}
		s.form.SetTokens(msg.tokens)
		s.sync()
		return nil
	case DelayMsg:
		if s.search.Fired(msg) || s.terminal.Fired(msg) {
			if s.wizard.Advance(s.data) {
				logger.Debug("Tap to pay advanced to %s", s.wizard.Current().ID)
				return s.enterStep()
			}
		}
		return nil
	case spinner.TickMsg:
		if s.search.Active() || s.terminal.Active() {
			var cmd tea.Cmd
			s.spinner, cmd = s.spinner.Update(msg)
			return cmd
		}
		return nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			if s.wizard.Current().ID == flows.TapSuccess {
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

	if s.wizard.Current().ID == flows.TapTransfer {
		cmd := s.form.Update(msg)
		s.sync()
		return cmd
	}
	return nil
}

func (s *tapToPayScreen) sync() {
	s.data.Amount = s.form.Amount()
	s.data.TokenID = s.form.TokenID()
}

func (s *tapToPayScreen) proceed() tea.Cmd {
	switch s.wizard.Current().ID {
	case flows.TapSearching, flows.TapTerminalFound:
		return nil
	}
	switch s.wizard.Continue(s.data) {
	case stepwizard.OutcomeAdvanced:
		cmd := s.enterStep()
		if s.wizard.Current().ID == flows.TapSuccess {
			tx := wallet.Transaction{
				Kind:    wallet.KindTransfer,
				Address: s.env.cfg.MerchantName,
				Amount:  s.data.Amount,
				Token:   s.data.TokenID,
			}
			logger.Info("Tap to pay of %s %s confirmed", tx.Amount, tx.Token)
			return tea.Batch(cmd, record(tx))
		}
		return cmd
	case stepwizard.OutcomeComplete:
		return home
	}
	return nil
}

func (s *tapToPayScreen) View(width, height int) string {
	st := theme.Current().S()
	var title, body string
	label := "Continue"
	showButtons := true

	switch s.wizard.Current().ID {
	case flows.TapReady:
		title = "Ready to pay"
		body = st.Subtitle.Render("Hold your device near the payment terminal.")
		label = "Start"
	case flows.TapSearching:
		title = "Searching"
		body = s.spinner.View() + " " + st.Subtitle.Render("Looking for a nearby terminal…")
		showButtons = false
	case flows.TapTerminalFound:
		title = "Terminal found"
		body = st.Amount.Render(s.env.cfg.MerchantName) + "\n" + st.Muted.Render("Connecting…")
		showButtons = false
	case flows.TapTransfer:
		title = "Amount"
		body = s.form.View()
	case flows.TapConfirm:
		title = "Confirm payment"
		symbol := strings.ToUpper(s.data.TokenID)
		if tok, ok := s.form.Token(); ok {
			symbol = tok.Symbol
		}
		body = st.Muted.Render("Pay ") + st.Amount.Render(s.data.Amount+" "+symbol) +
			st.Muted.Render(" to ") + s.env.cfg.MerchantName
		label = "Pay"
	case flows.TapSuccess:
		title = "Payment complete"
		body = st.Amount.Render("Paid "+s.data.Amount+" "+strings.ToUpper(s.data.TokenID)) + "\n" +
			st.Subtitle.Render("to "+s.env.cfg.MerchantName)
		label = "Done"
	}

	footer := st.Muted.Render("esc to cancel")
	if showButtons {
		footer = flowFooter(width, s.wizard.CanAdvance(s.data), label)
	}
	return renderFrame(width, height, title, stepCounter(s.wizard.Position()), body, footer)
}
