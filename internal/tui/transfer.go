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

// transferScreen hosts the send flow.
type transferScreen struct {
	env    *env
	wizard *stepwizard.Wizard[*flows.TransferData]
	data   *flows.TransferData

	destinations *picker
	form         *paymentForm
}

func newTransferScreen(e *env) *transferScreen {
	titles := make([]string, len(flows.Destinations))
	for i, d := range flows.Destinations {
		titles[i] = d.Label()
	}
	return &transferScreen{
		env:          e,
		wizard:       flows.NewTransfer(),
		data:         &flows.TransferData{},
		destinations: newPicker(titles, []string{"Send to a Zaps ID", "Send to any Stellar address"}),
		form:         newPaymentForm("ada.zaps"),
	}
}

func (s *transferScreen) Init() tea.Cmd {
	return loadTokens(s.env)
}

func (s *transferScreen) Title() string { return "Send" }

func (s *transferScreen) CapturesInput() bool {
	return s.wizard.Current().ID == flows.TransferDetails
}

// enterStep prepares the current step after the cursor moved.
func (s *transferScreen) enterStep() tea.Cmd {
	s.form.Blur()
	if s.wizard.Current().ID != flows.TransferDetails {
		return nil
	}
	placeholder := "ada.zaps"
	if s.data.Destination == flows.DestinationExternal {
		placeholder = "G... Stellar address"
	}
	s.form.fields.inputs[0].Placeholder = placeholder
	return s.form.Focus(0)
}

func (s *transferScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tokensLoadedMsg:
		if msg.err != nil {
			logger.Error("Failed to load tokens: %v", msg.err)
			return showToast("Could not load tokens")
		}
		s.form.SetTokens(msg.tokens)
		s.sync()
		return nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			if s.wizard.Current().ID == flows.TransferSuccess {
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

	switch s.wizard.Current().ID {
	case flows.TransferChoose:
		if s.destinations.Update(msg) {
			s.data.Destination = flows.Destinations[s.destinations.Selected()]
		}
	case flows.TransferDetails:
		cmd := s.form.Update(msg)
		s.sync()
		return cmd
	}
	return nil
}

func (s *transferScreen) sync() {
	s.data.Recipient = s.form.Recipient()
	s.data.Amount = s.form.Amount()
	s.data.TokenID = s.form.TokenID()
}

func (s *transferScreen) proceed() tea.Cmd {
	switch s.wizard.Continue(s.data) {
	case stepwizard.OutcomeAdvanced:
		cmd := s.enterStep()
		if s.wizard.Current().ID == flows.TransferSuccess {
			tx := wallet.Transaction{
				Kind:    wallet.KindTransfer,
				Address: s.data.Recipient,
				Amount:  s.data.Amount,
				Token:   s.data.TokenID,
			}
			logger.Info("Transfer of %s %s to %s confirmed", tx.Amount, tx.Token, tx.Address)
			return tea.Batch(cmd, record(tx))
		}
		return cmd
	case stepwizard.OutcomeComplete:
		return home
	}
	return nil
}

func (s *transferScreen) View(width, height int) string {
	st := theme.Current().S()
	var title, body string
	label := "Continue"

	switch s.wizard.Current().ID {
	case flows.TransferChoose:
		title = "Send to"
		body = s.destinations.View(width)
	case flows.TransferDetails:
		title = "Transfer details"
		body = st.Muted.Render(s.data.Destination.Label()) + "\n\n" + s.form.View()
		if s.data.Amount != "" && !flows.ValidAmount(s.data.Amount) {
			body += "\n\n" + st.Error.Render("Enter a positive amount with at most 7 decimals")
		}
	case flows.TransferConfirm:
		title = "Confirm transfer"
		symbol := strings.ToUpper(s.data.TokenID)
		if tok, ok := s.form.Token(); ok {
			symbol = tok.Symbol
		}
		body = strings.Join([]string{
			st.Muted.Render("To") + "      " + s.data.Recipient,
			st.Muted.Render("Via") + "     " + s.data.Destination.Label(),
			st.Muted.Render("Amount") + "  " + st.Amount.Render(s.data.Amount+" "+symbol),
		}, "\n")
		label = "Send"
	case flows.TransferSuccess:
		title = "Transfer sent"
		body = st.Amount.Render(s.data.Amount+" "+strings.ToUpper(s.data.TokenID)) + "\n" +
			st.Subtitle.Render("is on its way to "+s.data.Recipient)
		label = "Done"
	}

	footer := flowFooter(width, s.wizard.CanAdvance(s.data), label)
	return renderFrame(width, height, title, stepCounter(s.wizard.Position()), body, footer)
}
