package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/blinxlabs/zaps/internal/flows"
	"github.com/blinxlabs/zaps/internal/stepwizard"
	"github.com/blinxlabs/zaps/internal/tui/theme"
)

// receiveScreen hosts the receive flow.
type receiveScreen struct {
	env     *env
	wizard  *stepwizard.Wizard[*flows.ReceiveData]
	data    *flows.ReceiveData
	sources *picker
}

func newReceiveScreen(e *env) *receiveScreen {
	return &receiveScreen{
		env:    e,
		wizard: flows.NewReceive(),
		data:   &flows.ReceiveData{},
		sources: newPicker(
			[]string{"From a Blinx User", "From an External Wallet"},
			[]string{"Share your Zaps ID", "Share your Stellar address"},
		),
	}
}

func (s *receiveScreen) Init() tea.Cmd { return nil }

func (s *receiveScreen) Title() string { return "Receive" }

// shareValue is the identifier shown on the share step.
func (s *receiveScreen) shareValue() (label, value string) {
	if s.data.Destination == flows.DestinationExternal {
		return "Wallet address", s.env.profile.WalletAddress
	}
	return "Zaps ID", s.env.profile.ZapsID
}

func (s *receiveScreen) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc":
			if s.wizard.Retreat() == stepwizard.RetreatExit {
				return back
			}
			return nil
		case "enter":
			if s.wizard.Continue(s.data) == stepwizard.OutcomeComplete {
				return home
			}
			return nil
		}
	}
	if s.wizard.Current().ID == flows.ReceiveChoose && s.sources.Update(msg) {
		s.data.Destination = flows.Destinations[s.sources.Selected()]
	}
	return nil
}

func (s *receiveScreen) View(width, height int) string {
	st := theme.Current().S()
	var title, body string
	label := "Continue"

	switch s.wizard.Current().ID {
	case flows.ReceiveChoose:
		title = "Receive"
		body = s.sources.View(width)
	case flows.ReceiveShare:
		name, value := s.shareValue()
		title = "Share your " + name
		body = st.Muted.Render(name) + "\n" +
			st.CardSelected.Render(st.Amount.Render(value)) + "\n\n" +
			st.Subtitle.Render("Anyone with this "+name+" can send you money.")
		label = "Done"
	}

	footer := flowFooter(width, s.wizard.CanAdvance(s.data), label)
	return renderFrame(width, height, title, stepCounter(s.wizard.Position()), body, footer)
}
