package flows

import "github.com/blinxlabs/zaps/internal/stepwizard"

// StepInfo describes one step for listings.
type StepInfo struct {
	ID       string
	Gated    bool // Has a validity predicate
	Terminal bool
}

// FlowInfo describes one flow for listings.
type FlowInfo struct {
	Name  string
	Title string
	Steps []StepInfo
}

func describe[D any](name, title string, w *stepwizard.Wizard[D]) FlowInfo {
	steps := w.Steps()
	info := FlowInfo{Name: name, Title: title, Steps: make([]StepInfo, len(steps))}
	for i, s := range steps {
		info.Steps[i] = StepInfo{ID: s.ID, Gated: s.Valid != nil, Terminal: s.Terminal}
	}
	return info
}

// Describe lists every flow with its ordered steps.
func Describe() []FlowInfo {
	return []FlowInfo{
		describe("onboarding", "Personal account setup", NewOnboarding()),
		describe("transfer", "Send", NewTransfer()),
		describe("receive", "Receive", NewReceive()),
		describe("tap-to-pay", "Tap to pay", NewTapToPay()),
		describe("accept-payment", "Merchant accept payment", NewAcceptPayment()),
		describe("change-password", "Change password", NewChangePassword()),
	}
}
