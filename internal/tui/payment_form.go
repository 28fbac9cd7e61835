package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/blinxlabs/zaps/internal/tui/theme"
	"github.com/blinxlabs/zaps/internal/wallet"
)

// tokenSelector is a single-row token chooser cycled with left/right.
type tokenSelector struct {
	tokens  []wallet.Token
	index   int
	focused bool
}

func (t *tokenSelector) SetTokens(tokens []wallet.Token, keepID string) {
	t.tokens = tokens
	t.index = 0
	for i, tok := range tokens {
		if tok.ID == keepID {
			t.index = i
		}
	}
}

func (t *tokenSelector) Update(msg tea.Msg) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !t.focused || len(t.tokens) == 0 {
		return
	}
	switch key.String() {
	case "left", "h":
		t.index = (t.index - 1 + len(t.tokens)) % len(t.tokens)
	case "right", "l", "space":
		t.index = (t.index + 1) % len(t.tokens)
	}
}

// ID returns the selected token id, or "" before tokens are loaded.
func (t *tokenSelector) ID() string {
	if len(t.tokens) == 0 {
		return ""
	}
	return t.tokens[t.index].ID
}

func (t *tokenSelector) View() string {
	st := theme.Current().S()
	if len(t.tokens) == 0 {
		return st.Muted.Render("Token") + "\n" + st.Muted.Render("loading…")
	}
	tok := t.tokens[t.index]
	value := "‹ " + tok.Symbol + " ›"
	if t.focused {
		value = st.Title.Render(value)
	} else {
		value = st.Subtitle.Render(value)
	}
	return st.Muted.Render("Token") + "\n" + value + "  " + st.Muted.Render("balance "+tok.Balance)
}

// paymentForm collects an optional recipient, an amount and a token. Focus
// moves through the text fields and then the token row.
type paymentForm struct {
	fields       *fieldGroup
	tokens       tokenSelector
	slot         int
	hasRecipient bool
}

func newPaymentForm(recipientPlaceholder string) *paymentForm {
	f := &paymentForm{fields: newFieldGroup()}
	if recipientPlaceholder != "" {
		f.hasRecipient = true
		f.fields.Add("Recipient", newInput(recipientPlaceholder, false))
	}
	amount := newInput("0.00", false)
	amount.CharLimit = 24
	f.fields.Add("Amount", amount)
	return f
}

func (f *paymentForm) slots() int {
	return len(f.fields.inputs) + 1
}

// Focus moves focus to slot i; the last slot is the token row.
func (f *paymentForm) Focus(i int) tea.Cmd {
	f.slot = (i + f.slots()) % f.slots()
	if f.slot == f.slots()-1 {
		f.fields.Blur()
		f.tokens.focused = true
		return nil
	}
	f.tokens.focused = false
	return f.fields.Focus(f.slot)
}

func (f *paymentForm) Blur() {
	f.fields.Blur()
	f.tokens.focused = false
}

func (f *paymentForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "tab", "down":
			return f.Focus(f.slot + 1)
		case "shift+tab", "up":
			return f.Focus(f.slot - 1)
		}
	}
	if f.tokens.focused {
		f.tokens.Update(msg)
		return nil
	}
	return f.fields.Update(msg)
}

func (f *paymentForm) SetTokens(tokens []wallet.Token) {
	f.tokens.SetTokens(tokens, f.tokens.ID())
}

func (f *paymentForm) SetAmount(v string) {
	f.fields.SetValue(len(f.fields.inputs)-1, v)
}

func (f *paymentForm) Recipient() string {
	if !f.hasRecipient {
		return ""
	}
	return strings.TrimSpace(f.fields.Value(0))
}

func (f *paymentForm) Amount() string {
	return strings.TrimSpace(f.fields.Value(len(f.fields.inputs) - 1))
}

func (f *paymentForm) TokenID() string {
	return f.tokens.ID()
}

// Token returns the selected token, if any are loaded.
func (f *paymentForm) Token() (wallet.Token, bool) {
	return wallet.FindToken(f.tokens.tokens, f.tokens.ID())
}

func (f *paymentForm) View() string {
	return f.fields.View() + "\n" + f.tokens.View()
}
