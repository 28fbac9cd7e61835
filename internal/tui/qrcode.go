package tui

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/blinxlabs/zaps/internal/flows"
	"github.com/blinxlabs/zaps/internal/logger"
	"github.com/blinxlabs/zaps/internal/tui/theme"
)

// PaymentRequest is the payload a merchant QR code carries.
type PaymentRequest struct {
	Amount    string `json:"amount"`
	Merchant  string `json:"merchant"`
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
	Currency  string `json:"currency"`
}

// NewPaymentRequest builds a USD request for merchant at now.
func NewPaymentRequest(amount, merchant string, now time.Time) PaymentRequest {
	return PaymentRequest{
		Amount:    amount,
		Merchant:  merchant,
		Timestamp: now.UnixMilli(),
		Currency:  "USD",
	}
}

// Encode renders the request as indented JSON.
func (r PaymentRequest) Encode() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding payment request: %w", err)
	}
	return string(data), nil
}

// qrCodeScreen generates a payment request for an amount.
type qrCodeScreen struct {
	env     *env
	amount  *fieldGroup
	payload string
	now     func() time.Time
}

func newQRCodeScreen(e *env) *qrCodeScreen {
	return &qrCodeScreen{
		env:    e,
		amount: newFieldGroup().Add("Amount (USD)", newInput("0.00", false)),
		now:    time.Now,
	}
}

func (s *qrCodeScreen) Init() tea.Cmd { return s.amount.Focus(0) }

func (s *qrCodeScreen) Title() string { return "QR code" }

func (s *qrCodeScreen) CapturesInput() bool { return s.payload == "" }

func (s *qrCodeScreen) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc":
			if s.payload != "" {
				s.payload = ""
				return s.amount.Focus(0)
			}
			return back
		case "enter":
			if s.payload != "" {
				return home
			}
			return s.generate()
		}
	}
	if s.payload != "" {
		return nil
	}
	return s.amount.Update(msg)
}

func (s *qrCodeScreen) generate() tea.Cmd {
	amount := strings.TrimSpace(s.amount.Value(0))
	if !flows.ValidAmount(amount) {
		return nil
	}
	payload, err := NewPaymentRequest(amount, s.env.cfg.MerchantName, s.now()).Encode()
	if err != nil {
		logger.Error("Failed to build payment request: %v", err)
		return showToast("Could not create QR code")
	}
	s.payload = payload
	s.amount.Blur()
	logger.Debug("Payment request generated for $%s", amount)
	return nil
}

func (s *qrCodeScreen) View(width, height int) string {
	st := theme.Current().S()
	if s.payload == "" {
		amount := strings.TrimSpace(s.amount.Value(0))
		footer := flowFooter(width, flows.ValidAmount(amount), "Generate")
		return renderFrame(width, height, "Payment QR code", "", s.amount.View(), footer)
	}
	body := st.Subtitle.Render("Customers scan this code to pay "+s.env.cfg.MerchantName) + "\n\n" +
		st.CardSelected.Render(s.payload)
	return renderFrame(width, height, "Payment QR code", "", body, flowFooter(width, true, "Done"))
}
