// Package flows defines the guided wallet flows as stepwizard sequences.
//
// Each flow pairs a data struct, owned by the hosting screen, with a fixed step
// list whose predicates read that struct. Steps without a predicate are always
// valid; no flow checks balances or validates payloads beyond presence and
// amount format.
package flows

import (
	"regexp"
	"strings"

	"github.com/blinxlabs/zaps/internal/stepwizard"
)

// Destination is where a transfer goes or a receive request comes from.
type Destination string

const (
	DestinationNone     Destination = ""
	DestinationZaps     Destination = "zaps"     // Another Blinx user, addressed by Zaps ID
	DestinationExternal Destination = "external" // Any Stellar-compatible wallet address
)

// Label returns the card title used on choose steps.
func (d Destination) Label() string {
	switch d {
	case DestinationZaps:
		return "Blinx User"
	case DestinationExternal:
		return "External Wallet"
	default:
		return ""
	}
}

// Destinations lists the choices in display order.
var Destinations = []Destination{DestinationZaps, DestinationExternal}

// Preset amounts offered on the merchant amount step.
var PresetAmounts = []string{"10", "20", "50", "100"}

// amountPattern accepts a positive decimal with up to seven fractional digits.
var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,7})?$`)

// ValidAmount reports whether s is a positive decimal amount.
func ValidAmount(s string) bool {
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return false
	}
	return strings.Trim(s, "0.") != ""
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Transfer step ids.
const (
	TransferChoose  = "choose"
	TransferDetails = "details"
	TransferConfirm = "confirm"
	TransferSuccess = "success"
)

// TransferData is the form state of a send flow.
type TransferData struct {
	Destination Destination
	Recipient   string
	Amount      string
	TokenID     string
}

// NewTransfer returns the send flow: choose destination, enter details,
// confirm, success.
func NewTransfer() *stepwizard.Wizard[*TransferData] {
	return stepwizard.MustNew(
		stepwizard.Step[*TransferData]{
			ID:    TransferChoose,
			Valid: func(d *TransferData) bool { return d.Destination != DestinationNone },
		},
		stepwizard.Step[*TransferData]{
			ID: TransferDetails,
			Valid: func(d *TransferData) bool {
				return present(d.Recipient) && ValidAmount(d.Amount) && present(d.TokenID)
			},
		},
		stepwizard.Step[*TransferData]{ID: TransferConfirm},
		stepwizard.Step[*TransferData]{ID: TransferSuccess, Terminal: true},
	)
}

// Receive step ids.
const (
	ReceiveChoose = "choose"
	ReceiveShare  = "share"
)

// ReceiveData is the state of a receive flow.
type ReceiveData struct {
	Destination Destination
}

// NewReceive returns the receive flow: choose how to receive, then share.
func NewReceive() *stepwizard.Wizard[*ReceiveData] {
	return stepwizard.MustNew(
		stepwizard.Step[*ReceiveData]{
			ID:    ReceiveChoose,
			Valid: func(d *ReceiveData) bool { return d.Destination != DestinationNone },
		},
		stepwizard.Step[*ReceiveData]{ID: ReceiveShare, Terminal: true},
	)
}

// Tap-to-pay step ids.
const (
	TapReady         = "ready"
	TapSearching     = "searching"
	TapTerminalFound = "terminalFound"
	TapTransfer      = "transfer"
	TapConfirm       = "confirm"
	TapSuccess       = "success"
)

// TapToPayData is the state of a tap-to-pay flow.
type TapToPayData struct {
	Amount  string
	TokenID string
}

// NewTapToPay returns the tap-to-pay flow. The searching and terminalFound
// steps are pass-throughs the host advances from timers.
func NewTapToPay() *stepwizard.Wizard[*TapToPayData] {
	return stepwizard.MustNew(
		stepwizard.Step[*TapToPayData]{ID: TapReady},
		stepwizard.Step[*TapToPayData]{ID: TapSearching},
		stepwizard.Step[*TapToPayData]{ID: TapTerminalFound},
		stepwizard.Step[*TapToPayData]{
			ID:    TapTransfer,
			Valid: func(d *TapToPayData) bool { return ValidAmount(d.Amount) && present(d.TokenID) },
		},
		stepwizard.Step[*TapToPayData]{ID: TapConfirm},
		stepwizard.Step[*TapToPayData]{ID: TapSuccess, Terminal: true},
	)
}

// Onboarding step ids.
const (
	OnboardUsername     = "username"
	OnboardPassword     = "password"
	OnboardBiometric    = "biometric"
	OnboardCreateWallet = "createWallet"
	OnboardBackupKey    = "backupKey"
)

// OnboardingData is the state of personal account setup.
type OnboardingData struct {
	Username        string
	Password        string
	ConfirmPassword string
	Biometric       bool // Opted in; skipping leaves it false
	BackedUp        bool // "I've backed up my key" acknowledgement
}

// NewOnboarding returns personal account setup: username, password,
// biometric opt-in, wallet creation and key backup.
func NewOnboarding() *stepwizard.Wizard[*OnboardingData] {
	return stepwizard.MustNew(
		stepwizard.Step[*OnboardingData]{
			ID:    OnboardUsername,
			Valid: func(d *OnboardingData) bool { return present(d.Username) },
		},
		stepwizard.Step[*OnboardingData]{
			ID: OnboardPassword,
			Valid: func(d *OnboardingData) bool {
				return d.Password != "" && d.Password == d.ConfirmPassword
			},
		},
		stepwizard.Step[*OnboardingData]{ID: OnboardBiometric},
		stepwizard.Step[*OnboardingData]{ID: OnboardCreateWallet},
		stepwizard.Step[*OnboardingData]{
			ID:       OnboardBackupKey,
			Terminal: true,
			Valid:    func(d *OnboardingData) bool { return d.BackedUp },
		},
	)
}

// Merchant accept-payment step ids.
const (
	AcceptAmount      = "amount"
	AcceptWaiting     = "waiting"
	AcceptContactMade = "contactMade"
	AcceptReceived    = "received"
)

// AcceptData is the state of a merchant accept-payment flow.
type AcceptData struct {
	Amount string
}

// NewAcceptPayment returns the merchant flow: enter amount, wait for the
// customer, contact made, payment received. The waiting and contactMade steps
// are advanced by host timers.
func NewAcceptPayment() *stepwizard.Wizard[*AcceptData] {
	return stepwizard.MustNew(
		stepwizard.Step[*AcceptData]{
			ID:    AcceptAmount,
			Valid: func(d *AcceptData) bool { return ValidAmount(d.Amount) },
		},
		stepwizard.Step[*AcceptData]{ID: AcceptWaiting},
		stepwizard.Step[*AcceptData]{ID: AcceptContactMade},
		stepwizard.Step[*AcceptData]{ID: AcceptReceived, Terminal: true},
	)
}

// Change-password step ids.
const (
	PasswordForm = "form"
	PasswordDone = "done"
)

// PasswordData is the state of the change-password form.
type PasswordData struct {
	Current string
	New     string
	Confirm string
}

// NewChangePassword returns the change-password flow.
func NewChangePassword() *stepwizard.Wizard[*PasswordData] {
	return stepwizard.MustNew(
		stepwizard.Step[*PasswordData]{
			ID: PasswordForm,
			Valid: func(d *PasswordData) bool {
				return d.Current != "" && d.New != "" && d.New == d.Confirm
			},
		},
		stepwizard.Step[*PasswordData]{ID: PasswordDone, Terminal: true},
	)
}
