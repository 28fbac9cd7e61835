package flows

import (
	"testing"

	"github.com/blinxlabs/zaps/internal/stepwizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"0", false},
		{"0.00", false},
		{"abc", false},
		{"-5", false},
		{"1.", false},
		{".5", false},
		{"10", true},
		{" 20 ", true},
		{"0.5", true},
		{"12.1234567", true},
		{"12.12345678", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidAmount(tt.in))
		})
	}
}

func TestTransfer_Walkthrough(t *testing.T) {
	t.Parallel()

	w := NewTransfer()
	d := &TransferData{TokenID: "xlm"}

	assert.Equal(t, TransferChoose, w.Current().ID)
	assert.False(t, w.CanAdvance(d))
	d.Destination = DestinationZaps
	require.True(t, w.Advance(d))

	assert.Equal(t, TransferDetails, w.Current().ID)
	d.Recipient = "friend.zaps"
	assert.False(t, w.CanAdvance(d), "amount missing")
	d.Amount = "abc"
	assert.False(t, w.CanAdvance(d), "amount malformed")
	d.Amount = "25"
	require.True(t, w.Advance(d))

	assert.Equal(t, TransferConfirm, w.Current().ID)
	require.True(t, w.Advance(d))
	assert.Equal(t, TransferSuccess, w.Current().ID)
	assert.Equal(t, stepwizard.OutcomeComplete, w.Continue(d))
}

func TestReceive_Walkthrough(t *testing.T) {
	t.Parallel()

	w := NewReceive()
	d := &ReceiveData{}

	assert.Equal(t, stepwizard.OutcomeRejected, w.Continue(d))
	d.Destination = DestinationExternal
	assert.Equal(t, stepwizard.OutcomeAdvanced, w.Continue(d))
	assert.Equal(t, ReceiveShare, w.Current().ID)
	assert.Equal(t, stepwizard.OutcomeComplete, w.Continue(d))
}

func TestTapToPay_PassThroughSteps(t *testing.T) {
	t.Parallel()

	w := NewTapToPay()
	d := &TapToPayData{TokenID: "usdt"}

	for _, id := range []string{TapReady, TapSearching, TapTerminalFound} {
		assert.Equal(t, id, w.Current().ID)
		require.True(t, w.Advance(d), "%s is a pass-through", id)
	}

	assert.Equal(t, TapTransfer, w.Current().ID)
	assert.False(t, w.Advance(d))
	d.Amount = "3.5"
	require.True(t, w.Advance(d))
	require.True(t, w.Advance(d))
	assert.Equal(t, TapSuccess, w.Current().ID)

	// Back is linear: confirm -> transfer -> terminalFound.
	w2 := NewTapToPay()
	for i := 0; i < 4; i++ {
		require.True(t, w2.Advance(d))
	}
	assert.Equal(t, TapConfirm, w2.Current().ID)
	w2.Retreat()
	assert.Equal(t, TapTransfer, w2.Current().ID)
	w2.Retreat()
	assert.Equal(t, TapTerminalFound, w2.Current().ID)
}

func TestOnboarding_Gates(t *testing.T) {
	t.Parallel()

	w := NewOnboarding()
	d := &OnboardingData{}

	assert.False(t, w.Advance(d))
	d.Username = "  "
	assert.False(t, w.Advance(d), "whitespace username")
	d.Username = "ejembiii"
	require.True(t, w.Advance(d))

	d.Password = "secret"
	d.ConfirmPassword = "secrit"
	assert.False(t, w.Advance(d), "confirmation mismatch")
	d.ConfirmPassword = "secret"
	require.True(t, w.Advance(d))

	assert.Equal(t, OnboardBiometric, w.Current().ID)
	require.True(t, w.Advance(d), "skipping biometrics is allowed")
	require.True(t, w.Advance(d))

	assert.Equal(t, OnboardBackupKey, w.Current().ID)
	assert.Equal(t, stepwizard.OutcomeRejected, w.Continue(d))
	d.BackedUp = true
	assert.Equal(t, stepwizard.OutcomeComplete, w.Continue(d))
}

func TestAcceptPayment_Gates(t *testing.T) {
	t.Parallel()

	w := NewAcceptPayment()
	d := &AcceptData{}

	assert.False(t, w.CanAdvance(d))
	d.Amount = PresetAmounts[2]
	require.True(t, w.Advance(d))
	require.True(t, w.Advance(d))
	require.True(t, w.Advance(d))
	assert.Equal(t, AcceptReceived, w.Current().ID)
	assert.True(t, w.IsAtEnd())
}

func TestChangePassword_Gates(t *testing.T) {
	t.Parallel()

	w := NewChangePassword()
	d := &PasswordData{Current: "old", New: "new", Confirm: "nope"}

	assert.False(t, w.CanAdvance(d))
	d.Confirm = "new"
	assert.True(t, w.CanAdvance(d))
	d.Current = ""
	assert.False(t, w.CanAdvance(d))
}

func TestDestination_Label(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Blinx User", DestinationZaps.Label())
	assert.Equal(t, "External Wallet", DestinationExternal.Label())
	assert.Empty(t, DestinationNone.Label())
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	infos := Describe()
	require.Len(t, infos, 6)

	byName := make(map[string]FlowInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
		last := info.Steps[len(info.Steps)-1]
		assert.True(t, last.Terminal, "%s should end on a terminal step", info.Name)
		for _, s := range info.Steps[:len(info.Steps)-1] {
			assert.False(t, s.Terminal, "%s: only the last step is terminal", info.Name)
		}
	}

	transfer := byName["transfer"]
	ids := make([]string, 0, len(transfer.Steps))
	for _, s := range transfer.Steps {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"choose", "details", "confirm", "success"}, ids)
	assert.True(t, transfer.Steps[0].Gated)
	assert.False(t, transfer.Steps[2].Gated)
}
