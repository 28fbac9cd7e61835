package testfixtures

import (
	"time"

	"github.com/blinxlabs/zaps/internal/config"
	"github.com/blinxlabs/zaps/internal/wallet"
)

// Fixed test values for consistent output
const (
	FixedUsername = "Ada Obi"
	FixedMerchant = "Test Shop"
)

var (
	FixedTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
)

// FastConfig returns the default config with timers short enough for tests.
// DataDir is left empty so nothing is written to disk.
func FastConfig() *config.Config {
	cfg := config.Default()
	cfg.DataDir = ""
	cfg.MerchantName = FixedMerchant
	cfg.SearchDelay = time.Millisecond
	cfg.TerminalDelay = time.Millisecond
	cfg.WaitingDelay = time.Millisecond
	cfg.ContactDelay = time.Millisecond
	return cfg
}

// MixedRecords returns newest-first history with both kinds.
func MixedRecords() []wallet.Transaction {
	return []wallet.Transaction{
		{ID: "r3", Kind: wallet.KindReceived, Address: "customer-3", Amount: "50", Value: "$50", Token: "usdc", At: FixedTime.Add(2 * time.Hour)},
		{ID: "t2", Kind: wallet.KindTransfer, Address: "bola.zaps", Amount: "12.5", Token: "xlm", At: FixedTime.Add(time.Hour)},
		{ID: "r1", Kind: wallet.KindReceived, Address: "customer-1", Amount: "10", Value: "$10", Token: "usdc", At: FixedTime},
	}
}
