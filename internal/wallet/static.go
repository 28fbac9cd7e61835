package wallet

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Placeholder address used by every seeded history row.
const sampleAddress = "0x4A7d5cBe16...da79bB2cF9a1B"

// DefaultTokens returns the token list shown on the dashboard and pickers.
func DefaultTokens() []Token {
	return []Token{
		{ID: "xlm", Symbol: "XLM", Name: "Stellar Lumens", Balance: "100.00", Value: "100.00"},
		{ID: "usdt", Symbol: "USDT", Name: "Tether", Balance: "100.00", Value: "100.00"},
		{ID: "usdc", Symbol: "USDC", Name: "USD Coin", Balance: "100.00", Value: "100.00"},
	}
}

// SampleRecords returns the seeded history rows.
func SampleRecords() []Transaction {
	at := time.Date(2025, time.November, 12, 14, 3, 23, 0, time.UTC)
	kinds := []Kind{KindReceived, KindTransfer, KindTransfer, KindReceived, KindReceived}

	out := make([]Transaction, len(kinds))
	for i, k := range kinds {
		out[i] = Transaction{
			ID:      string(rune('1' + i)),
			Kind:    k,
			Address: sampleAddress,
			Amount:  "0.00",
			Value:   "$0.00",
			At:      at,
		}
	}
	return out
}

// StaticSource serves the built-in records and keeps appended ones in memory.
// Appended rows are listed before the seeded ones, newest first.
type StaticSource struct {
	mu       sync.Mutex
	records  []Transaction
	appended []Transaction
	tokens   []Token
}

// NewStaticSource creates a source seeded with SampleRecords and DefaultTokens.
func NewStaticSource() *StaticSource {
	return &StaticSource{
		records: SampleRecords(),
		tokens:  DefaultTokens(),
	}
}

// FetchRecords returns appended rows (newest first) followed by the seeded rows.
func (s *StaticSource) FetchRecords(ctx context.Context) ([]Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Transaction, 0, len(s.appended)+len(s.records))
	recent := slices.Clone(s.appended)
	slices.Reverse(recent)
	out = append(out, recent...)
	out = append(out, s.records...)
	return out, nil
}

// FetchTokens returns the token list.
func (s *StaticSource) FetchTokens(ctx context.Context) ([]Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.tokens), nil
}

// Append keeps tx in memory for the lifetime of the source. Missing IDs and
// timestamps are filled in.
func (s *StaticSource) Append(ctx context.Context, tx Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appended = append(s.appended, tx.Stamped(time.Now()))
	return nil
}
