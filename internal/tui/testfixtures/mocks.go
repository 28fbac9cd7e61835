// Package testfixtures provides mock implementations and test utilities for
// TUI testing.
//
//	store := testfixtures.NewMockStore()
//	store.Records = testfixtures.MixedRecords()
//	app := tui.New(ctx, tui.Options{Source: store, Sink: store})
//	...
//	require.Len(t, store.Appended(), 1)
package testfixtures

import (
	"context"
	"sync"

	"github.com/blinxlabs/zaps/internal/wallet"
)

// MockStore is a RecordSource and RecordSink with controllable results.
type MockStore struct {
	mu sync.RWMutex

	// Records returned by FetchRecords, newest first
	Records []wallet.Transaction
	// Tokens returned by FetchTokens
	Tokens []wallet.Token

	FetchError  error
	AppendError error

	appended    []wallet.Transaction
	FetchCalls  int
	AppendCalls int
}

var (
	_ wallet.RecordSource = (*MockStore)(nil)
	_ wallet.RecordSink   = (*MockStore)(nil)
)

// NewMockStore creates a store with no records and the default tokens.
func NewMockStore() *MockStore {
	return &MockStore{Tokens: wallet.DefaultTokens()}
}

// FetchRecords returns appended records (newest first) followed by Records.
func (m *MockStore) FetchRecords(ctx context.Context) ([]wallet.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCalls++
	if m.FetchError != nil {
		return nil, m.FetchError
	}
	out := make([]wallet.Transaction, 0, len(m.appended)+len(m.Records))
	for i := len(m.appended) - 1; i >= 0; i-- {
		out = append(out, m.appended[i])
	}
	return append(out, m.Records...), nil
}

// FetchTokens returns the configured tokens.
func (m *MockStore) FetchTokens(ctx context.Context) ([]wallet.Token, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FetchError != nil {
		return nil, m.FetchError
	}
	out := make([]wallet.Token, len(m.Tokens))
	copy(out, m.Tokens)
	return out, nil
}

// Append records tx unless AppendError is set.
func (m *MockStore) Append(ctx context.Context, tx wallet.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AppendCalls++
	if m.AppendError != nil {
		return m.AppendError
	}
	m.appended = append(m.appended, tx)
	return nil
}

// Appended returns a copy of the records passed to Append, oldest first.
func (m *MockStore) Appended() []wallet.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]wallet.Transaction, len(m.appended))
	copy(out, m.appended)
	return out
}
