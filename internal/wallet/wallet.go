// Package wallet holds the display records the wallet screens render: tokens,
// transactions and the account profile. Values are display strings; nothing
// here computes balances.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Token is one asset row on the dashboard and token pickers.
type Token struct {
	ID      string `json:"id"`
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Balance string `json:"balance"`
	Value   string `json:"value"`
}

// Kind is the direction of a transaction.
type Kind string

const (
	KindReceived Kind = "received"
	KindTransfer Kind = "transfer"
)

// Transaction is one history row.
type Transaction struct {
	ID      string    `json:"id"`
	Kind    Kind      `json:"kind"`
	Address string    `json:"address"`
	Amount  string    `json:"amount"`
	Value   string    `json:"value"`
	Token   string    `json:"token,omitempty"`
	At      time.Time `json:"at"`
}

// Time formats the transaction time the way the history list shows it,
// e.g. "14:03:23pm".
func (t Transaction) Time() string {
	return strings.ToLower(t.At.Format("15:04:05PM"))
}

// Date formats the transaction date, e.g. "Nov 12".
func (t Transaction) Date() string {
	return t.At.Format("Jan 2")
}

// Stamped returns t with a generated ID and the given time filled in where
// they are missing. Sinks store stamped records.
func (t Transaction) Stamped(now time.Time) Transaction {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.At.IsZero() {
		t.At = now
	}
	return t
}

// RecordSource supplies the records a screen displays.
type RecordSource interface {
	FetchRecords(ctx context.Context) ([]Transaction, error)
	FetchTokens(ctx context.Context) ([]Token, error)
}

// RecordSink accepts records produced by completed flows.
type RecordSink interface {
	Append(ctx context.Context, tx Transaction) error
}

// Filter selects history rows by kind.
type Filter string

const (
	FilterAll      Filter = "All"
	FilterReceived Filter = "Received"
	FilterTransfer Filter = "Transfer"
)

// Filters lists the history tabs in display order.
var Filters = []Filter{FilterAll, FilterReceived, FilterTransfer}

// ErrUnknownFilter is returned by ParseFilter for unrecognised names.
var ErrUnknownFilter = errors.New("unknown history filter")

// ParseFilter parses a filter name case-insensitively.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "received":
		return FilterReceived, nil
	case "transfer", "transfers":
		return FilterTransfer, nil
	default:
		return FilterAll, fmt.Errorf("%w: %q", ErrUnknownFilter, s)
	}
}

// Apply returns the rows matching the filter, preserving order.
func (f Filter) Apply(txs []Transaction) []Transaction {
	if f == FilterAll || f == "" {
		return txs
	}
	want := Kind(strings.ToLower(string(f)))
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Kind == want {
			out = append(out, tx)
		}
	}
	return out
}

// Next returns the tab to the right of f, wrapping around.
func (f Filter) Next() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// Prev returns the tab to the left of f, wrapping around.
func (f Filter) Prev() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+len(Filters)-1)%len(Filters)]
		}
	}
	return FilterAll
}

// FindToken returns the token with the given id, or the first token if there
// is no match. The bool reports whether the id matched.
func FindToken(tokens []Token, id string) (Token, bool) {
	for _, t := range tokens {
		if t.ID == id {
			return t, true
		}
	}
	if len(tokens) == 0 {
		return Token{}, false
	}
	return tokens[0], false
}
