// Package ledger keeps wallet history as an append-only event log in an
// embedded NATS JetStream server. It implements wallet.RecordSource and
// wallet.RecordSink; history is rebuilt by replaying events on every fetch.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/blinxlabs/zaps/internal/logger"
	"github.com/blinxlabs/zaps/internal/wallet"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	streamName = "zaps_records"

	// Event types
	EventTypeRecord = "record"

	// Record actions
	ActionAdd = "add"
)

// SubjectForAccount returns the wildcard subject for all events of an account.
// Example: "zaps.ejembiii.>"
func SubjectForAccount(account string) string {
	return fmt.Sprintf("zaps.%s.>", account)
}

// SubjectForEvent returns the subject for one event type of an account.
// Example: "zaps.ejembiii.record"
func SubjectForEvent(account, eventType string) string {
	return fmt.Sprintf("zaps.%s.%s", account, eventType)
}

// Event is one entry in the log.
type Event struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Account   string          `json:"account"`
	Type      string          `json:"type"`
	Action    string          `json:"action"`
	Data      json.RawMessage `json:"data"`
}

// Options configures Open.
type Options struct {
	// Account scopes records; it is slugged into a subject token.
	Account string
	// DataDir holds JetStream files. Empty means in-memory storage backed by
	// a throwaway directory removed on Close.
	DataDir string
	// Seed appends wallet.SampleRecords when the account has no history.
	Seed bool
}

// Ledger is the JetStream-backed record store.
type Ledger struct {
	account string
	ns      *server.Server
	nc      *nats.Conn
	js      jetstream.JetStream
	stream  jetstream.Stream
	tmpDir  string
	tokens  []wallet.Token
}

var (
	_ wallet.RecordSource = (*Ledger)(nil)
	_ wallet.RecordSink   = (*Ledger)(nil)
)

// Open starts the embedded server, ensures the stream and optionally seeds
// the account history.
func Open(ctx context.Context, opts Options) (*Ledger, error) {
	account := slug.Make(opts.Account)
	if account == "" {
		return nil, errors.New("ledger: account is required")
	}

	storage := jetstream.FileStorage
	storeDir := opts.DataDir
	tmpDir := ""
	if storeDir == "" {
		dir, err := os.MkdirTemp("", "zaps-ledger-*")
		if err != nil {
			return nil, fmt.Errorf("creating ledger temp dir: %w", err)
		}
		storeDir, tmpDir = dir, dir
		storage = jetstream.MemoryStorage
	} else {
		storeDir = filepath.Join(storeDir, "jetstream")
	}

	ns, err := startEmbeddedNATS(storeDir)
	if err != nil {
		removeTemp(tmpDir)
		return nil, fmt.Errorf("starting embedded nats: %w", err)
	}

	nc, js, err := connectInProcess(ns)
	if err != nil {
		_ = shutdown(nil, ns)
		removeTemp(tmpDir)
		return nil, fmt.Errorf("connecting to embedded nats: %w", err)
	}

	stream, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     streamName,
		Subjects: []string{"zaps.>"},
		Storage:  storage,
	})
	if err != nil {
		_ = shutdown(nc, ns)
		removeTemp(tmpDir)
		return nil, fmt.Errorf("creating stream: %w", err)
	}

	l := &Ledger{
		account: account,
		ns:      ns,
		nc:      nc,
		js:      js,
		stream:  stream,
		tmpDir:  tmpDir,
		tokens:  wallet.DefaultTokens(),
	}

	if opts.Seed {
		if err := l.seed(ctx); err != nil {
			_ = l.Close()
			return nil, err
		}
	}

	logger.Info("Ledger opened for account %s (storage=%s)", account, storage)
	return l, nil
}

// seed appends the sample history if the account has none.
func (l *Ledger) seed(ctx context.Context) error {
	existing, err := l.FetchRecords(ctx)
	if err != nil {
		return fmt.Errorf("checking existing records: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	// Oldest first, so replay (newest first) matches the sample order.
	samples := wallet.SampleRecords()
	for i := len(samples) - 1; i >= 0; i-- {
		if err := l.Append(ctx, samples[i]); err != nil {
			return fmt.Errorf("seeding records: %w", err)
		}
	}
	logger.Debug("Seeded %d sample records", len(samples))
	return nil
}

// Append publishes a record. Missing IDs and timestamps are filled in.
func (l *Ledger) Append(ctx context.Context, tx wallet.Transaction) error {
	tx = tx.Stamped(time.Now())

	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}

	event := Event{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Account:   l.account,
		Type:      EventTypeRecord,
		Action:    ActionAdd,
		Data:      data,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	subject := SubjectForEvent(l.account, EventTypeRecord)
	ack, err := l.js.Publish(ctx, subject, payload)
	if err != nil {
		logger.Error("Failed to publish record to %s: %v", subject, err)
		return fmt.Errorf("publishing record: %w", err)
	}

	logger.Debug("Record %s published: kind=%s seq=%d", tx.ID, tx.Kind, ack.Sequence)
	return nil
}

// history is the reduced view of the account's events.
type history struct {
	records []wallet.Transaction
	index   map[string]int
}

// apply folds one event into the history.
func (h *history) apply(event Event) error {
	if event.Type != EventTypeRecord {
		return nil
	}
	switch event.Action {
	case ActionAdd:
		var tx wallet.Transaction
		if err := json.Unmarshal(event.Data, &tx); err != nil {
			return err
		}
		if _, dup := h.index[tx.ID]; dup {
			return nil
		}
		h.index[tx.ID] = len(h.records)
		h.records = append(h.records, tx)
	}
	return nil
}

// FetchRecords replays the account's events and returns records newest first.
func (l *Ledger) FetchRecords(ctx context.Context) ([]wallet.Transaction, error) {
	consumer, err := l.stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		FilterSubject: SubjectForAccount(l.account),
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("creating consumer: %w", err)
	}

	h := &history{index: make(map[string]int)}

	const batchSize = 500
	malformed := 0
	for {
		msgs, err := consumer.FetchNoWait(batchSize)
		if err != nil {
			logger.Warn("Record fetch stopped early, history may be partial: %v", err)
			break
		}

		count := 0
		for msg := range msgs.Messages() {
			count++
			var event Event
			if err := json.Unmarshal(msg.Data(), &event); err != nil {
				malformed++
				logger.Warn("Skipping malformed event on %s: %v", msg.Subject(), err)
				_ = msg.Ack()
				continue
			}
			if err := h.apply(event); err != nil {
				malformed++
				logger.Warn("Skipping unreadable record %s: %v", event.ID, err)
			}
			_ = msg.Ack()
		}
		if err := msgs.Error(); err != nil {
			logger.Debug("Record fetch ended: %v", err)
		}
		if count < batchSize {
			break
		}
	}

	if malformed > 0 {
		logger.Warn("Skipped %d malformed events while loading history", malformed)
	}

	out := make([]wallet.Transaction, len(h.records))
	for i, tx := range h.records {
		out[len(out)-1-i] = tx
	}
	return out, nil
}

// FetchTokens returns the static token list; balances are not tracked.
func (l *Ledger) FetchTokens(ctx context.Context) ([]wallet.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]wallet.Token, len(l.tokens))
	copy(out, l.tokens)
	return out, nil
}

// Close shuts down the connection and server and removes temporary storage.
func (l *Ledger) Close() error {
	err := shutdown(l.nc, l.ns)
	removeTemp(l.tmpDir)
	return err
}

func removeTemp(dir string) {
	if dir == "" {
		return
	}
	if err := os.RemoveAll(dir); err != nil {
		logger.Warn("Failed to remove ledger temp dir %s: %v", dir, err)
	}
}
