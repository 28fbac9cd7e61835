package hooks

import (
	"context"
	"time"

	"github.com/blinxlabs/zaps/internal/logger"
	"github.com/blinxlabs/zaps/internal/wallet"
)

// Sink runs the configured hooks after each successful append to the wrapped
// sink. Hook failures are logged and never fail the append.
type Sink struct {
	next    wallet.RecordSink
	cfg     *Config
	workDir string
}

var _ wallet.RecordSink = (*Sink)(nil)

// NewSink wraps next. A nil cfg runs no hooks.
func NewSink(next wallet.RecordSink, cfg *Config, workDir string) *Sink {
	return &Sink{next: next, cfg: cfg, workDir: workDir}
}

// Append stamps tx, appends it to the wrapped sink, then runs the hooks for
// it. The hooks see the same ID and time the sink stored.
func (s *Sink) Append(ctx context.Context, tx wallet.Transaction) error {
	tx = tx.Stamped(time.Now())
	if err := s.next.Append(ctx, tx); err != nil {
		return err
	}

	hooks := s.cfg.For(tx)
	if len(hooks) == 0 {
		return nil
	}
	out, err := ExecuteAll(ctx, hooks, s.workDir, VariablesFor(tx))
	if err != nil {
		logger.Warn("Record hooks interrupted: %v", err)
		return nil
	}
	if out != "" {
		logger.Info("Record hooks output:\n%s", out)
	}
	return nil
}
