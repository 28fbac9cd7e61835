package hooks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/blinxlabs/zaps/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Nil(t, cfg, "missing file means no hooks")

	content := `version: 1
hooks:
  on_record:
    - command: echo recorded
  on_received:
    - command: echo paid {{amount}}
      timeout: 5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err = LoadConfig(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 1, cfg.Version)
	require.Len(t, cfg.Hooks.OnReceived, 1)
	assert.Equal(t, 5, cfg.Hooks.OnReceived[0].Timeout)
}

func TestLoadConfig_Malformed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("hooks: ["), 0644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestConfig_ForSelectsByKind(t *testing.T) {
	t.Parallel()

	all := &HookConfig{Command: "all"}
	recv := &HookConfig{Command: "recv"}
	sent := &HookConfig{Command: "sent"}
	cfg := &Config{Hooks: HooksConfig{
		OnRecord:   []*HookConfig{all},
		OnReceived: []*HookConfig{recv},
		OnTransfer: []*HookConfig{sent},
	}}

	assert.Equal(t, []*HookConfig{all, recv}, cfg.For(wallet.Transaction{Kind: wallet.KindReceived}))
	assert.Equal(t, []*HookConfig{all, sent}, cfg.For(wallet.Transaction{Kind: wallet.KindTransfer}))

	var none *Config
	assert.Empty(t, none.For(wallet.Transaction{Kind: wallet.KindTransfer}))
}

func TestExecute(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	workDir := t.TempDir()
	vars := Variables{Kind: "received", Amount: "10", Address: "it's me"}

	tests := []struct {
		name     string
		hook     *HookConfig
		contains string
		empty    bool
	}{
		{name: "nil hook", hook: nil, empty: true},
		{name: "empty command", hook: &HookConfig{}, empty: true},
		{name: "expands variables", hook: &HookConfig{Command: "echo {{kind}} {{amount}}"}, contains: "received 10\n"},
		{name: "quotes values", hook: &HookConfig{Command: "echo {{address}}"}, contains: "it's me\n"},
		{name: "failure degrades", hook: &HookConfig{Command: "exit 3"}, contains: "[Hook command failed"},
		{name: "timeout", hook: &HookConfig{Command: "sleep 5", Timeout: 1}, contains: "[Hook timed out after 1s]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := Execute(ctx, tt.hook, workDir, vars)
			require.NoError(t, err)
			if tt.empty {
				assert.Empty(t, out)
				return
			}
			assert.Contains(t, out, tt.contains)
		})
	}
}

func TestExecuteAll_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExecuteAll(ctx, []*HookConfig{{Command: "echo test"}}, t.TempDir(), Variables{})
	assert.Error(t, err)
}

type recordingSink struct {
	err      error
	appended []wallet.Transaction
}

func (r *recordingSink) Append(ctx context.Context, tx wallet.Transaction) error {
	if r.err != nil {
		return r.err
	}
	r.appended = append(r.appended, tx)
	return nil
}

func TestSink_RunsHooksAfterAppend(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := &Config{Hooks: HooksConfig{
		OnReceived: []*HookConfig{{Command: "echo {{amount}} > receipt.txt"}},
	}}
	next := &recordingSink{}
	sink := NewSink(next, cfg, dir)

	require.NoError(t, sink.Append(context.Background(), wallet.Transaction{Kind: wallet.KindReceived, Amount: "42"}))
	require.Len(t, next.appended, 1)

	data, err := os.ReadFile(filepath.Join(dir, "receipt.txt"))
	require.NoError(t, err)
	assert.Equal(t, "42\n", string(data))
}

func TestSink_SkipsHooksWhenAppendFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := &Config{Hooks: HooksConfig{
		OnRecord: []*HookConfig{{Command: "touch ran"}},
	}}
	sink := NewSink(&recordingSink{err: errors.New("full")}, cfg, dir)

	require.Error(t, sink.Append(context.Background(), wallet.Transaction{Kind: wallet.KindTransfer}))
	_, err := os.Stat(filepath.Join(dir, "ran"))
	assert.True(t, os.IsNotExist(err))
}

func TestSink_HooksSeeStoredIDAndTime(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := &Config{Hooks: HooksConfig{
		OnRecord: []*HookConfig{{Command: "printf %s {{id}} > id.txt"}},
	}}
	next := &recordingSink{}
	sink := NewSink(next, cfg, dir)

	require.NoError(t, sink.Append(context.Background(), wallet.Transaction{Kind: wallet.KindTransfer, Amount: "5"}))
	require.Len(t, next.appended, 1)
	stored := next.appended[0]
	assert.NotEmpty(t, stored.ID)
	assert.False(t, stored.At.IsZero())

	data, err := os.ReadFile(filepath.Join(dir, "id.txt"))
	require.NoError(t, err)
	assert.Equal(t, stored.ID, string(data))
}
