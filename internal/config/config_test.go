package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the global config at a temp dir and runs the test from an
// empty working directory so no real config files leak in.
func isolate(t *testing.T) string {
	t.Helper()
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Chdir(t.TempDir())
	// Viper ignores empty env vars, so blanking them is enough.
	for _, key := range keys {
		t.Setenv("ZAPS_"+strings.ToUpper(key), "")
	}
	return xdg
}

func TestGlobalPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/zaps/zaps.yml", GlobalPath())

	t.Setenv("XDG_CONFIG_HOME", "")
	got := GlobalPath()
	assert.True(t, filepath.IsAbs(got), "GlobalPath() should be absolute, got %s", got)
	assert.Equal(t, "zaps.yml", filepath.Base(got))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 1500*time.Millisecond, cfg.TerminalDelay)
	assert.False(t, Exists())
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)

	global := Default()
	global.Account = "merchant"
	global.MerchantName = "Global Shop"
	global.WaitingDelay = 3 * time.Second
	require.NoError(t, WriteGlobal(global))

	project := Default()
	project.Account = "merchant"
	project.MerchantName = "Project Shop"
	project.WaitingDelay = 3 * time.Second
	require.NoError(t, WriteProject(project))

	t.Setenv("ZAPS_LEDGER", "off")
	t.Setenv("ZAPS_CONTACT_DELAY", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, Exists())
	assert.Equal(t, "merchant", cfg.Account)
	assert.Equal(t, "Project Shop", cfg.MerchantName, "project overrides global")
	assert.Equal(t, 3*time.Second, cfg.WaitingDelay, "durations round-trip through YAML")
	assert.Equal(t, LedgerOff, cfg.Ledger, "env overrides files")
	assert.Equal(t, 250*time.Millisecond, cfg.ContactDelay)
}

func TestLoad_InvalidAccount(t *testing.T) {
	isolate(t)
	t.Setenv("ZAPS_ACCOUNT", "business")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid account")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "bad ledger", mutate: func(c *Config) { c.Ledger = "s3" }, wantErr: "invalid ledger"},
		{name: "file ledger without dir", mutate: func(c *Config) { c.Ledger = LedgerFile; c.DataDir = "" }, wantErr: "data_dir is required"},
		{name: "negative delay", mutate: func(c *Config) { c.TerminalDelay = -time.Second }, wantErr: "terminal_delay must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMarshal_WritesReadableDurations(t *testing.T) {
	t.Parallel()

	data, err := Default().Marshal()
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "terminal_delay: 1.5s")
	assert.Contains(t, out, "waiting_delay: 20s")
	assert.NotContains(t, out, "username:", "empty username is omitted")
}
