package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	prefs := Load(filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, DefaultPreferences(), prefs)
	assert.True(t, prefs.Merchant.Notifications)
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", ".zaps")
	prefs := &Preferences{
		HistoryFilter: "Received",
		Merchant:      MerchantSettings{Notifications: false, Biometrics: true},
	}

	require.NoError(t, Save(dir, prefs))
	assert.Equal(t, prefs, Load(dir))
}

func TestLoad_CorruptFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("{not json"), 0644))

	assert.Equal(t, DefaultPreferences(), Load(dir))
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte(`{"history_filter":"Transfer"}`), 0644))

	prefs := Load(dir)
	assert.Equal(t, "Transfer", prefs.HistoryFilter)
	assert.True(t, prefs.Merchant.Biometrics, "unset fields keep their defaults")
}
