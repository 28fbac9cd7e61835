package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blinxlabs/zaps/internal/logger"
)

const fileName = "preferences.json"

// Preferences holds UI settings that carry across launches. Flow progress is
// never stored here.
type Preferences struct {
	HistoryFilter string           `json:"history_filter"`
	Merchant      MerchantSettings `json:"merchant"`
}

// MerchantSettings mirrors the toggles on the merchant settings screen.
type MerchantSettings struct {
	Notifications bool `json:"notifications"`
	Biometrics    bool `json:"biometrics"`
}

// DefaultPreferences returns the settings used on first launch.
func DefaultPreferences() *Preferences {
	return &Preferences{
		HistoryFilter: "All",
		Merchant: MerchantSettings{
			Notifications: true,
			Biometrics:    true,
		},
	}
}

// Load reads preferences from <dataDir>/preferences.json.
// Returns defaults if the file doesn't exist or cannot be parsed.
func Load(dataDir string) *Preferences {
	path := filepath.Join(dataDir, fileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read preferences file: %v", err)
		}
		return DefaultPreferences()
	}

	prefs := DefaultPreferences()
	if err := json.Unmarshal(data, prefs); err != nil {
		logger.Warn("Failed to parse preferences JSON: %v", err)
		return DefaultPreferences()
	}
	return prefs
}

// Save writes preferences to <dataDir>/preferences.json, creating the
// directory if needed.
func Save(dataDir string, prefs *Preferences) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}

	path := filepath.Join(dataDir, fileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing preferences file: %w", err)
	}

	logger.Debug("Preferences saved to %s", path)
	return nil
}
