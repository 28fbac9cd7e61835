package testfixtures

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
)

// Initialize test environment
func init() {
	// Set Ascii profile to disable color output for consistent output across CI/platforms
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 100
	TestTermHeight = 40
)

// Flag for updating golden files (shared across all tests)
var UpdateGolden = flag.Bool("update", false, "update golden files")

// CompareGolden compares actual output with golden file.
// Use -update flag to regenerate golden files.
func CompareGolden(t *testing.T, goldenPath, actual string) {
	t.Helper()

	if *UpdateGolden {
		dir := filepath.Dir(goldenPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create testdata directory: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(actual), 0644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", goldenPath, err)
		}
		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("golden file %s does not exist. Run with -update to create it.", goldenPath)
		}
		t.Fatalf("failed to read golden file %s: %v", goldenPath, err)
	}

	if actual != string(expected) {
		t.Errorf("output does not match golden file %s\n\nExpected:\n%s\n\nActual:\n%s",
			goldenPath, string(expected), actual)
	}
}

// Plain strips ANSI sequences so rendered views can be matched as text.
func Plain(s string) string {
	return ansi.Strip(s)
}

// Key builds a key press for a special key such as tea.KeyEnter.
func Key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// Rune builds a key press for a printable character.
func Rune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Type returns one key press per rune of s.
func Type(s string) []tea.KeyPressMsg {
	msgs := make([]tea.KeyPressMsg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, Rune(r))
	}
	return msgs
}

// Common keys
var (
	Enter = Key(tea.KeyEnter)
	Esc   = Key(tea.KeyEscape)
	Tab   = Key(tea.KeyTab)
	Up    = Key(tea.KeyUp)
	Down  = Key(tea.KeyDown)
	Left  = Key(tea.KeyLeft)
	Right = Key(tea.KeyRight)
	Space = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	CtrlC = tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
)
