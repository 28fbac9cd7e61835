package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/blinxlabs/zaps/internal/tui/theme"
)

// ToastDismissMsg is sent when the toast should be dismissed.
type ToastDismissMsg struct{}

// ShowToastMsg is sent to show a toast notification.
type ShowToastMsg struct {
	Text string
}

func showToast(text string) tea.Cmd {
	return func() tea.Msg { return ShowToastMsg{Text: text} }
}

// Toast is a minimal notification shown in the bottom-right corner that
// auto-dismisses after 3 seconds.
type Toast struct {
	message string
	visible bool
	delay   *Delay
}

// NewToast creates a new Toast component.
func NewToast() *Toast {
	return &Toast{delay: NewDelay(3 * time.Second)}
}

// Show displays a toast with the given message, replacing any current one.
func (t *Toast) Show(msg string) tea.Cmd {
	t.message = msg
	t.visible = true
	return t.delay.Start()
}

// Update handles messages for the toast component.
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case ToastDismissMsg:
		t.hide()
	case DelayMsg:
		if t.delay.Fired(msg) {
			t.hide()
		}
	}
	return nil
}

func (t *Toast) hide() {
	t.delay.Stop()
	t.visible = false
	t.message = ""
}

// View renders the toast, or "" when hidden.
func (t *Toast) View() string {
	if !t.visible || t.message == "" {
		return ""
	}
	return theme.Current().S().Toast.Render(t.message)
}

// IsVisible returns whether the toast is currently visible.
func (t *Toast) IsVisible() bool {
	return t.visible
}

// GetMessage returns the current toast message (empty if not visible).
func (t *Toast) GetMessage() string {
	if !t.visible {
		return ""
	}
	return t.message
}
