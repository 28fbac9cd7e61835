package tui

import (
	"testing"

	"github.com/blinxlabs/zaps/internal/tui/testfixtures"
	"github.com/stretchr/testify/assert"
)

func TestToast_ShowDisplaysMessage(t *testing.T) {
	t.Parallel()

	toast := NewToast()
	cmd := toast.Show("saved")

	assert.True(t, toast.IsVisible())
	assert.Equal(t, "saved", toast.GetMessage())
	assert.NotNil(t, cmd, "Show schedules dismissal")
	assert.Contains(t, testfixtures.Plain(toast.View()), "saved")
}

func TestToast_ViewEmptyWhenHidden(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewToast().View())
}

func TestToast_DismissMsgHidesToast(t *testing.T) {
	t.Parallel()

	toast := NewToast()
	toast.Show("saved")

	assert.Nil(t, toast.Update(ToastDismissMsg{}))
	assert.False(t, toast.IsVisible())
	assert.Empty(t, toast.GetMessage())
}

func TestToast_StaleDismissalIgnored(t *testing.T) {
	t.Parallel()

	toast := NewToast()
	toast.Show("first")
	stale := DelayMsg{id: toast.delay.id, gen: toast.delay.gen}
	toast.Show("second")

	toast.Update(stale)
	assert.True(t, toast.IsVisible(), "a dismissal from the first toast must not hide the second")
	assert.Equal(t, "second", toast.GetMessage())

	toast.Update(DelayMsg{id: toast.delay.id, gen: toast.delay.gen})
	assert.False(t, toast.IsVisible())
}
