package tui

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/blinxlabs/zaps/internal/config"
	"github.com/blinxlabs/zaps/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

// settle bounds how long drive waits for a command. Slower commands (cursor
// blink, spinner frames, toast dismissal) are dropped.
const settle = 50 * time.Millisecond

// drive feeds msgs to the app and keeps running the resulting commands until
// the queue is empty.
func drive(t *testing.T, a *App, msgs ...tea.Msg) {
	t.Helper()
	queue := append([]tea.Msg(nil), msgs...)
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 500, "message loop did not settle")
		msg := queue[0]
		queue = queue[1:]
		_, cmd := a.Update(msg)
		queue = append(queue, run(cmd)...)
	}
}

// driveCmd runs cmd and drives the messages it produces.
func driveCmd(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	drive(t, a, run(cmd)...)
}

// press sends key presses one at a time, settling after each.
func press(t *testing.T, a *App, keys ...tea.KeyPressMsg) {
	t.Helper()
	for _, k := range keys {
		drive(t, a, k)
	}
}

func typeText(t *testing.T, a *App, s string) {
	t.Helper()
	press(t, a, testfixtures.Type(s)...)
}

func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		switch m := msg.(type) {
		case nil:
			return nil
		case tea.BatchMsg:
			var out []tea.Msg
			for _, c := range m {
				out = append(out, run(c)...)
			}
			return out
		}
		return []tea.Msg{msg}
	case <-time.After(settle):
		return nil
	}
}

// newTestApp builds a sized app backed by a mock store.
func newTestApp(t *testing.T, cfg *config.Config, onboard bool) (*App, *testfixtures.MockStore) {
	t.Helper()
	store := testfixtures.NewMockStore()
	store.Records = testfixtures.MixedRecords()
	a := New(context.Background(), Options{
		Config:  cfg,
		Source:  store,
		Sink:    store,
		Onboard: onboard,
	})
	drive(t, a, tea.WindowSizeMsg{Width: testfixtures.TestTermWidth, Height: testfixtures.TestTermHeight})
	driveCmd(t, a, a.Init())
	return a, store
}

func screenText(a *App) string {
	return testfixtures.Plain(a.Current().View(testfixtures.TestTermWidth, testfixtures.TestTermHeight))
}
