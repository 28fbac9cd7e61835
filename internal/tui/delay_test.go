package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDelay_FiresOnce(t *testing.T) {
	t.Parallel()

	d := NewDelay(time.Millisecond)
	msg := d.Start()()

	assert.True(t, d.Active())
	assert.True(t, d.Fired(msg))
	assert.False(t, d.Active())
	assert.False(t, d.Fired(msg), "a tick is accepted only once")
}

func TestDelay_RestartDropsStaleTick(t *testing.T) {
	t.Parallel()

	d := NewDelay(time.Millisecond)
	first := d.Start()
	second := d.Start()

	assert.False(t, d.Fired(first()))
	assert.True(t, d.Fired(second()))
}

func TestDelay_StopCancels(t *testing.T) {
	t.Parallel()

	d := NewDelay(time.Millisecond)
	cmd := d.Start()
	d.Stop()

	assert.False(t, d.Active())
	assert.False(t, d.Fired(cmd()))
}

func TestDelay_IgnoresOtherDelays(t *testing.T) {
	t.Parallel()

	a, b := NewDelay(time.Millisecond), NewDelay(time.Millisecond)
	msgA := a.Start()()
	b.Start()

	assert.False(t, b.Fired(msgA))
	assert.False(t, b.Fired("not a delay"))
	assert.True(t, a.Fired(msgA))
}
