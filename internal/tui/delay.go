package tui

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

var lastDelayID atomic.Int64

// DelayMsg is delivered when a Delay's timer elapses. Only the Delay that
// started it, at the same generation, accepts it.
type DelayMsg struct {
	id  int64
	gen int
}

// Delay is a cancellable one-shot timer. Restarting or stopping it bumps the
// generation, so ticks already in flight are ignored when they arrive.
type Delay struct {
	id       int64
	gen      int
	active   bool
	duration time.Duration
}

// NewDelay returns a stopped delay of duration d.
func NewDelay(d time.Duration) *Delay {
	return &Delay{id: lastDelayID.Add(1), duration: d}
}

// Start (re)arms the delay.
func (d *Delay) Start() tea.Cmd {
	d.gen++
	d.active = true
	msg := DelayMsg{id: d.id, gen: d.gen}
	return tea.Tick(d.duration, func(time.Time) tea.Msg {
		return msg
	})
}

// Stop cancels a pending tick.
func (d *Delay) Stop() {
	d.gen++
	d.active = false
}

// Active reports whether a tick is pending.
func (d *Delay) Active() bool {
	return d.active
}

// Fired reports whether msg is this delay's current tick. A true result
// disarms the delay.
func (d *Delay) Fired(msg tea.Msg) bool {
	m, ok := msg.(DelayMsg)
	if !ok || !d.active || m.id != d.id || m.gen != d.gen {
		return false
	}
	d.active = false
	return true
}
