// Package stepwizard implements a linear, gated step sequencer for guided flows.
//
// A Wizard walks an ordered list of steps one position at a time. Forward
// moves are gated by the current step's validity predicate; backward moves
// from the first step never mutate state and instead tell the caller to leave
// the flow. The wizard owns nothing but its cursor, so hosts keep flow data
// themselves and pass it in when asking whether the flow may continue.
package stepwizard

import (
	"errors"
	"fmt"
)

// Construction errors. An empty or malformed step list has no defined current
// step, so New refuses it up front.
var (
	ErrNoSteps         = errors.New("stepwizard: at least one step is required")
	ErrEmptyStepID     = errors.New("stepwizard: step id cannot be empty")
	ErrDuplicateStep   = errors.New("stepwizard: duplicate step id")
	ErrTerminalNotLast = errors.New("stepwizard: only the last step may be terminal")
)

// Step is one named stage of a flow.
type Step[D any] struct {
	ID       string       // Unique within the flow, e.g. "choose" or "confirm"
	Valid    func(D) bool // Forward-progress gate; nil means always valid
	Terminal bool         // Continue on this step exits the flow instead of advancing
}

// valid evaluates the predicate, treating a missing predicate as satisfied.
func (s Step[D]) valid(data D) bool {
	if s.Valid == nil {
		return true
	}
	return s.Valid(data)
}

// RetreatResult reports what a Retreat call did.
type RetreatResult int

const (
	RetreatMoved RetreatResult = iota // Cursor moved back by one
	RetreatExit                       // Already at the first step; caller should leave the flow
)

// String returns a readable name for the result.
func (r RetreatResult) String() string {
	switch r {
	case RetreatMoved:
		return "moved"
	case RetreatExit:
		return "exit"
	default:
		return fmt.Sprintf("RetreatResult(%d)", int(r))
	}
}

// Outcome reports what a Continue call did.
type Outcome int

const (
	OutcomeRejected Outcome = iota // Gate closed or nowhere to go; nothing changed
	OutcomeAdvanced                // Cursor moved forward by one
	OutcomeComplete                // Current step is terminal; caller should finish the flow
)

// String returns a readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeComplete:
		return "complete"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Wizard is the cursor over a fixed step sequence. It is not safe for
// concurrent use; a single host owns it for the lifetime of one traversal.
type Wizard[D any] struct {
	steps []Step[D]
	index int
}

// New creates a wizard positioned at the first step.
func New[D any](steps ...Step[D]) (*Wizard[D], error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}

	seen := make(map[string]struct{}, len(steps))
	for i, s := range steps {
		if s.ID == "" {
			return nil, fmt.Errorf("%w (position %d)", ErrEmptyStepID, i)
		}
		if _, ok := seen[s.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStep, s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.Terminal && i != len(steps)-1 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrTerminalNotLast, s.ID, i)
		}
	}

	owned := make([]Step[D], len(steps))
	copy(owned, steps)
	return &Wizard[D]{steps: owned}, nil
}

// MustNew is like New but panics on an invalid step list. Use it for
// package-level flow definitions whose shape is fixed at compile time.
func MustNew[D any](steps ...Step[D]) *Wizard[D] {
	w, err := New(steps...)
	if err != nil {
		panic(err)
	}
	return w
}

// Current returns the step under the cursor.
func (w *Wizard[D]) Current() Step[D] {
	return w.steps[w.index]
}

// Index returns the cursor position, always in [0, Len()-1].
func (w *Wizard[D]) Index() int {
	return w.index
}

// Len returns the number of steps.
func (w *Wizard[D]) Len() int {
	return len(w.steps)
}

// Steps returns a copy of the step list.
func (w *Wizard[D]) Steps() []Step[D] {
	out := make([]Step[D], len(w.steps))
	copy(out, w.steps)
	return out
}

// CanAdvance reports whether the current step accepts the given data.
func (w *Wizard[D]) CanAdvance(data D) bool {
	return w.steps[w.index].valid(data)
}

// Advance moves forward one step. It returns false and leaves the cursor
// alone if the gate is closed, the current step is terminal, or the cursor is
// already on the last step.
func (w *Wizard[D]) Advance(data D) bool {
	cur := w.steps[w.index]
	if cur.Terminal || w.IsAtEnd() {
		return false
	}
	if !cur.valid(data) {
		return false
	}
	w.index++
	return true
}

// Retreat moves back one step. On the first step it returns RetreatExit and
// does not touch the cursor.
func (w *Wizard[D]) Retreat() RetreatResult {
	if w.index == 0 {
		return RetreatExit
	}
	w.index--
	return RetreatMoved
}

// Continue is the host-facing "continue" action: a valid terminal step
// completes the flow, any other step tries to advance.
func (w *Wizard[D]) Continue(data D) Outcome {
	cur := w.steps[w.index]
	if cur.Terminal {
		if !cur.valid(data) {
			return OutcomeRejected
		}
		return OutcomeComplete
	}
	if w.Advance(data) {
		return OutcomeAdvanced
	}
	return OutcomeRejected
}

// Reset returns the cursor to the first step.
func (w *Wizard[D]) Reset() {
	w.index = 0
}

// IsAtStart reports whether the cursor is on the first step.
func (w *Wizard[D]) IsAtStart() bool {
	return w.index == 0
}

// IsAtEnd reports whether the cursor is on the last step.
func (w *Wizard[D]) IsAtEnd() bool {
	return w.index == len(w.steps)-1
}

// Position returns a 1-based "step x of n" pair for progress indicators.
func (w *Wizard[D]) Position() (int, int) {
	return w.index + 1, len(w.steps)
}
