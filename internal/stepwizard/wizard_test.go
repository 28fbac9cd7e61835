package stepwizard

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioData mirrors a transfer-style form: an option picker plus two fields.
type scenarioData struct {
	option string
	first  string
	second string
}

func scenarioWizard(t *testing.T) *Wizard[*scenarioData] {
	t.Helper()
	w, err := New(
		Step[*scenarioData]{ID: "choose", Valid: func(d *scenarioData) bool { return d.option != "" }},
		Step[*scenarioData]{ID: "details", Valid: func(d *scenarioData) bool { return d.first != "" && d.second != "" }},
		Step[*scenarioData]{ID: "confirm"},
		Step[*scenarioData]{ID: "success", Terminal: true},
	)
	require.NoError(t, err)
	return w
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		steps []Step[int]
		want  error
	}{
		{name: "no steps", steps: nil, want: ErrNoSteps},
		{name: "empty id", steps: []Step[int]{{ID: "a"}, {ID: ""}}, want: ErrEmptyStepID},
		{name: "duplicate id", steps: []Step[int]{{ID: "a"}, {ID: "b"}, {ID: "a"}}, want: ErrDuplicateStep},
		{name: "terminal in the middle", steps: []Step[int]{{ID: "a", Terminal: true}, {ID: "b"}}, want: ErrTerminalNotLast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := New(tt.steps...)
			assert.Nil(t, w)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMustNew_PanicsOnEmpty(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustNew[int]() })
	assert.NotPanics(t, func() { MustNew(Step[int]{ID: "only"}) })
}

func TestNew_CopiesSteps(t *testing.T) {
	t.Parallel()

	steps := []Step[int]{{ID: "a"}, {ID: "b"}}
	w, err := New(steps...)
	require.NoError(t, err)

	steps[0].ID = "mutated"
	assert.Equal(t, "a", w.Current().ID, "wizard must not alias the caller's slice")

	got := w.Steps()
	got[1].ID = "mutated"
	assert.Equal(t, "b", w.Steps()[1].ID)
}

func TestWizard_Scenario(t *testing.T) {
	t.Parallel()

	w := scenarioWizard(t)
	data := &scenarioData{}

	assert.Equal(t, 0, w.Index())
	assert.True(t, w.IsAtStart())
	assert.False(t, w.CanAdvance(data), "no option selected yet")
	assert.False(t, w.Advance(data))
	assert.Equal(t, 0, w.Index())

	data.option = "zaps"
	assert.True(t, w.CanAdvance(data))
	assert.True(t, w.Advance(data))
	assert.Equal(t, "details", w.Current().ID)

	data.first = "ejembiii.zaps"
	assert.False(t, w.Advance(data), "second field still empty")
	data.second = "12.5"
	assert.True(t, w.Advance(data))
	assert.Equal(t, "confirm", w.Current().ID)

	assert.True(t, w.Advance(data), "confirm has no predicate")
	assert.Equal(t, "success", w.Current().ID)
	assert.True(t, w.IsAtEnd())
	assert.True(t, w.Current().Terminal)

	assert.False(t, w.Advance(data), "terminal step never auto-increments")
	assert.Equal(t, 3, w.Index())

	require.Equal(t, RetreatMoved, w.Retreat())
	require.Equal(t, RetreatMoved, w.Retreat())
	assert.Equal(t, "details", w.Current().ID)
	require.Equal(t, RetreatMoved, w.Retreat())
	assert.Equal(t, 0, w.Index())
}

func TestWizard_RetreatAtStartSignalsExit(t *testing.T) {
	t.Parallel()

	w := scenarioWizard(t)

	for i := 0; i < 3; i++ {
		assert.Equal(t, RetreatExit, w.Retreat())
		assert.Equal(t, 0, w.Index())
	}
}

func TestWizard_CurrentIsIdempotent(t *testing.T) {
	t.Parallel()

	w := scenarioWizard(t)
	data := &scenarioData{option: "external"}
	require.True(t, w.Advance(data))

	first := w.Current().ID
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, w.Current().ID)
		assert.Equal(t, 1, w.Index())
	}
}

func TestWizard_NonTerminalLastStep(t *testing.T) {
	t.Parallel()

	w, err := New(Step[int]{ID: "a"}, Step[int]{ID: "b"})
	require.NoError(t, err)

	require.True(t, w.Advance(0))
	assert.True(t, w.IsAtEnd())
	assert.True(t, w.CanAdvance(0))
	assert.False(t, w.Advance(0), "cannot move past the last index")
	assert.Equal(t, 1, w.Index())
	assert.Equal(t, OutcomeRejected, w.Continue(0))
}

func TestWizard_SingleStep(t *testing.T) {
	t.Parallel()

	w, err := New(Step[int]{ID: "only", Terminal: true})
	require.NoError(t, err)

	assert.True(t, w.IsAtStart())
	assert.True(t, w.IsAtEnd())
	assert.False(t, w.Advance(0))
	assert.Equal(t, RetreatExit, w.Retreat())
	assert.Equal(t, OutcomeComplete, w.Continue(0))
}

func TestWizard_Continue(t *testing.T) {
	t.Parallel()

	w := scenarioWizard(t)
	data := &scenarioData{}

	assert.Equal(t, OutcomeRejected, w.Continue(data))
	data.option = "zaps"
	assert.Equal(t, OutcomeAdvanced, w.Continue(data))
	data.first, data.second = "a", "b"
	assert.Equal(t, OutcomeAdvanced, w.Continue(data))
	assert.Equal(t, OutcomeAdvanced, w.Continue(data))
	assert.Equal(t, OutcomeComplete, w.Continue(data))
	assert.Equal(t, OutcomeComplete, w.Continue(data), "complete is reported, not applied")
	assert.Equal(t, 3, w.Index())
}

func TestWizard_ContinueGatedTerminal(t *testing.T) {
	t.Parallel()

	acked := false
	w, err := New(
		Step[*bool]{ID: "key"},
		Step[*bool]{ID: "backup", Terminal: true, Valid: func(b *bool) bool { return *b }},
	)
	require.NoError(t, err)
	require.True(t, w.Advance(&acked))

	assert.Equal(t, OutcomeRejected, w.Continue(&acked))
	acked = true
	assert.Equal(t, OutcomeComplete, w.Continue(&acked))
}

func TestWizard_ResetAndPosition(t *testing.T) {
	t.Parallel()

	w := scenarioWizard(t)
	data := &scenarioData{option: "zaps", first: "a", second: "b"}
	w.Advance(data)
	w.Advance(data)

	cur, total := w.Position()
	assert.Equal(t, 3, cur)
	assert.Equal(t, 4, total)

	w.Reset()
	assert.True(t, w.IsAtStart())
	assert.Equal(t, "choose", w.Current().ID)
}

// TestWizard_RandomWalkStaysInBounds drives random advance/retreat sequences
// against random step counts and gates and checks the cursor invariants.
func TestWizard_RandomWalkStaysInBounds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))

	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.IntN(8)
		steps := make([]Step[bool], n)
		for i := range steps {
			steps[i] = Step[bool]{ID: string(rune('a' + i))}
			if rng.IntN(2) == 0 {
				steps[i].Valid = func(open bool) bool { return open }
			}
		}
		steps[n-1].Terminal = rng.IntN(2) == 0

		w, err := New(steps...)
		require.NoError(t, err)

		for move := 0; move < 100; move++ {
			before := w.Index()
			open := rng.IntN(3) > 0

			if rng.IntN(2) == 0 {
				can := w.CanAdvance(open)
				moved := w.Advance(open)
				if !can {
					require.False(t, moved, "advance must be rejected when the gate is closed")
					require.Equal(t, before, w.Index())
				}
				if moved {
					require.Equal(t, before+1, w.Index())
				} else {
					require.Equal(t, before, w.Index())
				}
			} else {
				res := w.Retreat()
				if before == 0 {
					require.Equal(t, RetreatExit, res)
					require.Equal(t, 0, w.Index())
				} else {
					require.Equal(t, RetreatMoved, res)
					require.Equal(t, before-1, w.Index())
				}
			}

			require.GreaterOrEqual(t, w.Index(), 0)
			require.Less(t, w.Index(), n)
		}
	}
}

func TestResultStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "moved", RetreatMoved.String())
	assert.Equal(t, "exit", RetreatExit.String())
	assert.Equal(t, "rejected", OutcomeRejected.String())
	assert.Equal(t, "advanced", OutcomeAdvanced.String())
	assert.Equal(t, "complete", OutcomeComplete.String())
	assert.Equal(t, "Outcome(9)", Outcome(9).String())
}
