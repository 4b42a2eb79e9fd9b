package launcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resolution/internal/config"
)

// fakeCandidate records whether it was probed and invoked.
type fakeCandidate struct {
	name      string
	installed bool
	invoked   bool
	invokeErr error
}

func (f *fakeCandidate) candidate() Candidate {
	return Candidate{
		Name:  f.name,
		Probe: func() bool { return f.installed },
		Invoke: func(app []string) error {
			f.invoked = true
			return f.invokeErr
		},
	}
}

func TestLaunch_FirstMatchWins(t *testing.T) {
	first := &fakeCandidate{name: "gnome-terminal", installed: false}
	second := &fakeCandidate{name: "konsole", installed: true}
	third := &fakeCandidate{name: "xterm", installed: true}

	l := New(
		[]Candidate{first.candidate(), second.candidate(), third.candidate()},
		func([]string) error { t.Fatal("direct fallback must not run"); return nil },
	)

	chosen, err := l.Launch([]string{"resolution"})
	require.NoError(t, err)
	assert.Equal(t, "konsole", chosen)
	assert.False(t, first.invoked)
	assert.True(t, second.invoked)
	assert.False(t, third.invoked, "later candidates must not be tried after a match")
}

func TestLaunch_Deterministic(t *testing.T) {
	second := &fakeCandidate{name: "konsole", installed: true}
	third := &fakeCandidate{name: "xterm", installed: true}

	for i := 0; i < 5; i++ {
		l := New(
			[]Candidate{second.candidate(), third.candidate()},
			func([]string) error { return nil },
		)
		chosen, err := l.Launch([]string{"resolution"})
		require.NoError(t, err)
		assert.Equal(t, "konsole", chosen, "selection must be deterministic")
	}
}

func TestLaunch_NoRetryAfterChosenFailure(t *testing.T) {
	failing := &fakeCandidate{name: "konsole", installed: true, invokeErr: errors.New("boom")}
	backup := &fakeCandidate{name: "xterm", installed: true}

	l := New(
		[]Candidate{failing.candidate(), backup.candidate()},
		func([]string) error { t.Fatal("direct fallback must not run"); return nil },
	)

	chosen, err := l.Launch([]string{"resolution"})
	assert.Equal(t, "konsole", chosen)
	assert.Error(t, err)
	assert.False(t, backup.invoked, "no fallback after the chosen emulator fails")
}

func TestLaunch_DirectFallbackWhenNoneInstalled(t *testing.T) {
	none := []Candidate{
		(&fakeCandidate{name: "gnome-terminal"}).candidate(),
		(&fakeCandidate{name: "konsole"}).candidate(),
	}

	var directApp []string
	l := New(none, func(app []string) error {
		directApp = app
		return nil
	})

	chosen, err := l.Launch([]string{"resolution", "gate"})
	require.NoError(t, err)
	assert.Empty(t, chosen, "direct execution reports no chosen emulator")
	assert.Equal(t, []string{"resolution", "gate"}, directApp)
}

func TestFromConfig_PreservesOrder(t *testing.T) {
	l := FromConfig(config.DefaultConfig().Terminals)
	require.Len(t, l.candidates, len(config.DefaultConfig().Terminals))
	assert.Equal(t, "gnome-terminal", l.candidates[0].Name)
	assert.Equal(t, "xterm", l.candidates[len(l.candidates)-1].Name)
}
