package gate

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"resolution/internal/storage"
)

// fakeReader returns a canned state record.
type fakeReader struct {
	state storage.DailyState
	ok    bool
}

func (f fakeReader) Load() (storage.DailyState, bool) { return f.state, f.ok }

func at(hour int) time.Time {
	return time.Date(2026, 1, 1, hour, 30, 0, 0, time.Local)
}

func TestEvaluate_EarlyHoursAlwaysSkip(t *testing.T) {
	// State claiming a run today must not matter before the gate hour.
	ranToday := fakeReader{state: storage.DailyState{LastRunDate: "2026-01-01"}, ok: true}

	for hour := 0; hour < 6; hour++ {
		if got := Evaluate(at(hour), 6, ranToday); got != SkippedEarly {
			t.Errorf("hour %d: expected SkippedEarly, got %v", hour, got)
		}
		if got := Evaluate(at(hour), 6, fakeReader{}); got != SkippedEarly {
			t.Errorf("hour %d with no state: expected SkippedEarly, got %v", hour, got)
		}
	}
}

func TestEvaluate_AlreadyRunToday(t *testing.T) {
	ranToday := fakeReader{state: storage.DailyState{LastRunDate: "2026-01-01"}, ok: true}

	for _, hour := range []int{6, 9, 12, 23} {
		if got := Evaluate(at(hour), 6, ranToday); got != SkippedAlreadyRun {
			t.Errorf("hour %d: expected SkippedAlreadyRun, got %v", hour, got)
		}
	}
}

func TestEvaluate_Launches(t *testing.T) {
	tests := []struct {
		name   string
		reader storage.Reader
	}{
		{"no state record", fakeReader{ok: false}},
		{"ran yesterday", fakeReader{state: storage.DailyState{LastRunDate: "2025-12-31"}, ok: true}},
		{"empty run date", fakeReader{state: storage.DailyState{}, ok: true}},
	}
	for _, tc := range tests {
		if got := Evaluate(at(9), 6, tc.reader); got != Launched {
			t.Errorf("%s: expected Launched, got %v", tc.name, got)
		}
	}
}

func TestEvaluate_ConfigurableGateHour(t *testing.T) {
	none := fakeReader{}
	if got := Evaluate(at(7), 8, none); got != SkippedEarly {
		t.Errorf("hour 7 with gate hour 8: expected SkippedEarly, got %v", got)
	}
	if got := Evaluate(at(8), 8, none); got != Launched {
		t.Errorf("hour 8 with gate hour 8: expected Launched, got %v", got)
	}
}

// The file-backed store must satisfy the same contract: malformed and
// missing files read as "never run".
func TestEvaluate_FileStoreStates(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewFileStore(dir)
	store.Now = func() time.Time { return at(9) }

	if got := Evaluate(at(9), 6, store); got != Launched {
		t.Errorf("missing state file: expected Launched, got %v", got)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "state.json"), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Evaluate(at(9), 6, store); got != Launched {
		t.Errorf("malformed state file: expected Launched, got %v", got)
	}

	if err := store.MarkRanToday(); err != nil {
		t.Fatal(err)
	}
	if got := Evaluate(at(9), 6, store); got != SkippedAlreadyRun {
		t.Errorf("after MarkRanToday: expected SkippedAlreadyRun, got %v", got)
	}

	// Next day launches again.
	nextDay := at(9).AddDate(0, 0, 1)
	if got := Evaluate(nextDay, 6, store); got != Launched {
		t.Errorf("next day: expected Launched, got %v", got)
	}
}

func TestDecisionString(t *testing.T) {
	if SkippedEarly.String() != "skipped, too early" {
		t.Errorf("unexpected: %s", SkippedEarly)
	}
	if SkippedAlreadyRun.String() != "skipped, already run today" {
		t.Errorf("unexpected: %s", SkippedAlreadyRun)
	}
	if Launched.String() != "launched" {
		t.Errorf("unexpected: %s", Launched)
	}
}
