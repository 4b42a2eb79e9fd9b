package bible

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resolution/internal/storage"
)

func TestEmbeddedBookTable(t *testing.T) {
	total := 0
	for _, book := range Books() {
		total += book.Chapters
	}
	assert.Equal(t, TotalChapters, total, "book table must sum to the plan total")
	assert.Len(t, Books(), 66)
	assert.Equal(t, "Genesis", Books()[0].Name)
	assert.Equal(t, "Revelation", Books()[65].Name)
}

func newTestTracker(t *testing.T, day int) (*Tracker, *storage.FileStore) {
	t.Helper()
	store := storage.NewFileStore(t.TempDir())
	tracker := NewTracker(store)
	// Plan starts 2026-01-01; pin "today" to the requested plan day.
	tracker.Now = func() time.Time {
		return time.Date(2026, 1, 1, 9, 0, 0, 0, time.Local).AddDate(0, 0, day-1)
	}
	store.Now = tracker.Now
	return tracker, store
}

func TestStatus_FirstDay(t *testing.T) {
	tracker, _ := newTestTracker(t, 1)

	status := tracker.Status()
	assert.Equal(t, 1, status.DaysElapsed)
	assert.Equal(t, 3, status.Expected)
	assert.GreaterOrEqual(t, status.ChaptersToday, 3)
	assert.LessOrEqual(t, status.ChaptersToday, 4)
	assert.Equal(t, 3, status.Behind)
	assert.Equal(t, 0, status.Ahead)
}

func TestStatus_AheadAndBehind(t *testing.T) {
	tracker, store := newTestTracker(t, 10)

	// Expected after 10 days: floor(10 * 1189/365) = 32.
	_, err := store.AddBibleChapters(40)
	require.NoError(t, err)
	status := tracker.Status()
	assert.Equal(t, 32, status.Expected)
	assert.Equal(t, 8, status.Ahead)
	assert.Equal(t, 0, status.Behind)

	tracker2, store2 := newTestTracker(t, 10)
	_, err = store2.AddBibleChapters(20)
	require.NoError(t, err)
	status = tracker2.Status()
	assert.Equal(t, 12, status.Behind)
	assert.Equal(t, 0, status.Ahead)
}

func TestStatus_BeforeStartDate(t *testing.T) {
	store := storage.NewFileStore(t.TempDir())
	tracker := NewTracker(store)
	tracker.Now = func() time.Time {
		return time.Date(2025, 12, 25, 9, 0, 0, 0, time.Local)
	}

	status := tracker.Status()
	assert.Equal(t, 0, status.DaysElapsed)
	assert.Equal(t, 0, status.Expected)
}

func TestPositionAfter(t *testing.T) {
	tests := []struct {
		chaptersRead int
		want         Position
	}{
		{0, Position{Book: "Genesis", Chapter: 1, ChaptersInBook: 50}},
		{49, Position{Book: "Genesis", Chapter: 50, ChaptersInBook: 50}},
		{50, Position{Book: "Exodus", Chapter: 1, ChaptersInBook: 40}},
		{TotalChapters - 1, Position{Book: "Revelation", Chapter: 22, ChaptersInBook: 22}},
		{TotalChapters, Position{Book: "Revelation", Chapter: 22, ChaptersInBook: 22, Complete: true}},
	}
	for _, tc := range tests {
		got := positionAfter(tc.chaptersRead)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("positionAfter(%d) mismatch (-want +got):\n%s", tc.chaptersRead, diff)
		}
	}
}

func TestTodaysReading_SpansBooks(t *testing.T) {
	tracker, store := newTestTracker(t, 1)

	// Position at Genesis 49: a 3-4 chapter assignment crosses into Exodus.
	_, err := store.AddBibleChapters(48)
	require.NoError(t, err)

	readings := tracker.TodaysReading()
	require.NotEmpty(t, readings)
	assert.Contains(t, readings[0], "Genesis 49")
	if len(readings) > 1 {
		assert.Contains(t, readings[1], "Exodus 1")
	}
}

func TestTodaysReading_Complete(t *testing.T) {
	tracker, store := newTestTracker(t, 365)

	_, err := store.AddBibleChapters(TotalChapters)
	require.NoError(t, err)

	readings := tracker.TodaysReading()
	require.Len(t, readings, 1)
	assert.Contains(t, readings[0], "completed")
}

func TestRecordReading(t *testing.T) {
	tracker, _ := newTestTracker(t, 5)

	status, err := tracker.RecordReading(4)
	require.NoError(t, err)
	assert.Equal(t, 4, status.ChaptersRead)
}

func TestChaptersForDay_Clamped(t *testing.T) {
	for day := 1; day <= 365; day++ {
		got := chaptersForDay(day)
		if got < 3 || got > 4 {
			t.Fatalf("day %d: assignment %d outside 3-4", day, got)
		}
	}
}
