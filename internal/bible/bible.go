// Package bible tracks a read-the-bible-in-a-year plan: 1189 chapters over
// 365 days from a configurable start date. The book and chapter table is
// embedded at compile time so the binary needs no data files on disk.
package bible

import (
	"encoding/json"
	"fmt"
	"time"

	_ "embed"

	"resolution/internal/storage"
)

const (
	// TotalChapters is the chapter count across all 66 books.
	TotalChapters = 1189

	// DaysInYear is the plan length.
	DaysInYear = 365
)

//go:embed data/bible_books.json
var booksData []byte

// Book is one bible book and its chapter count.
type Book struct {
	Name     string `json:"name"`
	Chapters int    `json:"chapters"`
}

type bookTable struct {
	Books []Book `json:"books"`
}

var books = mustLoadBooks()

func mustLoadBooks() []Book {
	var table bookTable
	if err := json.Unmarshal(booksData, &table); err != nil {
		panic(fmt.Sprintf("bible: embedded book table corrupt: %v", err))
	}
	return table.Books
}

// Books returns the embedded book table in canonical order.
func Books() []Book { return books }

// Status summarizes plan progress as of today.
type Status struct {
	ChaptersRead    int
	Expected        int
	Total           int
	Behind          int
	Ahead           int
	ChaptersToday   int
	DaysElapsed     int
	PercentComplete float64
}

// Position is the next chapter to read.
type Position struct {
	Book           string
	Chapter        int
	ChaptersInBook int
	Complete       bool
}

// Tracker computes plan status from the persisted progress record.
type Tracker struct {
	store *storage.FileStore

	// Now is the clock used for day arithmetic. Overridden in tests.
	Now func() time.Time
}

// NewTracker returns a tracker over the given store.
func NewTracker(store *storage.FileStore) *Tracker {
	return &Tracker{store: store, Now: time.Now}
}

// dailyTarget is the chapters-per-day pace to finish in a year (~3.26).
func dailyTarget() float64 {
	return float64(TotalChapters) / float64(DaysInYear)
}

// daysElapsed counts plan days including the start day. Zero before the
// start date.
func daysElapsed(start, today time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.Local)
	currentDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	if currentDay.Before(startDay) {
		return 0
	}
	return int(currentDay.Sub(startDay).Hours()/24) + 1
}

// chaptersForDay returns the assignment size for plan day n: the pace
// schedule floor(n*target)-floor((n-1)*target), clamped to 3 or 4.
func chaptersForDay(n int) int {
	target := dailyTarget()
	assignment := int(float64(n)*target) - int(float64(n-1)*target)
	if assignment < 3 {
		assignment = 3
	}
	if assignment > 4 {
		assignment = 4
	}
	return assignment
}

// Status returns the current plan status.
func (t *Tracker) Status() Status {
	chaptersRead, startDate := t.store.BibleProgress()
	start, err := time.ParseInLocation("2006-01-02", startDate, time.Local)
	if err != nil {
		start = t.Now()
	}

	days := daysElapsed(start, t.Now())
	expected := int(float64(days) * dailyTarget())
	if expected > TotalChapters {
		expected = TotalChapters
	}

	behind := expected - chaptersRead
	status := Status{
		ChaptersRead:    chaptersRead,
		Expected:        expected,
		Total:           TotalChapters,
		ChaptersToday:   chaptersForDay(days),
		DaysElapsed:     days,
		PercentComplete: float64(int(float64(chaptersRead)/TotalChapters*1000)) / 10,
	}
	if behind > 0 {
		status.Behind = behind
	} else {
		status.Ahead = -behind
	}
	return status
}

// Position returns the next chapter to read based on chapters read so far.
func (t *Tracker) Position() Position {
	chaptersRead, _ := t.store.BibleProgress()
	return positionAfter(chaptersRead)
}

// positionAfter maps a cumulative chapter count to a book and chapter.
func positionAfter(chaptersRead int) Position {
	cumulative := 0
	for _, book := range books {
		if cumulative+book.Chapters > chaptersRead {
			return Position{
				Book:           book.Name,
				Chapter:        chaptersRead - cumulative + 1,
				ChaptersInBook: book.Chapters,
			}
		}
		cumulative += book.Chapters
	}
	last := books[len(books)-1]
	return Position{
		Book:           last.Name,
		Chapter:        last.Chapters,
		ChaptersInBook: last.Chapters,
		Complete:       true,
	}
}

// TodaysReading renders today's assignment as human-readable ranges, e.g.
// ["Genesis 49-50", "Exodus 1"].
func (t *Tracker) TodaysReading() []string {
	status := t.Status()
	position := t.Position()

	if position.Complete {
		return []string{"You've completed the whole plan!"}
	}

	bookIdx := 0
	for i, book := range books {
		if book.Name == position.Book {
			bookIdx = i
			break
		}
	}

	var readings []string
	remaining := status.ChaptersToday
	chapter := position.Chapter
	for remaining > 0 && bookIdx < len(books) {
		book := books[bookIdx]
		leftInBook := book.Chapters - chapter + 1

		take := remaining
		if take > leftInBook {
			take = leftInBook
		}
		if take == 1 {
			readings = append(readings, fmt.Sprintf("%s %d", book.Name, chapter))
		} else {
			readings = append(readings, fmt.Sprintf("%s %d-%d", book.Name, chapter, chapter+take-1))
		}

		remaining -= take
		bookIdx++
		chapter = 1
	}
	return readings
}

// RecordReading persists chapters read and returns the refreshed status.
func (t *Tracker) RecordReading(chapters int) (Status, error) {
	if _, err := t.store.AddBibleChapters(chapters); err != nil {
		return Status{}, err
	}
	return t.Status(), nil
}
