package storage

import "path/filepath"

// DefaultStartDate anchors the one-year bible plan when no state exists yet.
const DefaultStartDate = "2026-01-01"

// DailyState is the single persisted progress record. It is overwritten
// whole on each save; the main application writes it, the daily gate only
// reads LastRunDate.
type DailyState struct {
	LastRunDate          string `json:"last_run_date"`
	Coins                int    `json:"coins"`
	CompletedLeetCodeIDs []int  `json:"completed_leetcode_ids"`
	BibleChaptersRead    int    `json:"bible_chapters_read"`
	StartDate            string `json:"start_date"`
}

func defaultState() DailyState {
	return DailyState{
		CompletedLeetCodeIDs: []int{},
		StartDate:            DefaultStartDate,
	}
}

func (s *FileStore) statePath() string { return filepath.Join(s.dir, stateFile) }

// Load reads the daily state. ok is false when no usable record exists;
// callers treat that as a fresh start.
func (s *FileStore) Load() (DailyState, bool) {
	state := defaultState()
	if !readJSON(s.statePath(), &state) {
		return defaultState(), false
	}
	// Merge defaults for fields absent in older files.
	if state.StartDate == "" {
		state.StartDate = DefaultStartDate
	}
	if state.CompletedLeetCodeIDs == nil {
		state.CompletedLeetCodeIDs = []int{}
	}
	return state, true
}

// loadOrDefault returns the stored state, or defaults when none exists.
func (s *FileStore) loadOrDefault() DailyState {
	state, _ := s.Load()
	return state
}

// Save overwrites the state record.
func (s *FileStore) Save(state DailyState) error {
	return s.writeJSON(s.statePath(), state)
}

// RanToday reports whether the routine already ran on the current date.
func (s *FileStore) RanToday() bool {
	state, ok := s.Load()
	return ok && state.LastRunDate == s.today()
}

// MarkRanToday stamps today's date into the state record.
func (s *FileStore) MarkRanToday() error {
	state := s.loadOrDefault()
	state.LastRunDate = s.today()
	return s.Save(state)
}

// Coins returns the current balance.
func (s *FileStore) Coins() int {
	return s.loadOrDefault().Coins
}

// AddCoins credits the balance and returns the new total.
func (s *FileStore) AddCoins(amount int) (int, error) {
	state := s.loadOrDefault()
	state.Coins += amount
	if err := s.Save(state); err != nil {
		return 0, err
	}
	return state.Coins, nil
}

// SpendCoins debits the balance if it is sufficient. Returns false without
// touching the record when the balance does not cover amount.
func (s *FileStore) SpendCoins(amount int) (bool, error) {
	state := s.loadOrDefault()
	if state.Coins < amount {
		return false, nil
	}
	state.Coins -= amount
	if err := s.Save(state); err != nil {
		return false, err
	}
	return true, nil
}

// CompletedLeetCodeIDs returns the set of finished problem ids.
func (s *FileStore) CompletedLeetCodeIDs() map[int]bool {
	state := s.loadOrDefault()
	done := make(map[int]bool, len(state.CompletedLeetCodeIDs))
	for _, id := range state.CompletedLeetCodeIDs {
		done[id] = true
	}
	return done
}

// MarkLeetCodeCompleted records a finished problem id. Duplicate ids are
// ignored.
func (s *FileStore) MarkLeetCodeCompleted(id int) error {
	state := s.loadOrDefault()
	for _, existing := range state.CompletedLeetCodeIDs {
		if existing == id {
			return nil
		}
	}
	state.CompletedLeetCodeIDs = append(state.CompletedLeetCodeIDs, id)
	return s.Save(state)
}

// BibleProgress returns chapters read so far and the plan start date.
func (s *FileStore) BibleProgress() (chaptersRead int, startDate string) {
	state := s.loadOrDefault()
	return state.BibleChaptersRead, state.StartDate
}

// AddBibleChapters records additional chapters read and returns the new total.
func (s *FileStore) AddBibleChapters(count int) (int, error) {
	state := s.loadOrDefault()
	state.BibleChaptersRead += count
	if err := s.Save(state); err != nil {
		return 0, err
	}
	return state.BibleChaptersRead, nil
}
