package storage

import "path/filepath"

// goalsRecord pairs a list of goals with the date they were set for. Goals
// from a previous day are stale and never surfaced.
type goalsRecord struct {
	Date  string   `json:"date"`
	Goals []string `json:"goals"`
}

func (s *FileStore) goalsPath() string { return filepath.Join(s.dir, goalsFile) }

// TodaysGoals returns the goals set today, or nil when none were set or the
// stored goals belong to an earlier date.
func (s *FileStore) TodaysGoals() []string {
	var record goalsRecord
	if !readJSON(s.goalsPath(), &record) {
		return nil
	}
	if record.Date != s.today() {
		return nil
	}
	return record.Goals
}

// SaveTodaysGoals overwrites the goal list for the current date.
func (s *FileStore) SaveTodaysGoals(goals []string) error {
	return s.writeJSON(s.goalsPath(), goalsRecord{Date: s.today(), Goals: goals})
}
