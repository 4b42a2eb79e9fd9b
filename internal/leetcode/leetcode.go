// Package leetcode picks daily coding practice problems from an embedded
// catalog of free problems and tracks completion against the stored state.
package leetcode

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os/exec"
	"strings"

	_ "embed"

	"resolution/internal/storage"
)

// Difficulty levels as used in the catalog.
const (
	DifficultyEasy   = 1
	DifficultyMedium = 2
	DifficultyHard   = 3
)

//go:embed data/leetcode_problems.json
var catalogData []byte

// Problem is one catalog entry.
type Problem struct {
	ID         int    `json:"id"`
	FrontendID int    `json:"frontend_id"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Difficulty int    `json:"difficulty"`
}

type catalogFile struct {
	Problems []Problem `json:"problems"`
}

var catalog = mustLoadCatalog()

func mustLoadCatalog() []Problem {
	var file catalogFile
	if err := json.Unmarshal(catalogData, &file); err != nil {
		panic(fmt.Sprintf("leetcode: embedded catalog corrupt: %v", err))
	}
	return file.Problems
}

// Catalog returns all embedded problems.
func Catalog() []Problem { return catalog }

// ParseDifficulty maps "easy"/"medium"/"hard" to a catalog level.
func ParseDifficulty(name string) (int, error) {
	switch strings.ToLower(name) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return 0, fmt.Errorf("invalid difficulty: %s", name)
}

// DifficultyName maps a catalog level back to its lowercase name.
func DifficultyName(level int) string {
	switch level {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	}
	return "unknown"
}

// DiffStats is the completed/total pair for one difficulty.
type DiffStats struct {
	Completed int
	Total     int
}

// Stats summarizes completion across the catalog.
type Stats struct {
	TotalCompleted int
	Easy           DiffStats
	Medium         DiffStats
	Hard           DiffStats
}

// Picker selects practice problems, excluding ones already completed.
type Picker struct {
	store *storage.FileStore

	// Rand drives problem selection. Overridden in tests for determinism.
	Rand *rand.Rand

	// OpenURL launches a URL in the user's browser. Overridden in tests.
	OpenURL func(url string) error
}

// NewPicker returns a picker over the given store.
func NewPicker(store *storage.FileStore) *Picker {
	return &Picker{
		store:   store,
		OpenURL: openInBrowser,
	}
}

// Available returns uncompleted problems of the given difficulty, in
// catalog order.
func (p *Picker) Available(difficulty int) []Problem {
	done := p.store.CompletedLeetCodeIDs()
	var available []Problem
	for _, problem := range catalog {
		if problem.Difficulty != difficulty || done[problem.ID] {
			continue
		}
		available = append(available, problem)
	}
	return available
}

// RandomProblems returns up to count random uncompleted problems of the
// given difficulty. Fewer than count remaining returns all of them.
func (p *Picker) RandomProblems(difficulty, count int) []Problem {
	available := p.Available(difficulty)
	if len(available) <= count {
		return available
	}
	shuffle := func(n int, swap func(i, j int)) {
		if p.Rand != nil {
			p.Rand.Shuffle(n, swap)
		} else {
			rand.Shuffle(n, swap)
		}
	}
	shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})
	return available[:count]
}

// URL returns the problem page for a slug.
func URL(slug string) string {
	return fmt.Sprintf("https://leetcode.com/problems/%s/", slug)
}

// Open launches the problem page in the browser and returns the URL.
// Browser failure is not fatal; the URL is still shown to the user.
func (p *Picker) Open(slug string) (string, error) {
	url := URL(slug)
	return url, p.OpenURL(url)
}

// MarkDone records a completed problem id.
func (p *Picker) MarkDone(id int) error {
	return p.store.MarkLeetCodeCompleted(id)
}

// Stats returns completion counts per difficulty.
func (p *Picker) Stats() Stats {
	done := p.store.CompletedLeetCodeIDs()
	stats := Stats{TotalCompleted: len(done)}
	for _, problem := range catalog {
		var bucket *DiffStats
		switch problem.Difficulty {
		case DifficultyEasy:
			bucket = &stats.Easy
		case DifficultyMedium:
			bucket = &stats.Medium
		case DifficultyHard:
			bucket = &stats.Hard
		default:
			continue
		}
		bucket.Total++
		if done[problem.ID] {
			bucket.Completed++
		}
	}
	return stats
}

// openInBrowser hands the URL to the desktop's default browser.
func openInBrowser(url string) error {
	return exec.Command("xdg-open", url).Start()
}
