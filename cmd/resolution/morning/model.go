// Package morning implements the interactive morning routine: set the
// day's goals, check in on the bible reading plan, pick a coding problem
// and review the rewards earned. It runs full screen and is normally
// started by the daily gate, but can be invoked manually at any time.
package morning

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"resolution/cmd/resolution/ui"
	"resolution/internal/bible"
	"resolution/internal/coins"
	"resolution/internal/config"
	"resolution/internal/leetcode"
	"resolution/internal/storage"
)

// step identifies the current wizard phase.
type step int

const (
	stepGoals step = iota
	stepBible
	stepCatchup
	stepDifficulty
	stepProblems
	stepProblemConfirm
	stepRewards
)

// earnedLine is one entry in the rewards summary.
type earnedLine struct {
	label string
	coins int
}

// Model is the bubbletea model for the morning routine.
type Model struct {
	styles ui.Styles
	input  textinput.Model

	store   *storage.FileStore
	bank    *coins.Bank
	tracker *bible.Tracker
	picker  *leetcode.Picker
	cfg     *config.Config

	step    step
	goals   []string
	status  bible.Status
	reading []string

	problems []leetcode.Problem
	chosen   int

	earned  []earnedLine
	notices []string

	width    int
	quitting bool
}

// New assembles the wizard over the given store and config.
func New(store *storage.FileStore, cfg *config.Config) Model {
	input := textinput.New()
	input.Placeholder = "Type a goal and press enter, empty to continue..."
	input.Focus()
	input.CharLimit = 120

	return Model{
		styles:  ui.DefaultStyles(),
		input:   input,
		store:   store,
		bank:    coins.NewBank(store, cfg.Rewards),
		tracker: bible.NewTracker(store),
		picker:  leetcode.NewPicker(store),
		cfg:     cfg,
		step:    stepGoals,
		chosen:  -1,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Run stamps today's run date and drives the wizard to completion. The
// stamp happens up front so the gate will not relaunch a routine the user
// dismissed half way; an aborted run simply resumes tomorrow.
func Run(store *storage.FileStore, cfg *config.Config) error {
	if err := store.MarkRanToday(); err != nil {
		return fmt.Errorf("record run date: %w", err)
	}
	program := tea.NewProgram(New(store, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("morning routine: %w", err)
	}
	return nil
}

// addEarned appends a rewards summary line, skipping zero awards.
func (m *Model) addEarned(label string, earned int) {
	if earned > 0 {
		m.earned = append(m.earned, earnedLine{label: label, coins: earned})
	}
}

func (m *Model) notice(format string, args ...interface{}) {
	m.notices = append(m.notices, fmt.Sprintf(format, args...))
}

func today() string {
	return time.Now().Format("Monday, January 2")
}
