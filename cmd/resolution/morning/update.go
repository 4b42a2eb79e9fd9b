package morning

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"resolution/internal/leetcode"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleSubmit(strings.TrimSpace(m.input.Value()))
		}
		if m.step == stepRewards {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSubmit dispatches an entered line to the current step.
func (m Model) handleSubmit(value string) (tea.Model, tea.Cmd) {
	m.input.SetValue("")

	switch m.step {
	case stepGoals:
		return m.handleGoals(value)
	case stepBible:
		return m.handleBible(value)
	case stepCatchup:
		return m.handleCatchup(value)
	case stepDifficulty:
		return m.handleDifficulty(value)
	case stepProblems:
		return m.handleProblemChoice(value)
	case stepProblemConfirm:
		return m.handleProblemConfirm(value)
	case stepRewards:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleGoals collects goal lines until an empty submit.
func (m Model) handleGoals(value string) (tea.Model, tea.Cmd) {
	if value != "" {
		m.goals = append(m.goals, value)
		return m, nil
	}

	if len(m.goals) > 0 {
		if err := m.store.SaveTodaysGoals(m.goals); err != nil {
			m.notice("Could not save goals: %v", err)
		}
	}
	return m.enterBible()
}

func (m Model) enterBible() (tea.Model, tea.Cmd) {
	m.status = m.tracker.Status()
	m.reading = m.tracker.TodaysReading()
	m.step = stepBible
	m.input.Placeholder = "y/n"
	return m, nil
}

// handleBible records today's assignment when the user confirms reading it.
func (m Model) handleBible(value string) (tea.Model, tea.Cmd) {
	if isYes(value) {
		if _, err := m.tracker.RecordReading(m.status.ChaptersToday); err != nil {
			m.notice("Could not record reading: %v", err)
		} else {
			earned, err := m.bank.AwardBibleReading(m.status.ChaptersToday, false)
			if err != nil {
				m.notice("Could not award coins: %v", err)
			}
			m.addEarned("Bible reading", earned)
		}
	}

	if m.tracker.Status().Behind > 0 {
		m.step = stepCatchup
		m.input.Placeholder = "Extra chapters read (0 to skip)"
		return m, nil
	}
	return m.enterProblems()
}

// handleCatchup records extra chapters at the reduced catch-up rate.
func (m Model) handleCatchup(value string) (tea.Model, tea.Cmd) {
	extra, err := strconv.Atoi(value)
	if err != nil || extra < 0 {
		extra = 0
	}
	if extra > 0 {
		if _, err := m.tracker.RecordReading(extra); err != nil {
			m.notice("Could not record reading: %v", err)
		} else {
			earned, err := m.bank.AwardBibleReading(extra, true)
			if err != nil {
				m.notice("Could not award coins: %v", err)
			}
			m.addEarned("Catch-up chapters", earned)
		}
	}
	return m.enterProblems()
}

// enterProblems asks for a difficulty first, unless the whole catalog is
// already done.
func (m Model) enterProblems() (tea.Model, tea.Cmd) {
	remaining := 0
	for _, difficulty := range []int{leetcode.DifficultyEasy, leetcode.DifficultyMedium, leetcode.DifficultyHard} {
		remaining += len(m.picker.Available(difficulty))
	}
	if remaining == 0 {
		return m.enterRewards()
	}

	m.step = stepDifficulty
	m.input.Placeholder = "easy / medium / hard, s to skip"
	return m, nil
}

// handleDifficulty draws three random uncompleted problems of the chosen
// difficulty.
func (m Model) handleDifficulty(value string) (tea.Model, tea.Cmd) {
	if value == "" || value == "s" || value == "skip" {
		return m.enterRewards()
	}

	difficulty, err := leetcode.ParseDifficulty(value)
	if err != nil {
		m.notice("Pick easy, medium or hard, or s to skip.")
		return m, nil
	}

	m.problems = m.picker.RandomProblems(difficulty, 3)
	if len(m.problems) == 0 {
		m.notice("Every %s problem is done already. Pick another difficulty.", value)
		return m, nil
	}

	m.step = stepProblems
	m.chosen = -1
	m.input.Placeholder = "Problem number, or s to skip"
	return m, nil
}

// handleProblemChoice opens the chosen problem in the browser.
func (m Model) handleProblemChoice(value string) (tea.Model, tea.Cmd) {
	if value == "" || value == "s" || value == "skip" {
		return m.enterRewards()
	}

	idx, err := strconv.Atoi(value)
	if err != nil || idx < 1 || idx > len(m.problems) {
		m.notice("Pick a number between 1 and %d, or s to skip.", len(m.problems))
		return m, nil
	}

	m.chosen = idx - 1
	url, err := m.picker.Open(m.problems[m.chosen].Slug)
	if err != nil {
		m.notice("Could not open a browser; visit %s", url)
	}
	m.step = stepProblemConfirm
	m.input.Placeholder = "y/n"
	return m, nil
}

// handleProblemConfirm awards the problem once the user reports solving it.
func (m Model) handleProblemConfirm(value string) (tea.Model, tea.Cmd) {
	problem := m.problems[m.chosen]
	if isYes(value) {
		if err := m.picker.MarkDone(problem.ID); err != nil {
			m.notice("Could not record completion: %v", err)
		} else {
			earned, err := m.bank.AwardLeetCode(leetcode.DifficultyName(problem.Difficulty))
			if err != nil {
				m.notice("Could not award coins: %v", err)
			}
			m.addEarned("LeetCode: "+problem.Title, earned)
		}
		return m.enterRewards()
	}

	// Not solved yet: back to the list so another problem can be tried.
	m.step = stepProblems
	m.chosen = -1
	m.input.Placeholder = "Problem number, or s to skip"
	return m, nil
}

func (m Model) enterRewards() (tea.Model, tea.Cmd) {
	m.step = stepRewards
	m.input.Blur()
	return m, nil
}

func isYes(value string) bool {
	switch strings.ToLower(value) {
	case "y", "yes":
		return true
	}
	return false
}
