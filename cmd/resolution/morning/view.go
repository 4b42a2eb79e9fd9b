package morning

import (
	"fmt"
	"strings"

	"resolution/cmd/resolution/ui"
	"resolution/internal/leetcode"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(ui.Logo(m.styles))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Header.Render(today()))
	sb.WriteString("  ")
	sb.WriteString(m.styles.Coin.Render(fmt.Sprintf("● %d coins", m.bank.Balance())))
	sb.WriteString("\n\n")

	switch m.step {
	case stepGoals:
		sb.WriteString(m.viewGoals())
	case stepBible:
		sb.WriteString(m.viewBible())
	case stepCatchup:
		sb.WriteString(m.viewCatchup())
	case stepDifficulty:
		sb.WriteString(m.viewDifficulty())
	case stepProblems:
		sb.WriteString(m.viewProblems())
	case stepProblemConfirm:
		sb.WriteString(m.viewProblemConfirm())
	case stepRewards:
		sb.WriteString(m.viewRewards())
	}

	for _, notice := range m.notices {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Warning.Render(notice))
	}

	if m.step != stepRewards {
		sb.WriteString("\n\n")
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
		sb.WriteString(m.styles.Footer.Render("esc to quit"))
	}
	return sb.String()
}

func (m Model) viewGoals() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("What matters today?"))
	sb.WriteString("\n")
	for i, goal := range m.goals {
		sb.WriteString(m.styles.Body.Render(fmt.Sprintf("  %d. %s", i+1, goal)))
		sb.WriteString("\n")
	}
	if len(m.goals) == 0 {
		sb.WriteString(m.styles.Muted.Render("  No goals yet."))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) viewBible() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Bible plan"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Body.Render(fmt.Sprintf(
		"Day %d. %d of %d chapters read (%.1f%%).",
		m.status.DaysElapsed, m.status.ChaptersRead, m.status.Total, m.status.PercentComplete)))
	sb.WriteString("\n")
	if m.status.Behind > 0 {
		sb.WriteString(m.styles.Warning.Render(fmt.Sprintf("%d chapters behind schedule.", m.status.Behind)))
		sb.WriteString("\n")
	} else if m.status.Ahead > 0 {
		sb.WriteString(m.styles.Success.Render(fmt.Sprintf("%d chapters ahead of schedule.", m.status.Ahead)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Bold.Render("Today: " + strings.Join(m.reading, ", ")))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Prompt.Render("Did you finish today's reading?"))
	return sb.String()
}

func (m Model) viewCatchup() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Catch up"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Body.Render(fmt.Sprintf(
		"You're %d chapters behind. Extra chapters earn %d coins each.",
		m.tracker.Status().Behind, m.cfg.Rewards.BibleCatchupChapter)))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Prompt.Render("How many extra chapters did you read?"))
	return sb.String()
}

func (m Model) viewDifficulty() string {
	stats := m.picker.Stats()
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Coding practice"))
	sb.WriteString("\n")
	for _, row := range []struct {
		name   string
		stats  leetcode.DiffStats
		reward int
	}{
		{"easy", stats.Easy, m.cfg.Rewards.LeetCodeEasy},
		{"medium", stats.Medium, m.cfg.Rewards.LeetCodeMedium},
		{"hard", stats.Hard, m.cfg.Rewards.LeetCodeHard},
	} {
		sb.WriteString(m.styles.Body.Render(fmt.Sprintf("  %-7s %d/%d done", row.name, row.stats.Completed, row.stats.Total)))
		sb.WriteString("  ")
		sb.WriteString(m.styles.Coin.Render(fmt.Sprintf("+%d each", row.reward)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Prompt.Render("Pick a difficulty."))
	return sb.String()
}

func (m Model) viewProblems() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Pick a problem"))
	sb.WriteString("\n")
	for i, problem := range m.problems {
		reward := m.rewardFor(problem.Difficulty)
		line := fmt.Sprintf("  %d. %s", i+1, problem.Title)
		sb.WriteString(m.styles.Body.Render(line))
		sb.WriteString("  ")
		sb.WriteString(m.styles.Muted.Render(leetcode.DifficultyName(problem.Difficulty)))
		sb.WriteString("  ")
		sb.WriteString(m.styles.Coin.Render(fmt.Sprintf("+%d", reward)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Prompt.Render("Choose one to open in your browser."))
	return sb.String()
}

func (m Model) viewProblemConfirm() string {
	problem := m.problems[m.chosen]
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(problem.Title))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(leetcode.URL(problem.Slug)))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Prompt.Render("Did you solve it?"))
	return sb.String()
}

func (m Model) viewRewards() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Morning complete"))
	sb.WriteString("\n")

	if len(m.earned) == 0 {
		sb.WriteString(m.styles.Muted.Render("No coins earned this morning."))
		sb.WriteString("\n")
	}
	total := 0
	for _, line := range m.earned {
		total += line.coins
		sb.WriteString(m.styles.Body.Render("  "+line.label) + "  " + m.styles.Coin.Render(fmt.Sprintf("+%d", line.coins)))
		sb.WriteString("\n")
	}
	if total > 0 {
		sb.WriteString(m.styles.Bold.Render(fmt.Sprintf("  Earned %d, balance %d.", total, m.bank.Balance())))
		sb.WriteString("\n")
	}

	if table := m.shopPreview(); table != "" {
		sb.WriteString("\n")
		sb.WriteString(table)
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Footer.Render("Press any key to start the day."))
	return sb.String()
}

// shopPreview lists unpurchased rewards the current balance could go toward.
func (m Model) shopPreview() string {
	table := ui.NewSimpleTable("Spend it on", []string{"ID", "Reward", "Cost"})
	for _, item := range m.store.ShopItems() {
		if item.Purchased {
			continue
		}
		table.AddRow(fmt.Sprintf("%d", item.ID), item.Name, fmt.Sprintf("%d", item.Cost))
	}
	return table.View(m.styles)
}

func (m Model) rewardFor(difficulty int) int {
	switch difficulty {
	case leetcode.DifficultyEasy:
		return m.cfg.Rewards.LeetCodeEasy
	case leetcode.DifficultyMedium:
		return m.cfg.Rewards.LeetCodeMedium
	case leetcode.DifficultyHard:
		return m.cfg.Rewards.LeetCodeHard
	}
	return 0
}
