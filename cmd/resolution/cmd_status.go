package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"resolution/cmd/resolution/ui"
	"resolution/internal/bible"
	"resolution/internal/gate"
	"resolution/internal/leetcode"
	"resolution/internal/service"
)

// statusCmd shows the full picture: gate state, coins, bible plan progress,
// problem stats, today's goals and the reward shop.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's gate state and overall progress",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	store, cfg, err := openEnv()
	if err != nil {
		return err
	}
	styles := ui.DefaultStyles()

	decision := gate.Evaluate(time.Now(), cfg.GateHour, store)
	fmt.Println(styles.Title.Render("resolution status"))
	fmt.Printf("%s %s\n", styles.Bold.Render("Gate:"), decision)
	fmt.Printf("%s %s\n", styles.Bold.Render("Coins:"), styles.Coin.Render(fmt.Sprintf("%d", store.Coins())))

	home, err := os.UserHomeDir()
	if err == nil {
		installed := service.NewRegistrar(home, "").IsInstalled()
		state := styles.Error.Render("not installed")
		if installed {
			state = styles.Success.Render("installed")
		}
		fmt.Printf("%s %s\n", styles.Bold.Render("Login service:"), state)
	}

	tracker := bible.NewTracker(store)
	status := tracker.Status()
	fmt.Println()
	fmt.Println(styles.Title.Render("Bible plan"))
	fmt.Printf("Day %d, %d/%d chapters (%.1f%%)\n",
		status.DaysElapsed, status.ChaptersRead, status.Total, status.PercentComplete)
	switch {
	case status.Behind > 0:
		fmt.Println(styles.Warning.Render(fmt.Sprintf("%d chapters behind", status.Behind)))
	case status.Ahead > 0:
		fmt.Println(styles.Success.Render(fmt.Sprintf("%d chapters ahead", status.Ahead)))
	}
	fmt.Printf("Today: %s\n", strings.Join(tracker.TodaysReading(), ", "))

	stats := leetcode.NewPicker(store).Stats()
	fmt.Println()
	fmt.Println(styles.Title.Render("LeetCode"))
	fmt.Printf("Easy %d/%d  Medium %d/%d  Hard %d/%d\n",
		stats.Easy.Completed, stats.Easy.Total,
		stats.Medium.Completed, stats.Medium.Total,
		stats.Hard.Completed, stats.Hard.Total)

	if goals := store.TodaysGoals(); len(goals) > 0 {
		fmt.Println()
		fmt.Println(styles.Title.Render("Today's goals"))
		for i, goal := range goals {
			fmt.Printf("  %d. %s\n", i+1, goal)
		}
	}

	if table := shopTable(store.ShopItems(), styles); table != "" {
		fmt.Println()
		fmt.Print(table)
	}
	return nil
}
