package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"resolution/cmd/resolution/ui"
	"resolution/internal/coins"
	"resolution/internal/logging"
)

var byeShutdown bool

// byeCmd is the evening check-out: mark which of today's goals got done,
// collect the coins and optionally shut the machine down.
var byeCmd = &cobra.Command{
	Use:   "bye",
	Short: "End the day: check off goals, collect coins, optionally shut down",
	RunE:  runBye,
}

func init() {
	byeCmd.Flags().BoolVar(&byeShutdown, "shutdown", false, "Shut the machine down after checking out")
}

func runBye(cmd *cobra.Command, args []string) error {
	store, cfg, err := openEnv()
	if err != nil {
		return err
	}
	styles := ui.DefaultStyles()
	reader := bufio.NewReader(os.Stdin)

	goals := store.TodaysGoals()
	if len(goals) == 0 {
		fmt.Println("No goals were set today.")
	} else {
		fmt.Println(styles.Title.Render("Today's goals"))
		for i, goal := range goals {
			fmt.Printf("  %d. %s\n", i+1, goal)
		}
		fmt.Print(styles.Prompt.Render("Which did you complete? (e.g. 1,3 or all): "))

		line, _ := reader.ReadString('\n')
		completed := parseGoalSelection(strings.TrimSpace(line), len(goals))
		if completed > 0 {
			earned, err := coins.NewBank(store, cfg.Rewards).AwardGoalsCompleted(completed)
			if err != nil {
				return err
			}
			logging.Routine("checked out with %d/%d goals completed", completed, len(goals))
			fmt.Printf("%s %s\n",
				styles.Success.Render(fmt.Sprintf("%d goals done.", completed)),
				styles.Coin.Render(fmt.Sprintf("+%d coins, balance %d", earned, store.Coins())))
		} else {
			fmt.Println("Nothing checked off. Tomorrow is another day.")
		}
	}

	if !byeShutdown {
		fmt.Println("Good night.")
		return nil
	}

	fmt.Print(styles.Warning.Render("Shut down now? (y/n): "))
	line, _ := reader.ReadString('\n')
	if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
		fmt.Println("Staying up. Good night.")
		return nil
	}
	return exec.Command("sudo", "shutdown", "now").Run()
}

// parseGoalSelection counts valid goal numbers in a comma-separated
// selection. "all" selects every goal; duplicates count once.
func parseGoalSelection(input string, total int) int {
	if input == "" {
		return 0
	}
	if strings.EqualFold(input, "all") {
		return total
	}

	seen := make(map[int]bool)
	for _, part := range strings.Split(input, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err == nil && n >= 1 && n <= total {
			seen[n] = true
		}
	}
	return len(seen)
}
