package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"resolution/internal/storage"
)

// resetCmd wipes all state: coins, progress, goals, shop and config. Asks
// twice because there is no undo.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all progress, coins and configuration",
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	dir := configDir
	if dir == "" {
		var err error
		dir, err = storage.DefaultDir()
		if err != nil {
			return err
		}
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		fmt.Println("Nothing to reset.")
		return nil
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("This deletes everything under %s: coins, reading progress, goals, the shop.\n", dir)
	fmt.Print("Are you sure? (y/n): ")
	if !confirmed(reader) {
		fmt.Println("Reset cancelled.")
		return nil
	}
	fmt.Print("Really sure? There is no undo. (y/n): ")
	if !confirmed(reader) {
		fmt.Println("Reset cancelled.")
		return nil
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	fmt.Println("All state deleted. Run 'resolution init' to start fresh.")
	return nil
}

func confirmed(reader *bufio.Reader) bool {
	line, _ := reader.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
