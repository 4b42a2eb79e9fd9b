package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resolution/internal/config"
	"resolution/internal/storage"
)

// initCmd materializes the config directory with default files so they can
// be edited before the first run.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config directory with default settings",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := configDir
	if dir == "" {
		var err error
		dir, err = storage.DefaultDir()
		if err != nil {
			return err
		}
	}

	configPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config already exists at %s\n", configPath)
	} else {
		if err := config.DefaultConfig().Save(configPath); err != nil {
			return err
		}
		fmt.Printf("Wrote default config to %s\n", configPath)
	}

	store := storage.NewFileStore(dir)
	if _, ok := store.Load(); !ok {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		state := storage.DailyState{
			CompletedLeetCodeIDs: []int{},
			StartDate:            cfg.StartDate,
		}
		if err := store.Save(state); err != nil {
			return err
		}
		fmt.Printf("Initialized state in %s\n", dir)
	}

	if len(store.ShopItems()) == 0 {
		for _, seed := range []struct {
			name string
			cost int
		}{
			{"Fancy coffee", 30},
			{"Movie night", 100},
			{"Lazy Saturday morning", 250},
		} {
			if _, err := store.AddShopItem(seed.name, seed.cost); err != nil {
				return err
			}
		}
		fmt.Println("Seeded the reward shop with a few starter items; edit them with 'resolution shop'.")
	}

	fmt.Println("Run 'resolution install' to register the login service.")
	return nil
}
