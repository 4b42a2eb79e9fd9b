// Package config holds the resolution configuration, stored as YAML in the
// per-user config directory next to the state records.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside the config directory.
const FileName = "config.yaml"

// Config holds all resolution configuration.
type Config struct {
	// GateHour is the earliest local hour-of-day at which the daily gate
	// may launch the routine.
	GateHour int `yaml:"gate_hour"`

	// StartDate anchors the one-year bible reading plan (YYYY-MM-DD).
	StartDate string `yaml:"start_date"`

	// Rewards is the coin economy table.
	Rewards RewardsConfig `yaml:"rewards"`

	// Terminals is the ordered terminal-emulator preference list used by
	// the launcher. First installed entry wins.
	Terminals []TerminalConfig `yaml:"terminals"`

	// Logging controls the unattended file logger.
	Logging LoggingConfig `yaml:"logging"`
}

// RewardsConfig maps activities to coin awards.
type RewardsConfig struct {
	BibleChapter        int `yaml:"bible_chapter"`
	BibleCatchupChapter int `yaml:"bible_catchup_chapter"`
	LeetCodeEasy        int `yaml:"leetcode_easy"`
	LeetCodeMedium      int `yaml:"leetcode_medium"`
	LeetCodeHard        int `yaml:"leetcode_hard"`
	GoalCompleted       int `yaml:"goal_completed"`
}

// TerminalConfig describes one terminal emulator candidate: the binary to
// probe for and the flags that open it maximized and run a command inside.
// The application command is appended after Args.
type TerminalConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// LoggingConfig controls the category file logger used by unattended runs.
type LoggingConfig struct {
	DebugMode bool   `yaml:"debug_mode"`
	Level     string `yaml:"level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		GateHour:  6,
		StartDate: "2026-01-01",
		Rewards: RewardsConfig{
			BibleChapter:        5,
			BibleCatchupChapter: 3,
			LeetCodeEasy:        10,
			LeetCodeMedium:      25,
			LeetCodeHard:        50,
			GoalCompleted:       15,
		},
		Terminals: []TerminalConfig{
			{Command: "gnome-terminal", Args: []string{"--maximize", "--"}},
			{Command: "konsole", Args: []string{"--fullscreen", "-e"}},
			{Command: "xfce4-terminal", Args: []string{"--maximize", "-x"}},
			{Command: "kitty", Args: []string{"--start-as=maximized"}},
			{Command: "alacritty", Args: []string{"-e"}},
			{Command: "xterm", Args: []string{"-maximized", "-e"}},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the config from path, falling back to defaults when the file
// does not exist. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML to path, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides lets the environment override file values. Useful for
// trying a different gate hour without editing the config.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("RESOLUTION_GATE_HOUR"); v != "" {
		if hour, err := strconv.Atoi(v); err == nil {
			c.GateHour = hour
		}
	}
	if v := os.Getenv("RESOLUTION_START_DATE"); v != "" {
		c.StartDate = v
	}
	if v := os.Getenv("RESOLUTION_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Logging.DebugMode = debug
		}
	}
}

// Validate rejects configurations the rest of the program cannot honor.
func (c *Config) Validate() error {
	if c.GateHour < 0 || c.GateHour > 23 {
		return fmt.Errorf("gate_hour %d out of range 0-23", c.GateHour)
	}
	if _, err := time.ParseInLocation("2006-01-02", c.StartDate, time.Local); err != nil {
		return fmt.Errorf("start_date %q: %w", c.StartDate, err)
	}
	if len(c.Terminals) == 0 {
		return fmt.Errorf("terminals list must not be empty")
	}
	for i, term := range c.Terminals {
		if term.Command == "" {
			return fmt.Errorf("terminals[%d]: command must not be empty", i)
		}
	}
	return nil
}
