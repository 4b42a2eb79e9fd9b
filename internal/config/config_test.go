package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.GateHour != 6 {
		t.Errorf("expected GateHour=6, got %d", cfg.GateHour)
	}
	if cfg.Rewards.LeetCodeHard != 50 {
		t.Errorf("expected LeetCodeHard=50, got %d", cfg.Rewards.LeetCodeHard)
	}
	if len(cfg.Terminals) == 0 {
		t.Fatal("expected a non-empty terminal preference list")
	}
	if cfg.Terminals[0].Command != "gnome-terminal" {
		t.Errorf("expected gnome-terminal first, got %s", cfg.Terminals[0].Command)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := DefaultConfig()
	cfg.GateHour = 7
	cfg.Rewards.GoalCompleted = 20

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.GateHour != 7 {
		t.Errorf("expected GateHour=7, got %d", loaded.GateHour)
	}
	if loaded.Rewards.GoalCompleted != 20 {
		t.Errorf("expected GoalCompleted=20, got %d", loaded.Rewards.GoalCompleted)
	}
}

func TestConfig_MissingFileUsesDefaults(t *testing.T) {
	loaded, err := Load(filepath.Join(t.TempDir(), "nope", FileName))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.GateHour != 6 {
		t.Errorf("expected default GateHour=6, got %d", loaded.GateHour)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RESOLUTION_GATE_HOUR", "8")
	t.Setenv("RESOLUTION_START_DATE", "2027-01-01")

	loaded, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.GateHour != 8 {
		t.Errorf("expected GateHour=8 from env, got %d", loaded.GateHour)
	}
	if loaded.StartDate != "2027-01-01" {
		t.Errorf("expected StartDate override, got %s", loaded.StartDate)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GateHour = 24
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for gate_hour 24")
	}

	cfg = DefaultConfig()
	cfg.StartDate = "January 1st"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for bad start_date")
	}

	cfg = DefaultConfig()
	cfg.Terminals = nil
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty terminal list")
	}
}

func TestConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("gate_hour: [nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed config")
	}
}
