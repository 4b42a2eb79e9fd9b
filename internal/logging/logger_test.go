package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetForTest() {
	CloseAll()
	logsDir = ""
	enabled = false
	logLevel = LevelInfo
}

func TestGet_NoOpBeforeInitialize(t *testing.T) {
	resetForTest()

	l := Get(CategoryGate)
	// Must not panic or write anywhere.
	l.Info("harmless")
	l.Error("still harmless")
}

func TestGateCategoryAlwaysActive(t *testing.T) {
	resetForTest()
	dir := t.TempDir()
	if err := Initialize(dir, "info", false); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer resetForTest()

	Gate("decision=%s", "launched")
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	if err != nil {
		t.Fatalf("logs dir missing: %v", err)
	}
	var found string
	for _, e := range entries {
		if strings.Contains(e.Name(), "gate") {
			found = filepath.Join(dir, "logs", e.Name())
		}
	}
	if found == "" {
		t.Fatal("expected a gate log file")
	}
	data, err := os.ReadFile(found)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "decision=launched") {
		t.Errorf("gate log missing entry, got: %s", data)
	}
}

func TestRoutineCategorySilencedWithoutDebug(t *testing.T) {
	resetForTest()
	dir := t.TempDir()
	if err := Initialize(dir, "info", false); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer resetForTest()

	Routine("should not appear")
	CloseAll()

	entries, _ := os.ReadDir(filepath.Join(dir, "logs"))
	for _, e := range entries {
		if strings.Contains(e.Name(), "routine") {
			t.Errorf("routine log written despite debug off: %s", e.Name())
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	resetForTest()
	dir := t.TempDir()
	if err := Initialize(dir, "warn", true); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer resetForTest()

	l := Get(CategoryInstall)
	l.Info("filtered out")
	l.Warn("kept")
	CloseAll()

	entries, _ := os.ReadDir(filepath.Join(dir, "logs"))
	for _, e := range entries {
		if !strings.Contains(e.Name(), "install") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, "logs", e.Name()))
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(string(data), "filtered out") {
			t.Error("info entry written at warn level")
		}
		if !strings.Contains(string(data), "kept") {
			t.Error("warn entry missing")
		}
		return
	}
	t.Fatal("expected an install log file")
}
