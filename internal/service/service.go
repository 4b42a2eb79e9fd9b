// Package service registers the daily gate with the systemd user session
// so it runs once per login without user intervention. The unit is a
// oneshot ordered after the graphical session and torn down with it.
package service

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// UnitName is the systemd user unit registered at install time.
const UnitName = "resolution-morning.service"

// ScriptName is the launcher script installed to the user's bin directory.
const ScriptName = "resolution-morning"

// Runner executes session-manager commands. Tests substitute a fake so no
// systemctl is needed.
type Runner interface {
	Run(name string, args ...string) error
}

// execRunner shells out, surfacing the tool's own error text on failure.
type execRunner struct{}

func (execRunner) Run(name string, args ...string) error {
	output, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Registrar installs and removes the login-time activation of the gate.
type Registrar struct {
	home     string
	execPath string
	runner   Runner
}

// NewRegistrar returns a registrar for the given home directory and
// application binary path.
func NewRegistrar(home, execPath string) *Registrar {
	return &Registrar{home: home, execPath: execPath, runner: execRunner{}}
}

// NewRegistrarWithRunner is NewRegistrar with an explicit runner, for tests.
func NewRegistrarWithRunner(home, execPath string, runner Runner) *Registrar {
	return &Registrar{home: home, execPath: execPath, runner: runner}
}

// BinDir returns the per-user executable directory.
func (r *Registrar) BinDir() string { return filepath.Join(r.home, ".local", "bin") }

// UnitDir returns the per-user systemd unit directory.
func (r *Registrar) UnitDir() string { return filepath.Join(r.home, ".config", "systemd", "user") }

// ScriptPath returns the installed launcher script path.
func (r *Registrar) ScriptPath() string { return filepath.Join(r.BinDir(), ScriptName) }

// UnitPath returns the installed unit file path.
func (r *Registrar) UnitPath() string { return filepath.Join(r.UnitDir(), UnitName) }

// scriptContent is the launcher script. It hands control straight to the
// gate subcommand; the gate decides whether anything is shown.
func (r *Registrar) scriptContent() string {
	return fmt.Sprintf("#!/bin/sh\nexec %s gate\n", r.execPath)
}

// unitContent is the declarative service definition: oneshot, ordered
// after the graphical session, torn down with it, with the environment a
// graphical program needs to find the display and user-local binaries.
func (r *Registrar) unitContent() string {
	return fmt.Sprintf(`[Unit]
Description=resolution daily morning routine
After=graphical-session.target
PartOf=graphical-session.target

[Service]
Type=oneshot
ExecStart=%s
WorkingDirectory=%s
Environment=DISPLAY=:0
Environment=PATH=%s:/usr/local/bin:/usr/bin:/bin

[Install]
WantedBy=graphical-session.target
`, r.ScriptPath(), r.home, r.BinDir())
}

// Install writes the launcher script and unit, reloads the session
// manager's unit cache and enables the unit. Steps run in order and the
// first failure aborts the rest; re-running overwrites prior files rather
// than erroring on "already exists".
func (r *Registrar) Install() error {
	if err := os.MkdirAll(r.BinDir(), 0o755); err != nil {
		return fmt.Errorf("create bin dir: %w", err)
	}
	if err := os.MkdirAll(r.UnitDir(), 0o755); err != nil {
		return fmt.Errorf("create unit dir: %w", err)
	}
	if err := os.WriteFile(r.ScriptPath(), []byte(r.scriptContent()), 0o755); err != nil {
		return fmt.Errorf("write launcher script: %w", err)
	}
	if err := os.WriteFile(r.UnitPath(), []byte(r.unitContent()), 0o644); err != nil {
		return fmt.Errorf("write service unit: %w", err)
	}
	if err := r.runner.Run("systemctl", "--user", "daemon-reload"); err != nil {
		return fmt.Errorf("reload unit cache: %w", err)
	}
	if err := r.runner.Run("systemctl", "--user", "enable", UnitName); err != nil {
		return fmt.Errorf("enable unit: %w", err)
	}
	return nil
}

// Uninstall disables the unit and removes the installed files. Missing
// files are not an error; a failing disable still removes the files so a
// broken half-install can always be cleaned up.
func (r *Registrar) Uninstall() error {
	disableErr := r.runner.Run("systemctl", "--user", "disable", UnitName)

	for _, path := range []string{r.UnitPath(), r.ScriptPath()} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}
	if err := r.runner.Run("systemctl", "--user", "daemon-reload"); err != nil {
		return fmt.Errorf("reload unit cache: %w", err)
	}
	return disableErr
}

// IsInstalled reports whether both the script and unit are present.
func (r *Registrar) IsInstalled() bool {
	if _, err := os.Stat(r.ScriptPath()); err != nil {
		return false
	}
	_, err := os.Stat(r.UnitPath())
	return err == nil
}
