package service

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records every command and can fail selected ones.
type fakeRunner struct {
	calls   []string
	failOn  string
	failErr error
}

func (f *fakeRunner) Run(name string, args ...string) error {
	call := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, call)
	if f.failOn != "" && strings.Contains(call, f.failOn) {
		return f.failErr
	}
	return nil
}

func newTestRegistrar(t *testing.T) (*Registrar, *fakeRunner) {
	t.Helper()
	runner := &fakeRunner{}
	return NewRegistrarWithRunner(t.TempDir(), "/usr/local/bin/resolution", runner), runner
}

func TestInstall_WritesScriptAndUnit(t *testing.T) {
	r, runner := newTestRegistrar(t)
	require.NoError(t, r.Install())

	script, err := os.ReadFile(r.ScriptPath())
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\nexec /usr/local/bin/resolution gate\n", string(script))

	info, err := os.Stat(r.ScriptPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	unit, err := os.ReadFile(r.UnitPath())
	require.NoError(t, err)
	text := string(unit)
	assert.Contains(t, text, "Type=oneshot")
	assert.Contains(t, text, "After=graphical-session.target")
	assert.Contains(t, text, "PartOf=graphical-session.target")
	assert.Contains(t, text, "WantedBy=graphical-session.target")
	assert.Contains(t, text, "Environment=DISPLAY=:0")
	assert.Contains(t, text, fmt.Sprintf("Environment=PATH=%s:", r.BinDir()))
	assert.Contains(t, text, "ExecStart="+r.ScriptPath())

	assert.Equal(t, []string{
		"systemctl --user daemon-reload",
		"systemctl --user enable " + UnitName,
	}, runner.calls)
}

func TestInstall_Idempotent(t *testing.T) {
	r, _ := newTestRegistrar(t)
	require.NoError(t, r.Install())

	firstScript, err := os.ReadFile(r.ScriptPath())
	require.NoError(t, err)
	firstUnit, err := os.ReadFile(r.UnitPath())
	require.NoError(t, err)

	// A second install must overwrite rather than error, leaving content
	// byte-for-byte identical and exactly one unit file.
	require.NoError(t, r.Install())

	secondScript, err := os.ReadFile(r.ScriptPath())
	require.NoError(t, err)
	secondUnit, err := os.ReadFile(r.UnitPath())
	require.NoError(t, err)
	assert.Equal(t, firstScript, secondScript)
	assert.Equal(t, firstUnit, secondUnit)

	entries, err := os.ReadDir(r.UnitDir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, UnitName, entries[0].Name())
}

func TestInstall_FailFast(t *testing.T) {
	r, runner := newTestRegistrar(t)
	runner.failOn = "daemon-reload"
	runner.failErr = errors.New("dbus unavailable")

	err := r.Install()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reload unit cache")

	for _, call := range runner.calls {
		assert.NotContains(t, call, "enable", "enable must not run after a failed reload")
	}
}

func TestUninstall_RemovesEverything(t *testing.T) {
	r, runner := newTestRegistrar(t)
	require.NoError(t, r.Install())
	require.True(t, r.IsInstalled())

	runner.calls = nil
	require.NoError(t, r.Uninstall())

	assert.False(t, r.IsInstalled())
	assert.NoFileExists(t, r.ScriptPath())
	assert.NoFileExists(t, r.UnitPath())
	assert.Equal(t, []string{
		"systemctl --user disable " + UnitName,
		"systemctl --user daemon-reload",
	}, runner.calls)
}

func TestUninstall_ToleratesMissingFiles(t *testing.T) {
	r, _ := newTestRegistrar(t)
	require.NoError(t, r.Uninstall())
}

func TestIsInstalled(t *testing.T) {
	r, _ := newTestRegistrar(t)
	assert.False(t, r.IsInstalled())

	require.NoError(t, r.Install())
	assert.True(t, r.IsInstalled())

	// Half an install does not count.
	require.NoError(t, os.Remove(r.UnitPath()))
	assert.False(t, r.IsInstalled())
}
