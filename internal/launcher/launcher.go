// Package launcher presents the interactive application full-screen in
// whichever terminal emulator the host has installed. Candidates are
// capability descriptors iterated first-match-wins; a host with none of
// them falls back to running the application directly in the caller's
// terminal context.
package launcher

import (
	"fmt"
	"os"
	"os/exec"

	"resolution/internal/config"
)

// Candidate describes one terminal emulator: a presence probe and an
// invocation that opens it maximized running the given application command.
type Candidate struct {
	Name   string
	Probe  func() bool
	Invoke func(app []string) error
}

// Launcher selects and runs a terminal candidate.
type Launcher struct {
	candidates []Candidate

	// direct runs the application in the current terminal context when no
	// candidate probes true.
	direct func(app []string) error
}

// New returns a launcher over an explicit candidate list. Used by tests;
// production callers use FromConfig.
func New(candidates []Candidate, direct func(app []string) error) *Launcher {
	return &Launcher{candidates: candidates, direct: direct}
}

// FromConfig builds a launcher from the configured terminal preference
// list. Order in the config is the preference order.
func FromConfig(terminals []config.TerminalConfig) *Launcher {
	candidates := make([]Candidate, 0, len(terminals))
	for _, term := range terminals {
		term := term
		candidates = append(candidates, Candidate{
			Name: term.Command,
			Probe: func() bool {
				_, err := exec.LookPath(term.Command)
				return err == nil
			},
			Invoke: func(app []string) error {
				args := append(append([]string{}, term.Args...), app...)
				cmd := exec.Command(term.Command, args...)
				if err := cmd.Start(); err != nil {
					return fmt.Errorf("start %s: %w", term.Command, err)
				}
				// The emulator owns the session from here; the oneshot
				// activation must not hold on to it.
				return cmd.Process.Release()
			},
		})
	}
	return New(candidates, runDirect)
}

// Launch runs app through the first available candidate. It returns the
// chosen candidate name, or "" when the direct fallback was used. Once a
// candidate is chosen there is no retry against later candidates: a chosen
// emulator that fails to start is the result.
func (l *Launcher) Launch(app []string) (string, error) {
	for _, candidate := range l.candidates {
		if !candidate.Probe() {
			continue
		}
		return candidate.Name, candidate.Invoke(app)
	}
	return "", l.direct(app)
}

// runDirect executes the application in the caller's terminal context.
func runDirect(app []string) error {
	if len(app) == 0 {
		return fmt.Errorf("empty application command")
	}
	cmd := exec.Command(app[0], app[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
