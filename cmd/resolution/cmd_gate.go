package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"resolution/internal/gate"
	"resolution/internal/launcher"
	"resolution/internal/logging"
)

// gateCmd is the unattended entry point run by the login service. It must
// never block session startup or write to a console nobody is watching, so
// every failure is logged and swallowed.
var gateCmd = &cobra.Command{
	Use:   "gate",
	Short: "Evaluate the daily gate and launch the routine if it is due",
	Long: `Evaluates the once-per-day launch decision: skip before the configured
gate hour, skip if the routine already ran today, otherwise open the
morning routine full screen in the first installed terminal emulator.

This is what the login service runs; invoking it by hand is harmless.`,
	RunE: runGate,
}

func runGate(cmd *cobra.Command, args []string) error {
	store, cfg, err := openEnv()
	if err != nil {
		logging.Gate("gate aborted: %v", err)
		return nil
	}

	decision := gate.Evaluate(time.Now(), cfg.GateHour, store)
	logging.Gate("decision: %s", decision)
	if decision != gate.Launched {
		return nil
	}

	self, err := os.Executable()
	if err != nil {
		logging.Gate("cannot resolve own binary: %v", err)
		return nil
	}

	chosen, err := launcher.FromConfig(cfg.Terminals).Launch([]string{self})
	switch {
	case err != nil:
		logging.Gate("launch failed (terminal %q): %v", chosen, err)
	case chosen == "":
		logging.Gate("launched directly, no terminal emulator found")
	default:
		logging.Gate("launched in %s", chosen)
	}
	return nil
}
