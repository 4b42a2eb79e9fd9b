package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resolution/internal/logging"
	"resolution/internal/service"
)

// installCmd registers the daily gate as a systemd user service so the
// routine greets the user at login.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Register the daily gate as a login service",
	RunE:  runInstall,
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the login service",
	RunE:  runUninstall,
}

func newRegistrar() (*service.Registrar, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home dir: %w", err)
	}
	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve own binary: %w", err)
	}
	return service.NewRegistrar(home, self), nil
}

func runInstall(cmd *cobra.Command, args []string) error {
	// Make sure the logger has a directory before unattended runs need it.
	if _, _, err := openEnv(); err != nil {
		return err
	}

	registrar, err := newRegistrar()
	if err != nil {
		return err
	}
	if err := registrar.Install(); err != nil {
		logging.Install("install failed: %v", err)
		return err
	}
	logging.Install("installed %s", service.UnitName)
	fmt.Printf("Installed %s.\n", service.UnitName)
	fmt.Println("The morning routine will start at your next login after the gate hour.")
	return nil
}

func runUninstall(cmd *cobra.Command, args []string) error {
	registrar, err := newRegistrar()
	if err != nil {
		return err
	}
	if !registrar.IsInstalled() {
		fmt.Println("The login service is not installed.")
		return nil
	}
	if err := registrar.Uninstall(); err != nil {
		logging.Install("uninstall failed: %v", err)
		return err
	}
	logging.Install("uninstalled %s", service.UnitName)
	fmt.Printf("Removed %s.\n", service.UnitName)
	return nil
}
