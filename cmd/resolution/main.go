package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"resolution/cmd/resolution/morning"
	"resolution/internal/config"
	"resolution/internal/logging"
	"resolution/internal/storage"
)

var (
	// Global flags
	verbose   bool
	configDir string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "resolution",
	Short: "resolution - a morning routine that keeps your resolutions",
	Long: `resolution gates your day behind a short morning routine: set goals,
keep up with a one-year bible reading plan, solve a coding problem and
earn coins you can spend on rewards you define yourself.

Installed as a login service it runs automatically once per day, at the
earliest after the configured gate hour.

Run without arguments to start the morning routine now.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openEnv()
		if err != nil {
			return err
		}
		logging.Routine("morning routine started manually")
		return morning.Run(store, cfg)
	},
}

// openEnv loads the config and opens the state store. The category file
// logger is initialized as a side effect; its failure is not fatal because
// unattended runs must proceed without it.
func openEnv() (*storage.FileStore, *config.Config, error) {
	dir := configDir
	if dir == "" {
		var err error
		dir, err = storage.DefaultDir()
		if err != nil {
			return nil, nil, err
		}
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, nil, err
	}

	if err := logging.Initialize(dir, cfg.Logging.Level, cfg.Logging.DebugMode || verbose); err != nil && logger != nil {
		logger.Debug("file logging unavailable", zap.Error(err))
	}

	store := storage.NewFileStore(dir)
	return store, cfg, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Override the config directory (default ~/.config/resolution)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(gateCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(byeCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
