// Package cmd implements the outlay CLI commands.
package cmd

import (
	"os"

	"outlay/internal/config"
	"outlay/internal/log"
	"outlay/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagData  string
	flagDebug string
)

var rootCmd = &cobra.Command{
	Use:   "outlay",
	Short: "Track groups of expenses from your terminal",
	Long: "outlay keeps named trackers of expenses in a local database.\n" +
		"Run it bare for the interactive screen, or use the subcommands for scripting.",
	RunE: runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagData, "data", "d", "", "Database file (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagDebug, "debug", "", "Append debug logs to this file")
}

// openStore loads the config and opens the tracker database, honoring
// the --data override. The caller closes the store.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}

	path := flagData
	if path == "" {
		path = config.DataPath(cfg)
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, cfg, err
	}
	return st, cfg, nil
}

// storePath resolves the database path the same way openStore does.
func storePath(cfg config.Config) string {
	if flagData != "" {
		return flagData
	}
	return config.DataPath(cfg)
}

// newLogger builds the logger for CLI commands: stderr, or the --debug
// file when set. The returned closer is nil for stderr logging.
func newLogger(component string) (*log.Logger, *os.File, error) {
	if flagDebug != "" {
		return log.ToFile(flagDebug, component)
	}
	cfg := log.DefaultConfig()
	cfg.Component = component
	return log.New(cfg), nil, nil
}
