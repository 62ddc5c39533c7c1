package cmd

import (
	"fmt"

	"outlay/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", config.DataDir(cfg))
	fmt.Printf("    Database:       %s\n", storePath(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:    %s\n", cfg.Appearance.Theme)
	fmt.Printf("    Currency: %s\n", cfg.Appearance.Currency)
	fmt.Println()

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	savedAt, err := st.SavedAt()
	if err != nil {
		return err
	}
	if savedAt.IsZero() {
		fmt.Println("  Last save: never")
	} else {
		fmt.Printf("  Last save: %s\n", savedAt.Local().Format("2006-01-02 15:04:05"))
	}

	return nil
}
