package cmd

import (
	"fmt"
	"os"

	"outlay/internal/cli"
	"outlay/internal/store"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Write all trackers as pretty-printed JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	trackers, err := st.LoadTrackers()
	if err != nil {
		return err
	}

	data, err := store.EncodeTrackersIndent(trackers)
	if err != nil {
		return fmt.Errorf("encoding trackers: %w", err)
	}
	data = append(data, '\n')

	if len(args) == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(args[0], data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", args[0], err)
	}
	fmt.Printf("  Exported %s to %s\n", cli.FormatCount(len(trackers), "tracker"), args[0])
	return nil
}
