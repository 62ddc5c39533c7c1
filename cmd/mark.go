package cmd

import (
	"fmt"

	"outlay/internal/model"
	"outlay/internal/pipeline"

	"github.com/spf13/cobra"
)

var markCmd = &cobra.Command{
	Use:   "mark TRACKER",
	Short: "Toggle a tracker between in progress and cleared",
	Args:  cobra.ExactArgs(1),
	RunE:  runMark,
}

func init() {
	rootCmd.AddCommand(markCmd)
}

func runMark(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	trackers, err := st.LoadTrackers()
	if err != nil {
		return err
	}

	tr, err := pipeline.MatchTracker(trackers, args[0])
	if err != nil {
		return err
	}

	trackers, _ = model.ToggleStatus(trackers, tr.ID)
	if err := st.SaveTrackers(trackers); err != nil {
		return err
	}

	updated, _ := pipeline.MatchTracker(trackers, tr.ID)
	fmt.Printf("  %s is now %s\n", updated.Name, updated.Status)
	return nil
}
