package cmd

import (
	"fmt"
	"time"

	"outlay/internal/cli"
	"outlay/internal/model"

	"github.com/spf13/cobra"
)

var flagAddDate string

var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a new tracker",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Tracker date as YYYY-MM-DD (default: today)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	var date time.Time
	if flagAddDate != "" {
		var err error
		date, err = time.ParseInLocation("2006-01-02", flagAddDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: use YYYY-MM-DD", flagAddDate)
		}
	}

	tr, err := model.NewTracker(args[0], date)
	if err != nil {
		return err
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	trackers, err := st.LoadTrackers()
	if err != nil {
		return err
	}

	trackers = model.AddTracker(trackers, tr)
	if err := st.SaveTrackers(trackers); err != nil {
		return err
	}

	fmt.Printf("  Added tracker %s (%s)  id=%s\n", tr.Name, cli.FormatDate(tr.Date), tr.ID)
	return nil
}
