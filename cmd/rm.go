package cmd

import (
	"fmt"

	"outlay/internal/cli"
	"outlay/internal/model"
	"outlay/internal/pipeline"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm TRACKER [EXPENSE_ID]",
	Short: "Delete a tracker or a single expense",
	Long: "Delete a tracker and all its expenses, or just one expense when\n" +
		"EXPENSE_ID is given. TRACKER is an id or a unique name prefix.",
	Args: cobra.RangeArgs(1, 2),
	RunE: runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(_ *cobra.Command, args []string) error {
	logger, logFile, err := newLogger("rm")
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	st, cfg, err := openStore()
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

	if len(args) == 2 {
		var target *model.Expense
		for i := range tr.Expenses {
			if tr.Expenses[i].ID == args[1] {
				target = &tr.Expenses[i]
				break
			}
		}
		if target == nil {
			return fmt.Errorf("no expense %q in tracker %q", args[1], tr.Name)
		}

		trackers, _ = model.DeleteExpense(trackers, tr.ID, target.ID)
		if err := st.SaveTrackers(trackers); err != nil {
			return err
		}
		logger.Debug("deleted expense", "tracker", tr.ID, "expense", target.ID)
		fmt.Printf("  Removed %s (%s) from %s\n",
			target.Title,
			cli.FormatCents(target.AmountCents, cfg.Appearance.Currency),
			tr.Name)
		return nil
	}

	trackers, _ = model.DeleteTracker(trackers, tr.ID)
	if err := st.SaveTrackers(trackers); err != nil {
		return err
	}
	logger.Debug("deleted tracker", "id", tr.ID, "name", tr.Name, "expenses", len(tr.Expenses))
	fmt.Printf("  Removed tracker %s with %s\n",
		tr.Name,
		cli.FormatCount(len(tr.Expenses), "expense"))
	return nil
}
