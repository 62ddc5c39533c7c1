package cmd

import (
	"fmt"

	"outlay/internal/cli"
	"outlay/internal/model"
	"outlay/internal/pipeline"

	"github.com/spf13/cobra"
)

var spendCmd = &cobra.Command{
	Use:   "spend TRACKER TITLE AMOUNT",
	Short: "Add an expense to a tracker",
	Long: "Add an expense to a tracker. TRACKER is an id or a unique name prefix;\n" +
		"AMOUNT is a decimal like 10.50 (comma decimals accepted).",
	Args: cobra.ExactArgs(3),
	RunE: runSpend,
}

func init() {
	rootCmd.AddCommand(spendCmd)
}

func runSpend(_ *cobra.Command, args []string) error {
	cents, err := model.ParseAmountCents(args[2])
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[2], err)
	}

	e, err := model.NewExpense(args[1], cents)
	if err != nil {
		return err
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

	trackers, changed := model.AddExpense(trackers, tr.ID, e)
	if !changed {
		return fmt.Errorf("tracker %q not found", args[0])
	}
	if err := st.SaveTrackers(trackers); err != nil {
		return err
	}

	updated, _ := pipeline.MatchTracker(trackers, tr.ID)
	fmt.Printf("  %s +%s (%s now %s)\n",
		e.Title,
		cli.FormatCents(e.AmountCents, cfg.Appearance.Currency),
		tr.Name,
		cli.FormatCents(updated.Total(), cfg.Appearance.Currency))
	return nil
}
