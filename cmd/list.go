package cmd

import (
	"fmt"

	"outlay/internal/cli"
	"outlay/internal/model"
	"outlay/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagListStatus   string
	flagListName     string
	flagListExpenses bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List trackers",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListStatus, "status", "", "Filter by status (in-progress or cleared)")
	listCmd.Flags().StringVar(&flagListName, "name", "", "Filter by name (substring match)")
	listCmd.Flags().BoolVar(&flagListExpenses, "expenses", false, "Show expense line items")
	rootCmd.AddCommand(listCmd)
}

func parseStatusFlag(s string) (model.Status, error) {
	switch s {
	case "in-progress", "in progress":
		return model.StatusInProgress, nil
	case "cleared":
		return model.StatusCleared, nil
	default:
		return "", fmt.Errorf("unknown status %q (use in-progress or cleared)", s)
	}
}

func runList(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	trackers, err := st.LoadTrackers()
	if err != nil {
		return err
	}

	if flagListStatus != "" {
		status, err := parseStatusFlag(flagListStatus)
		if err != nil {
			return err
		}
		trackers = pipeline.FilterByStatus(trackers, status)
	}
	if flagListName != "" {
		trackers = pipeline.FilterByName(trackers, flagListName)
	}

	if len(trackers) == 0 {
		fmt.Println("\n  No trackers found. Run `outlay add NAME` to create one.")
		return nil
	}

	currency := cfg.Appearance.Currency

	var rows [][]string
	for _, tr := range trackers {
		rows = append(rows, []string{
			cli.FormatDate(tr.Date),
			tr.Name,
			string(tr.Status),
			fmt.Sprintf("%d", len(tr.Expenses)),
			cli.FormatCents(tr.Total(), currency),
		})
		if flagListExpenses {
			for _, e := range tr.Expenses {
				rows = append(rows, []string{
					"",
					"  · " + e.Title,
					"",
					"",
					cli.FormatCents(e.AmountCents, currency),
				})
			}
		}
	}

	s := pipeline.Summarize(trackers)
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"",
		cli.FormatCount(s.Trackers, "tracker"),
		"",
		fmt.Sprintf("%d", s.Expenses),
		cli.FormatCents(s.TotalCents, currency),
	})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Name", "Status", "Expenses", "Total"},
		Rows:    rows,
	}))

	return nil
}
