package cmd

import (
	"fmt"
	"sort"

	"outlay/internal/cli"
	"outlay/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Aggregated totals across all trackers",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	trackers, err := st.LoadTrackers()
	if err != nil {
		return err
	}

	if len(trackers) == 0 {
		fmt.Println("\n  No trackers yet.")
		fmt.Println("  Add one with: outlay add NAME")
		return nil
	}

	stats := pipeline.Summarize(trackers)
	currency := cfg.Appearance.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("OUTLAY SUMMARY  %s", cli.FormatCount(stats.Trackers, "tracker"))))
	fmt.Println()

	clearedShare := 0.0
	if stats.TotalCents > 0 {
		clearedShare = float64(stats.ClearedCents) / float64(stats.TotalCents)
	}

	rows := [][]string{
		{"Trackers", cli.FormatNumber(int64(stats.Trackers))},
		{"Expenses", cli.FormatNumber(int64(stats.Expenses))},
		{"---"},
		{"In Progress", fmt.Sprintf("%s  (%s)",
			cli.FormatCents(stats.InProgressCents, currency),
			cli.FormatCount(stats.InProgress, "tracker"))},
		{"Cleared", fmt.Sprintf("%s  (%s)",
			cli.FormatCents(stats.ClearedCents, currency),
			cli.FormatCount(stats.Cleared, "tracker"))},
		{"Cleared Share", cli.FormatPercent(clearedShare)},
		{"---"},
		{"Total", cli.FormatCents(stats.TotalCents, currency)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	// Ranking by total, largest first
	ranked := make([]rankedTracker, 0, len(trackers))
	var maxTotal int64
	for _, t := range trackers {
		total := t.Total()
		if total > maxTotal {
			maxTotal = total
		}
		ranked = append(ranked, rankedTracker{name: t.Name, total: total})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].total > ranked[j].total
	})

	fmt.Println()
	for _, r := range ranked {
		bar := cli.RenderHorizontalBar(float64(r.total), float64(maxTotal), 24)
		fmt.Printf("  %-20s %12s  %s\n",
			truncate(r.name, 20), cli.FormatCents(r.total, currency), bar)
	}

	// Spend shape in list order, closest tracker first
	if len(trackers) > 1 {
		shape := make([]float64, len(trackers))
		for i, t := range trackers {
			shape[i] = float64(t.Total())
		}
		fmt.Printf("\n  Spend by tracker: %s\n", cli.RenderSparkline(shape))
	}

	fmt.Println()
	return nil
}

type rankedTracker struct {
	name  string
	total int64
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}
