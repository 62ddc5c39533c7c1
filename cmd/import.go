package cmd

import (
	"fmt"
	"os"

	"outlay/internal/cli"
	"outlay/internal/model"
	"outlay/internal/store"

	"github.com/spf13/cobra"
)

var flagMerge bool

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Load trackers from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().BoolVar(&flagMerge, "merge", false,
		"merge with existing trackers instead of replacing them")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	logger, logFile, err := newLogger("import")
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	incoming, err := store.DecodeTrackers(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	trackers := incoming
	if flagMerge {
		existing, err := st.LoadTrackers()
		if err != nil {
			return err
		}
		trackers = mergeTrackers(existing, incoming)
	}
	model.SortByDate(trackers)

	if err := st.SaveTrackers(trackers); err != nil {
		return err
	}
	logger.Debug("import saved",
		"file", args[0], "incoming", len(incoming), "total", len(trackers), "merge", flagMerge)

	verb := "Replaced store with"
	if flagMerge {
		verb = "Merged in"
	}
	fmt.Printf("  %s %s (%s total)\n",
		verb, cli.FormatCount(len(incoming), "tracker"), cli.FormatCount(len(trackers), "tracker"))
	return nil
}

// mergeTrackers overlays incoming trackers onto the existing list.
// An incoming tracker with a known ID replaces that entry wholesale;
// new IDs are appended.
func mergeTrackers(existing, incoming []model.Tracker) []model.Tracker {
	out := make([]model.Tracker, len(existing))
	copy(out, existing)

	index := make(map[string]int, len(out))
	for i, t := range out {
		index[t.ID] = i
	}

	for _, t := range incoming {
		if i, ok := index[t.ID]; ok {
			out[i] = t
			continue
		}
		index[t.ID] = len(out)
		out = append(out, t)
	}
	return out
}
