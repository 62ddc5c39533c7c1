package cmd

import (
	"fmt"

	"outlay/internal/log"
	"outlay/internal/tui"
	"outlay/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func runTUI(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	// The alternate screen owns stdout/stderr, so logs go to the --debug
	// file or nowhere
	logger := log.Discard()
	if flagDebug != "" {
		fileLogger, f, err := log.ToFile(flagDebug, "tui")
		if err != nil {
			return err
		}
		defer f.Close()
		logger = fileLogger
	}

	app := tui.NewApp(st, storePath(cfg), cfg.Appearance.Currency, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
