package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chromatic-tools/datapoint-cli/internal/api"
	"github.com/chromatic-tools/datapoint-cli/internal/cmd"
	"github.com/chromatic-tools/datapoint-cli/internal/config"
	"github.com/chromatic-tools/datapoint-cli/internal/ui"
)

func main() {
	root := &cobra.Command{
		Use:   "datapoint",
		Short: "datapoint - tag curation for record stores",
		Long:  "Datapoint CLI: browse records, edit their tags inline, and keep the remote store in sync.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(cmd.LoginCmd())
	root.AddCommand(cmd.RetagCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI() error {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
				fmt.Println("not logged in. run 'datapoint login' first.")
				return err
			}
			cfg = nil
		} else {
			return err
		}
	}

	apiKey := ""
	baseURL := ""
	if cfg != nil {
		apiKey = cfg.APIKey
		baseURL = cfg.ServerURL
	}
	client := api.NewDefaultClient(apiKey)
	if baseURL != "" {
		client = api.NewClient(baseURL, apiKey)
	}
	app := ui.NewApp(client, cfg)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
