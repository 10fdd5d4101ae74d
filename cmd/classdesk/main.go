package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/classdesk/internal/cmd"
	"github.com/gravitrone/classdesk/internal/config"
	"github.com/gravitrone/classdesk/internal/logging"
	"github.com/gravitrone/classdesk/internal/submit"
	"github.com/gravitrone/classdesk/internal/ui"
)

func main() {
	config.LoadDotEnv()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "classdesk",
		Short: "classdesk - classroom administration",
		Long:  "classdesk: browse classrooms, edit their basic info, and manage them from the terminal.",
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			// The TUI owns the terminal and logs to a file once config is loaded.
			if c == c.Root() {
				return nil
			}
			cmd.InitLogging(c.ErrOrStderr())
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(cmd.LoginCmd())
	root.AddCommand(cmd.ClassroomsCmd())
	root.AddCommand(cmd.DevServerCmd())
	return root
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
			fmt.Println("not logged in. run 'classdesk login' first.")
		}
		return err
	}

	closeLog, err := logging.InitFile(config.LogPath(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	slot := submit.NewSlot()
	app := ui.NewApp(cfg.NewClient(), cfg, slot, slog.Default())

	p := tea.NewProgram(app, tea.WithAltScreen())
	cancel := slot.Subscribe(func(r submit.Result, seq uint64) {
		p.Send(ui.ResultMsg{Result: r, Seq: seq})
	})
	defer cancel()

	slog.Info("tui started", "base_url", cfg.APIBaseURL(), "user", cfg.Username)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
