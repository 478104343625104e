package cmd

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/egbakou/eventtocommand/internal/app"
	"github.com/egbakou/eventtocommand/internal/config"
	"github.com/egbakou/eventtocommand/internal/journal"
	"github.com/egbakou/eventtocommand/internal/logging"
	"github.com/egbakou/eventtocommand/internal/messaging"
	"github.com/egbakou/eventtocommand/internal/tui"
	"github.com/egbakou/eventtocommand/internal/tui/theme"
)

var rootCmd = &cobra.Command{
	Use:   "eventtocommand",
	Short: "EventToCommand - a behavior pattern sample",
	Long: `EventToCommand is a sample terminal application demonstrating the
behavior pattern: bridging a control's named events to view-model
commands through an attachable EventToCommandBehavior.`,
	RunE: func(c *cobra.Command, args []string) error {
		return run(c.Context())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func run(ctx context.Context) error {
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	theme.Apply(cfg.Theme)

	journalPath, err := journal.DefaultPath()
	if err != nil {
		return err
	}
	store, err := journal.Open(ctx, journalPath)
	if err != nil {
		return err
	}

	a := app.New(ctx, cfg, messaging.NewCenter(), store)
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			slog.Error("error closing application", "error", closeErr)
		}
	}()

	model, err := tui.InitialModel(ctx, a)
	if err != nil {
		return fmt.Errorf("failed to compose page: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
