package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/peerchat-cli/internal/adapters/tui"
	"github.com/bnema/peerchat-cli/internal/application"
	"github.com/bnema/peerchat-cli/internal/domain"
)

func newChatCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Open the interactive chat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if _, err := app.loadProfile(ctx, false); err != nil {
				return err
			}

			p := tea.NewProgram(
				tui.New(ctx, app.service),
				tea.WithAltScreen(),
				tea.WithContext(ctx),
			)

			poller := application.NewPoller(app.service, app.pollInterval, func(message domain.AttributedMessage) {
				p.Send(tui.Deliver(message))
			})
			stop := poller.Start(ctx)
			defer stop()

			_, err := p.Run()
			if err != nil && ctx.Err() == nil {
				return fmt.Errorf("run chat: %w", err)
			}
			return nil
		},
	}
}
