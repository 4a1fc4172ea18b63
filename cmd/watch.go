package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	chatrender "github.com/bnema/peerchat-cli/internal/adapters/render/chat"
	"github.com/bnema/peerchat-cli/internal/application"
	"github.com/bnema/peerchat-cli/internal/domain"
)

func newWatchCmd(app *app) *cobra.Command {
	var duration time.Duration
	var refreshEvery time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print incoming messages until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stopSignals := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stopSignals()
			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}

			profile, err := app.loadProfile(ctx, false)
			if err != nil {
				return err
			}

			// Attribution needs a directory snapshot before the first tick.
			app.refreshDirectory(ctx, cmd)

			var mu sync.Mutex
			out := cmd.OutOrStdout()
			poller := application.NewPoller(app.service, app.pollInterval, func(message domain.AttributedMessage) {
				mu.Lock()
				defer mu.Unlock()
				_, _ = fmt.Fprintln(out, chatrender.TimedMessage(message, profile.Username, app.now()))
			})

			stop := poller.Start(ctx)
			defer stop()

			var refreshTicks <-chan time.Time
			if refreshEvery > 0 {
				ticker := time.NewTicker(refreshEvery)
				defer ticker.Stop()
				refreshTicks = ticker.C
			}

			for {
				select {
				case <-ctx.Done():
					return nil
				case <-refreshTicks:
					app.refreshDirectory(ctx, cmd)
				}
			}
		},
	}

	cmd.Flags().DurationVar(&duration, "for", 0, "Stop after this long (default: until interrupted)")
	cmd.Flags().DurationVar(&refreshEvery, "refresh", 0, "Also refresh the peer directory at this interval")

	return cmd
}

// refreshDirectory rebuilds the address directory, reporting failures on
// stderr without stopping the caller.
func (a *app) refreshDirectory(ctx context.Context, cmd *cobra.Command) {
	if _, err := a.service.Refresh(ctx); err != nil && ctx.Err() == nil {
		a.logger.Warn().Err(err).Msg("refresh failed")
		a.printNotice(cmd, application.NoticeForError(application.ActivityRefresh, err, a.service.Now()))
	}
}
