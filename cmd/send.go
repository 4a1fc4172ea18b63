package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/peerchat-cli/internal/application"
	"github.com/bnema/peerchat-cli/internal/domain"
)

var errSendTarget = errors.New("exactly one of --broadcast, --channel or --peer is required")

type sendFlags struct {
	broadcast bool
	channel   string
	peer      string
}

func (f sendFlags) command(message string) (application.SendCommand, error) {
	var cmd application.SendCommand
	selected := 0

	if f.broadcast {
		cmd.Mode = domain.TargetBroadcast
		selected++
	}
	if f.channel != "" {
		cmd.Mode = domain.TargetChannel
		cmd.TargetID = f.channel
		selected++
	}
	if f.peer != "" {
		cmd.Mode = domain.TargetPeer
		cmd.TargetID = f.peer
		selected++
	}
	if selected != 1 {
		return application.SendCommand{}, errSendTarget
	}

	cmd.Message = message
	return cmd, nil
}

func newSendCmd(app *app) *cobra.Command {
	var flags sendFlags

	cmd := &cobra.Command{
		Use:   "send [flags] <message>",
		Short: "Send one message to everyone, a channel or a peer",
		Example: `  peerchat send --broadcast "hello everyone"
  peerchat send --channel general "standup in 5"
  peerchat send --peer bob "hi bob"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			send, err := flags.command(strings.Join(args, " "))
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if _, err := app.loadProfile(ctx, true); err != nil {
				app.printNotice(cmd, application.NoticeForError(application.ActivitySend, err, app.service.Now()))
				return err
			}

			result, err := app.service.SendTo(ctx, send)
			if err != nil {
				app.printNotice(cmd, application.NoticeForError(application.ActivitySend, err, app.service.Now()))
				return err
			}

			app.logger.Info().
				Str("target_type", string(result.Request.Mode)).
				Str("target", result.Request.DisplayName).
				Msg("sent")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Notice.Text)
			return err
		},
	}

	cmd.Flags().BoolVar(&flags.broadcast, "broadcast", false, "Send to every peer")
	cmd.Flags().StringVar(&flags.channel, "channel", "", "Send to a channel")
	cmd.Flags().StringVar(&flags.peer, "peer", "", "Send to a peer (username, peer id or address)")
	cmd.MarkFlagsMutuallyExclusive("broadcast", "channel", "peer")

	return cmd
}
