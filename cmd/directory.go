package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	chatrender "github.com/bnema/peerchat-cli/internal/adapters/render/chat"
	"github.com/bnema/peerchat-cli/internal/application"
	"github.com/bnema/peerchat-cli/internal/domain"
)

// refresh loads the profile, when there is one, so the view can hide self
// and mark joined channels. Partial failures return the view with the error.
func (a *app) refresh(cmd *cobra.Command) (application.DirectoryView, error) {
	ctx := cmd.Context()
	if _, err := a.loadProfile(ctx, false); err != nil {
		return application.DirectoryView{}, err
	}

	return runRefreshSpinner(ctx, cmd.ErrOrStderr(), a.service.Refresh)
}

func (a *app) printDirectory(cmd *cobra.Command, view application.DirectoryView, opts chatrender.RenderOptions, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		switch opts.Section {
		case chatrender.SectionPeers:
			return enc.Encode(view.Peers)
		case chatrender.SectionChannels:
			return enc.Encode(view.Channels)
		default:
			return enc.Encode(view)
		}
	}

	out, err := a.directoryRenderer(view, opts)
	if err != nil {
		return fmt.Errorf("render directory: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func newPeersCmd(app *app) *cobra.Command {
	var asJSON bool
	var showRouting bool

	cmd := &cobra.Command{
		Use:   "peers",
		Short: "List online peers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := app.refresh(cmd)
			if view.Peers == nil {
				if err == nil {
					err = fmt.Errorf("list peers: empty response")
				}
				app.printNotice(cmd, application.NoticeForError(application.ActivityRefresh, err, app.service.Now()))
				return err
			}
			if err != nil {
				app.logger.Warn().Err(err).Msg("partial refresh")
			}

			return app.printDirectory(cmd, view, chatrender.RenderOptions{
				Section:     chatrender.SectionPeers,
				ShowRouting: showRouting,
			}, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&showRouting, "routing", false, "Show the routing address of each peer")

	return cmd
}

func newChannelCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channel",
		Short: "List, create and join channels",
	}

	cmd.AddCommand(
		newChannelListCmd(app),
		newChannelCreateCmd(app),
		newChannelJoinCmd(app),
	)

	return cmd
}

func newChannelListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List channels and their members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := app.refresh(cmd)
			if view.Channels == nil {
				if err == nil {
					err = fmt.Errorf("list channels: empty response")
				}
				app.printNotice(cmd, application.NoticeForError(application.ActivityRefresh, err, app.service.Now()))
				return err
			}
			if err != nil {
				app.logger.Warn().Err(err).Msg("partial refresh")
			}

			return app.printDirectory(cmd, view, chatrender.RenderOptions{Section: chatrender.SectionChannels}, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newChannelCreateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a channel owned by this peer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runChannelAction(cmd, application.ActivityCreate, func(ctx context.Context) (domain.Notice, error) {
				return app.service.CreateChannel(ctx, args[0])
			})
		},
	}
}

func newChannelJoinCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "join <name>",
		Short: "Join a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runChannelAction(cmd, application.ActivityJoin, func(ctx context.Context) (domain.Notice, error) {
				return app.service.JoinChannel(ctx, args[0])
			})
		},
	}
}

// runChannelAction requires a stored identity, runs action and prints its
// notice. Failures are printed as a notice on stderr and returned.
func (a *app) runChannelAction(cmd *cobra.Command, activity application.Activity, action func(context.Context) (domain.Notice, error)) error {
	ctx := cmd.Context()
	if _, err := a.loadProfile(ctx, true); err != nil {
		return err
	}

	notice, err := action(ctx)
	if err != nil {
		a.printNotice(cmd, application.NoticeForError(activity, err, a.service.Now()))
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), notice.Text)
	return err
}

func (a *app) printNotice(cmd *cobra.Command, notice domain.Notice) {
	notice.At = notice.At.Local()
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), chatrender.Notice(notice))
}
