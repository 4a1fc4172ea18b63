package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	chatrender "github.com/bnema/peerchat-cli/internal/adapters/render/chat"
	"github.com/bnema/peerchat-cli/internal/application"
	"github.com/bnema/peerchat-cli/internal/domain"
)

func newRegisterCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "register <username>",
		Short: "Register this peer with the tracker and store the identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.service.Register(cmd.Context(), args[0])
			if err != nil {
				app.printNotice(cmd, application.NoticeForError(application.ActivityRegister, err, app.service.Now()))
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (peer id: %s)\n", profile.Username, profile.PeerID)
			return err
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored peer identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := app.loadProfile(cmd.Context(), false)
			if err != nil && !errors.Is(err, domain.ErrNotRegistered) {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), chatrender.Profile(profile))
			return err
		},
	}
}
