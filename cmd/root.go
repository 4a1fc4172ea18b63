package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := newApp()

	rootCmd := &cobra.Command{
		Use:           "peerchat",
		Short:         "Terminal client for a tracker-based peer-to-peer chat",
		Long:          "peerchat registers you with a local peer web application, discovers peers and channels through its tracker, and exchanges broadcast, channel and direct messages from the terminal.",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.wire()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return app.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.flags.configFile, "config", "", "Config file (default ~/.peerchat/config.toml)")
	flags.String("base-url", "", "Base URL of the local peer web application")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("log-file", "", "Write logs to this file")
	flags.BoolVar(&app.flags.debug, "debug", false, "Write debug logs to ~/.peerchat/debug.log")
	app.bindFlags(flags)

	rootCmd.AddCommand(
		newVersionCmd(),
		newRegisterCmd(app),
		newWhoamiCmd(app),
		newPeersCmd(app),
		newChannelCmd(app),
		newSendCmd(app),
		newWatchCmd(app),
		newChatCmd(app),
	)

	return rootCmd
}
