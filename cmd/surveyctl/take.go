package main

import (
	"io"
	"strings"

	"github.com/heartmarshall/surveybot/internal/app"
	"github.com/spf13/cobra"
)

type userFlags struct {
	id       int64
	username string
}

func (f *userFlags) bind(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.id, "user-id", 0, "id of the user at the console")
	cmd.Flags().StringVar(&f.username, "username", "", "username of the user at the console")
	_ = cmd.MarkFlagRequired("user-id")
}

func (c *cli) takeCmd() *cobra.Command {
	var user userFlags
	cmd := &cobra.Command{
		Use:   "take [survey-id]",
		Short: "Take a survey at the console",
		Long: `Take a survey at the console. Type the number of an option to choose it,
or /cancel, /surveys, /stats and /quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := "/start"
			if len(args) > 0 {
				start += " " + args[0]
			}
			in := io.MultiReader(strings.NewReader(start+"\n"), cmd.InOrStdin())

			return c.app.RunBot(cmd.Context(), in, cmd.OutOrStdout(), app.BotOptions{
				UserID:   user.id,
				Username: user.username,
			})
		},
	}
	user.bind(cmd)
	return cmd
}

func (c *cli) botCmd() *cobra.Command {
	var (
		user        userFlags
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Run the console bot with export sweeps and metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := metricsAddr
			if !cmd.Flags().Changed("metrics-addr") {
				addr = c.cfg.Metrics.Addr
			}
			return c.app.RunBot(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), app.BotOptions{
				UserID:      user.id,
				Username:    user.username,
				MetricsAddr: addr,
			})
		},
	}
	user.bind(cmd)
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (default from config)")
	return cmd
}
