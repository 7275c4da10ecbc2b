package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/heartmarshall/surveybot/internal/app"
	"github.com/heartmarshall/surveybot/internal/config"
	"github.com/heartmarshall/surveybot/pkg/ctxutil"
	"github.com/spf13/cobra"
)

// cli carries state shared by all subcommands. The app is opened lazily by
// the root pre-run hook so that commands like version need no config.
type cli struct {
	configPath string
	actorID    int64

	cfg *config.Config
	app *app.App
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	c := &cli{}
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)

	err := root.ExecuteContext(ctx)
	if c.app != nil {
		err = errors.Join(err, c.app.Close())
	}
	return err
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "surveyctl",
		Short:             "Manage surveys and run the survey bot",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.open,
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().Int64Var(&c.actorID, "actor", 0, "operator id recorded in the audit log (default: first admin id)")

	root.AddCommand(
		c.surveyCmd(),
		c.questionCmd(),
		c.statsCmd(),
		c.respondentsCmd(),
		c.answersCmd(),
		c.exportCmd(),
		c.auditCmd(),
		c.takeCmd(),
		c.botCmd(),
		versionCmd(),
	)
	return root
}

func (c *cli) open(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadFile(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.app = app.New(cfg, app.NewLogger(cfg.Log))
	return nil
}

// operator returns ctx carrying the acting operator's identity.
func (c *cli) operator(ctx context.Context) context.Context {
	actor := c.actorID
	if actor == 0 && len(c.cfg.Admin.IDs) > 0 {
		actor = c.cfg.Admin.IDs[0]
	}
	if actor != 0 {
		ctx = ctxutil.WithUserID(ctx, actor)
	}
	return ctxutil.WithAdmin(ctx, true)
}

// parseNumber converts a 1-based question number into an index.
func parseNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid question number %q", arg)
	}
	return n - 1, nil
}
