package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/cronexpand/pkg/config"
	"github.com/rcliao/cronexpand/pkg/cronexpr"
	"github.com/rcliao/cronexpand/pkg/logger"
	"github.com/rcliao/cronexpand/pkg/render"
)

// app carries what the persistent pre-run loads for the subcommands.
type app struct {
	cfgFile string
	cfg     *config.Config
	format  render.Format
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "cronexpand <minute> <hour> <day-of-month> <month> <day-of-week> <command>",
		Short: "Expand a cron expression into the values each field matches",
		Long: `Expand a cron expression into the values each field matches.

The expression may be given as one quoted argument or as separate arguments:

  cronexpand "*/15 0 1,15 * 1-5 /usr/bin/find"
  cronexpand */15 0 1,15 '*' 1-5 /usr/bin/find`,
		Args:              cobra.MinimumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.expand(cmd.OutOrStdout(), strings.Join(args, " "))
		},
	}
	// values such as "-1," must not be read as flags
	cmd.Flags().SetInterspersed(false)
	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./cronexpand.toml)")
	cobra.CheckErr(config.BindFlags(cmd))

	cmd.AddCommand(newCheckCmd(a), newFileCmd(a))
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.format, err = render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	if err := logger.InitLogger(logger.Environment(cfg.App.Environment), logger.LogLevel(cfg.Log.Level)); err != nil {
		return err
	}
	a.log = logger.Named(cmd.Name())
	return nil
}

func (a *app) expand(w io.Writer, input string) error {
	a.log.Debug("expanding expression", zap.String("expression", input), zap.String("format", string(a.format)))

	e, err := cronexpr.New(input)
	if err != nil {
		return err
	}
	return render.Write(w, a.format, e)
}
