package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/cronexpand/pkg/compat"
	"github.com/rcliao/cronexpand/pkg/cronexpr"
)

func newCheckCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <expression...>",
		Short: "Validate every field of an expression",
		Long: `Validate every field of an expression and report all failing fields at once.

The schedule is also checked against the grammar of stock cron daemons. A
mismatch is a warning unless --strict is set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			e, err := cronexpr.New(input)
			if err != nil {
				return err
			}
			if err := e.Validate(); err != nil {
				return err
			}

			if err := compat.Standard(e); err != nil {
				if strict {
					return err
				}
				a.log.Debug("standard parser rejected schedule", zap.String("schedule", e.Schedule()), zap.Error(err))
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a stock cron daemon would reject the schedule")
	return cmd
}
