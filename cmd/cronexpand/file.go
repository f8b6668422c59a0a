package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/cronexpand/pkg/crontab"
	"github.com/rcliao/cronexpand/pkg/render"
)

func newFileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "file <path>",
		Short: "Expand every expression of a crontab-style file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := crontab.Load(args[0])
			if err != nil {
				return err
			}

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			failed := 0
			for i, entry := range file.Entries {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "# line %d: %s\n", entry.Line, entry.Source)

				err := entry.Err
				if err == nil {
					err = render.Write(out, a.format, entry.Expr)
				}
				if err != nil {
					failed++
					fmt.Fprintf(errOut, "line %d: %v\n", entry.Line, err)
				}
			}

			a.log.Info("expanded crontab",
				zap.String("path", args[0]),
				zap.Int("entries", len(file.Entries)),
				zap.Int("failed", failed),
			)
			if failed > 0 {
				return fmt.Errorf("%d of %d entries failed", failed, len(file.Entries))
			}
			return nil
		},
	}
}
