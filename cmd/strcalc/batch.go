package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/strcalc/internal/batch"
	"github.com/zephyrtronium/strcalc/internal/input"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [flags] [FILE]",
		Short: "Evaluate one expression per line of a file",
		Long: `Batch evaluates each non-blank line of FILE, or of stdin when FILE is
omitted or -, in parallel. Results are written in input order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("jobs") {
				a.cfg.Batch.Jobs, _ = flags.GetInt("jobs")
			}
			if flags.Changed("format") {
				a.cfg.Batch.Format, _ = flags.GetString("format")
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			srcs, err := input.Gather(nil, input.Options{File: name, Lines: true, Stdin: cmd.InOrStdin()})
			if err != nil {
				return err
			}
			recs, err := batch.Run(cmd.Context(), srcs, batch.Options{
				Jobs:    a.cfg.Batch.Jobs,
				Prepare: a.prepare(),
				Logger:  a.log.Logger,
			})
			if err != nil {
				return err
			}
			if err := batch.Write(cmd.OutOrStdout(), a.cfg.Batch.Format, recs, a.cfg.Output.Decimals); err != nil {
				return err
			}
			if n := batch.Failed(recs); n > 0 {
				a.log.Warn("batch had failures", "failed", n, "total", len(recs))
				return fmt.Errorf("%d of %d expressions failed", n, len(recs))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntP("jobs", "j", 0, "expressions to evaluate at once (default GOMAXPROCS)")
	f.String("format", "text", "output format (text|json|msgpack)")
	f.Int("decimals", 6, "fraction digits to print for non-integer results")
	return cmd
}
