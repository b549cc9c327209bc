package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/strcalc/internal/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, err := fmt.Fprintln(out, version.String(a.colored(out)))
			return err
		},
	}
}
