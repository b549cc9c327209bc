// Command strcalc evaluates strings of numbers and arithmetic.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := execute(newRootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, "strcalc:", err)
		os.Exit(1)
	}
}

// execute runs cmd and then closes the app. Post-run hooks are skipped when a
// command fails, so closing happens here.
func execute(cmd *cobra.Command, a *app) error {
	err := cmd.Execute()
	if cerr := a.close(); err == nil {
		err = cerr
	}
	return err
}
