package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/strcalc"
	"github.com/zephyrtronium/strcalc/internal/input"
)

func newEvalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [flags] [expr...]",
		Short: "Evaluate expressions and print their results",
		Long: `Eval evaluates each argument as an expression. With --in, or with no
arguments, expressions are also read from a file or stdin. Put -- before
an expression that starts with -, e.g. strcalc eval -- -.5*2.`,
		Args: cobra.ArbitraryArgs,
		RunE: a.runEval,
	}
	addEvalFlags(cmd)
	return cmd
}

func addEvalFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("in", "", "input file, or - for stdin (default stdin if no args given)")
	f.BoolP("lines", "n", false, "evaluate separate input lines as separate expressions")
	f.Int("decimals", 6, "fraction digits to print for non-integer results")
	f.Bool("echo", false, "print the postfix form of each expression before its result")
}

func (a *app) runEval(cmd *cobra.Command, args []string) error {
	inname, err := cmd.Flags().GetString("in")
	if err != nil {
		return fmt.Errorf("failed to get in flag: %w", err)
	}
	lines, err := cmd.Flags().GetBool("lines")
	if err != nil {
		return fmt.Errorf("failed to get lines flag: %w", err)
	}
	echo, err := cmd.Flags().GetBool("echo")
	if err != nil {
		return fmt.Errorf("failed to get echo flag: %w", err)
	}
	srcs, err := input.Gather(args, input.Options{File: inname, Lines: lines, Stdin: cmd.InOrStdin()})
	if err != nil {
		return err
	}

	p := a.printer(cmd.OutOrStdout())
	prep := a.prepare()
	failed := 0
	for _, src := range srcs {
		text := prep(src.Text)
		if echo {
			if rpn, err := postfix(text); err == nil {
				if err := p.Echo("postfix", rpn.String()); err != nil {
					return err
				}
			}
		}
		o := strcalc.Evaluate(text)
		a.log.Info("evaluated", "source", src.Name, "outcome", o.String())
		if !o.OK() {
			failed++
		}
		if err := p.Outcome(text, o); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(srcs))
	}
	return nil
}

// postfix runs the pipeline up to conversion.
func postfix(text string) (strcalc.TokenStream, error) {
	toks, err := strcalc.Tokenize(strcalc.Normalize(strings.TrimSpace(text)))
	if err != nil {
		return nil, err
	}
	return strcalc.Postfix(toks)
}
