package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/strcalc/internal/config"
	"github.com/zephyrtronium/strcalc/internal/display"
	"github.com/zephyrtronium/strcalc/internal/input"
	"github.com/zephyrtronium/strcalc/internal/logging"
	"github.com/zephyrtronium/strcalc/internal/version"
)

// app is the state shared by every command, built before the command runs.
type app struct {
	cfg config.Config
	log *logging.Logger
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{log: logging.Discard()}
	root := &cobra.Command{
		Use:   "strcalc [flags] [expr...]",
		Short: "Evaluate strings of numbers",
		Long: `strcalc evaluates arithmetic expressions in which commas, colons, and
newlines separate numbers to be added. + - * / and parentheses work as usual.

Put -- before an expression that starts with -, e.g. strcalc -- -1,2.`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: a.setup,
		RunE:              a.runEval,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.String("config", "", "path to strcalc.toml (default: search upward from the working directory)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.String("log-level", "warn", "log level (debug|info|warn|error)")
	pf.String("log-file", "", "also append JSON logs to this file")

	addEvalFlags(root)
	root.AddCommand(
		newEvalCmd(a),
		newTokensCmd(a),
		newRPNCmd(a),
		newBatchCmd(a),
		newTUICmd(a),
		newVersionCmd(a),
	)
	return root, a
}

// setup loads configuration, applies flag overrides, and creates the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	path, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, used, err := config.Resolve(path, wd)
	if err != nil {
		return err
	}
	if flags.Changed("color") {
		cfg.Output.Color, _ = flags.GetString("color")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.Log.File, _ = flags.GetString("log-file")
	}
	if flags.Lookup("decimals") != nil && flags.Changed("decimals") {
		cfg.Output.Decimals, _ = flags.GetInt("decimals")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	l, err := logging.New(logging.Options{Level: level, Stderr: cmd.ErrOrStderr(), File: cfg.Log.File})
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, l
	a.log.Debug("configured", "config", used, "color", cfg.Output.Color, "decimals", cfg.Output.Decimals)
	return nil
}

// close releases resources held by the app, whether or not the command
// succeeded.
func (a *app) close() error {
	return a.log.Close()
}

// prepare returns the transformation applied to input before evaluation.
func (a *app) prepare() func(string) string {
	if a.cfg.Input.FoldWidth {
		return input.Fold
	}
	return func(s string) string { return s }
}

// colored decides whether to color output written to w.
func (a *app) colored(w io.Writer) bool {
	f, _ := w.(*os.File)
	return display.ColorEnabled(a.cfg.Output.Color, f)
}

func (a *app) printer(w io.Writer) *display.Printer {
	return display.NewPrinter(w, a.cfg.Output.Decimals, a.cfg.Output.Caret, a.colored(w))
}
