package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/strcalc"
)

func newTokensCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [flags] expr",
		Short: "Print the tokens of an expression",
		Long:  `Tokens normalizes an expression and prints each token with its column in the normalized text.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to get format flag: %w", err)
			}
			text := a.prepare()(args[0])
			toks, err := strcalc.Tokenize(strcalc.Normalize(strings.TrimSpace(text)))
			if err != nil {
				return a.inspectFailed(cmd, text, err)
			}
			switch format {
			case "pretty":
				return formatTokensPretty(cmd.OutOrStdout(), toks)
			case "json":
				return formatTokensJSON(cmd.OutOrStdout(), toks)
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func newRPNCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rpn expr",
		Short: "Print the normalized and postfix forms of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := a.prepare()(args[0])
			norm := strcalc.Normalize(strings.TrimSpace(text))
			rpn, err := postfix(text)
			if err != nil {
				return a.inspectFailed(cmd, text, err)
			}
			p := a.printer(cmd.OutOrStdout())
			if err := p.Echo("normalized", norm); err != nil {
				return err
			}
			return p.Echo("postfix", rpn.String())
		},
	}
}

// inspectFailed reports an error from a pipeline stage.
func (a *app) inspectFailed(cmd *cobra.Command, text string, err error) error {
	if perr := a.printer(cmd.OutOrStdout()).Failure(text, err); perr != nil {
		return perr
	}
	return err
}

func formatTokensPretty(w io.Writer, toks strcalc.TokenStream) error {
	for _, tok := range toks {
		if _, err := fmt.Fprintln(w, tok); err != nil {
			return err
		}
	}
	return nil
}

type tokenJSON struct {
	Kind  string   `json:"kind"`
	Text  string   `json:"text"`
	Pos   int      `json:"pos"`
	Value *float64 `json:"value,omitempty"`
}

func formatTokensJSON(w io.Writer, toks strcalc.TokenStream) error {
	out := make([]tokenJSON, 0, len(toks))
	for _, tok := range toks {
		t := tokenJSON{Kind: tok.Kind.String(), Text: tok.Text(), Pos: tok.Pos}
		if tok.Kind == strcalc.TokenNumber {
			v := tok.Value
			t.Value = &v
		}
		out = append(out, t)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
