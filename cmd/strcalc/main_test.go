package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a configuration file that disables color plus any extra
// TOML, returning its path.
func writeConfig(t *testing.T, extra string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strcalc.toml")
	content := "[output]\ncolor = \"off\"\n" + extra
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, cfg, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd, a := newRootCmd()
	var out, errout bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errout)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config=" + cfg}, args...))
	err := execute(cmd, a)
	return out.String(), err
}

func TestRootEvaluates(t *testing.T) {
	cfg := writeConfig(t, "")
	out, err := run(t, cfg, "", "1,2,3")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)

	out, err = run(t, cfg, "", "1:2", "(1 + 2) * 4")
	require.NoError(t, err)
	assert.Equal(t, "3\n12\n", out)
}

func TestLeadingMinus(t *testing.T) {
	cfg := writeConfig(t, "")
	out, err := run(t, cfg, "", "--", "-1,2")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, err = run(t, cfg, "", "eval", "--", "-.5*2")
	require.NoError(t, err)
	assert.Equal(t, "-1\n", out)
}

func TestLogFileClosedOnFailure(t *testing.T) {
	cfg := writeConfig(t, "")
	logfile := filepath.Join(t.TempDir(), "strcalc.log")
	cmd, a := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--config=" + cfg, "--log-level=info", "--log-file=" + logfile, "5/0"})
	require.Error(t, execute(cmd, a))

	b, err := os.ReadFile(logfile)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"evaluated"`)
	// The file is already closed, so closing it again fails.
	assert.ErrorIs(t, a.close(), os.ErrClosed)
}

func TestEvalFailure(t *testing.T) {
	cfg := writeConfig(t, "")
	out, err := run(t, cfg, "", "eval", "5/0")
	require.Error(t, err)
	assert.Equal(t, "1 of 1 expressions failed", err.Error())
	assert.Equal(t, "error: Can't divide by zero.\n  5/0\n   ^\n", out)
}

func TestEvalNoCaret(t *testing.T) {
	cfg := writeConfig(t, "caret = false\n")
	out, err := run(t, cfg, "", "eval", "1+x")
	require.Error(t, err)
	assert.Equal(t, "error: Unsupported character \"x\".\n", out)
}

func TestEvalEcho(t *testing.T) {
	cfg := writeConfig(t, "")
	out, err := run(t, cfg, "", "eval", "--echo", "1+2*3")
	require.NoError(t, err)
	assert.Equal(t, "postfix: 1 2 3 * +\n7\n", out)
}

func TestEvalLinesFromStdin(t *testing.T) {
	cfg := writeConfig(t, "")
	out, err := run(t, cfg, "1,2\n\n3*4\n", "eval", "-n")
	require.NoError(t, err)
	assert.Equal(t, "3\n12\n", out)

	// Without -n, newlines separate numbers to add.
	out, err = run(t, cfg, "1,2\n\n3*4\n", "eval")
	require.NoError(t, err)
	assert.Equal(t, "15\n", out)
}

func TestEvalInFile(t *testing.T) {
	cfg := writeConfig(t, "")
	path := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(path, []byte("10/4\n"), 0o644))
	out, err := run(t, cfg, "", "eval", "--in", path, "--lines")
	require.NoError(t, err)
	assert.Equal(t, "2.5\n", out)
}

func TestDecimals(t *testing.T) {
	out, err := run(t, writeConfig(t, "decimals = 3\n"), "", "1/3")
	require.NoError(t, err)
	assert.Equal(t, "0.333\n", out)

	out, err = run(t, writeConfig(t, "decimals = 3\n"), "", "eval", "--decimals", "2", "1/3")
	require.NoError(t, err)
	assert.Equal(t, "0.33\n", out)
}

func TestFoldWidth(t *testing.T) {
	out, err := run(t, writeConfig(t, ""), "", "１，２")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	_, err = run(t, writeConfig(t, "[input]\nfold_width = false\n"), "", "１，２")
	assert.Error(t, err)
}

func TestTokens(t *testing.T) {
	cfg := writeConfig(t, "")
	out, err := run(t, cfg, "", "tokens", "1 + 2")
	require.NoError(t, err)
	assert.Equal(t, "Number:1@1\nOperator:+@2\nNumber:2@3\n", out)

	out, err = run(t, cfg, "", "tokens", "--format", "json", "(2)")
	require.NoError(t, err)
	var toks []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &toks))
	require.Len(t, toks, 3)
	assert.Equal(t, "ParenLeft", toks[0]["kind"])
	assert.Equal(t, 2.0, toks[1]["value"])
	assert.NotContains(t, toks[2], "value")

	out, err = run(t, cfg, "", "tokens", "1..2")
	require.Error(t, err)
	assert.Contains(t, out, "error: That is not a valid decimal number.")
}

func TestRPN(t *testing.T) {
	cfg := writeConfig(t, "")
	out, err := run(t, cfg, "", "rpn", "(1 + 2) * 3")
	require.NoError(t, err)
	assert.Equal(t, "normalized: (1+2)*3\npostfix: 1 2 + 3 *\n", out)

	_, err = run(t, cfg, "", "rpn", "(1+2")
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	cfg := writeConfig(t, "[batch]\nformat = \"json\"\n")
	out, err := run(t, cfg, "1,2\n5/0\n", "batch", "--jobs", "2")
	require.Error(t, err)
	assert.Equal(t, "1 of 2 expressions failed", err.Error())
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"line":1,"input":"1,2","ok":true,"value":3}`, lines[0])
	assert.JSONEq(t, `{"line":2,"input":"5/0","ok":false,"value":0,"kind":"DivisionByZero","col":2}`, lines[1])

	out, err = run(t, cfg, "2*3\n", "batch", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "1  2*3  6\n", out)
}

func TestBadConfig(t *testing.T) {
	_, err := run(t, writeConfig(t, "bogus = 1\n"), "", "1")
	assert.Error(t, err)

	_, err = run(t, writeConfig(t, ""), "", "--color", "sometimes", "1")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, writeConfig(t, ""), "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "strcalc "), "got %q", out)
}
