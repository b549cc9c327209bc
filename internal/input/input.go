// Package input gathers expressions from arguments, files, and stdin.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Fold applies compatibility normalization so that full-width digits,
// separators, and operators read as their ASCII forms. E.g. "１，２" folds to
// "1,2".
func Fold(s string) string {
	return norm.NFKC.String(s)
}

// Source is one expression along with where it came from.
type Source struct {
	// Name identifies the expression in messages, e.g. "arg 1" or
	// "exprs.txt:3".
	Name string
	// Line is the line number of the expression in its file, or 0 for
	// arguments and whole files.
	Line int
	Text string
}

// Options control Gather.
type Options struct {
	// File is a path to read expressions from, or "-" for stdin.
	File string
	// Lines treats each non-blank line of a file as a separate expression.
	// Otherwise a whole file is one expression, with newlines acting as
	// separators.
	Lines bool
	// Stdin is read when File is "-", or when there are no arguments and no
	// file.
	Stdin io.Reader
}

// Gather collects expressions from args followed by the configured file.
func Gather(args []string, opts Options) ([]Source, error) {
	var srcs []Source
	for i, arg := range args {
		srcs = append(srcs, Source{Name: "arg " + strconv.Itoa(i+1), Text: arg})
	}
	var (
		r    io.Reader
		name string
	)
	switch {
	case opts.File != "" && opts.File != "-":
		f, err := os.Open(opts.File)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, name = f, opts.File
	case opts.File == "-", len(args) == 0:
		if opts.Stdin == nil {
			return srcs, nil
		}
		r, name = opts.Stdin, "stdin"
	}
	if r == nil {
		return srcs, nil
	}
	if !opts.Lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		return append(srcs, Source{Name: name, Text: strings.TrimPrefix(string(b), bom)}), nil
	}
	lines, err := ReadLines(r, name)
	if err != nil {
		return nil, err
	}
	return append(srcs, lines...), nil
}

// bom is the UTF-8 byte order mark that some editors write at the start of a
// file.
const bom = "\uFEFF"

// ReadLines reads each non-blank line of r as an expression. A byte order
// mark at the start of r is dropped.
func ReadLines(r io.Reader, name string) ([]Source, error) {
	var srcs []Source
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if n == 1 {
			line = strings.TrimPrefix(line, bom)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		srcs = append(srcs, Source{Name: name + ":" + strconv.Itoa(n), Line: n, Text: line})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return srcs, nil
}
