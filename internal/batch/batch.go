// Package batch evaluates many expressions in parallel.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/strcalc"
	"github.com/zephyrtronium/strcalc/internal/input"
)

// Record is the outcome of one expression.
type Record struct {
	// Line is the line number of the expression in its input.
	Line  uint32  `json:"line" msgpack:"line"`
	Input string  `json:"input" msgpack:"input"`
	OK    bool    `json:"ok" msgpack:"ok"`
	Value float64 `json:"value" msgpack:"value"`
	// Kind is the name of the error kind when OK is false.
	Kind string `json:"kind,omitempty" msgpack:"kind,omitempty"`
	// Col is the column of the error in the normalized expression, or 0.
	Col uint32 `json:"col,omitempty" msgpack:"col,omitempty"`
}

// Options configure Run.
type Options struct {
	// Jobs limits the number of expressions evaluated at once. If it is not
	// positive, GOMAXPROCS is used.
	Jobs int
	// Prepare, if not nil, transforms each expression before evaluation.
	Prepare func(string) string
	// Logger receives a debug record per expression. May be nil.
	Logger *slog.Logger
}

// Run evaluates each source concurrently. The records are in the same order
// as srcs. Evaluation failures are reported in records, not as errors; the
// error is non-nil only if ctx is canceled or a position doesn't fit in a
// record.
func Run(ctx context.Context, srcs []input.Source, opts Options) ([]Record, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	recs := make([]Record, len(srcs))
	if len(srcs) == 0 {
		return recs, nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(srcs)))
	for i, src := range srcs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			text := src.Text
			if opts.Prepare != nil {
				text = opts.Prepare(text)
			}
			rec, err := evaluate(src, text)
			if err != nil {
				return fmt.Errorf("%s: %w", src.Name, err)
			}
			if opts.Logger != nil {
				opts.Logger.DebugContext(gctx, "evaluated", "source", src.Name, "ok", rec.OK, "kind", rec.Kind)
			}
			// Each goroutine writes only its own index.
			recs[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return recs, nil
}

func evaluate(src input.Source, text string) (Record, error) {
	line, err := safecast.Conv[uint32](src.Line)
	if err != nil {
		return Record{}, fmt.Errorf("line number: %w", err)
	}
	rec := Record{Line: line, Input: src.Text}
	o := strcalc.Evaluate(text)
	if o.OK() {
		rec.OK = true
		rec.Value = o.Value()
		return rec, nil
	}
	rec.Kind = o.Kind().String()
	var ie strcalc.InputError
	if errors.As(o.Err(), &ie) {
		col, err := safecast.Conv[uint32](ie.Pos())
		if err != nil {
			return Record{}, fmt.Errorf("column: %w", err)
		}
		rec.Col = col
	}
	return rec, nil
}

// Failed counts the records that did not evaluate successfully.
func Failed(recs []Record) int {
	n := 0
	for _, r := range recs {
		if !r.OK {
			n++
		}
	}
	return n
}
