package align

import (
	"fmt"
	"strings"
)

// Option configures Diff.
type Option func(*differ)

// WithTokenizer sets the tokenizer used for inline spans. The default is SplitWords.
func WithTokenizer(tok Tokenizer) Option {
	return func(d *differ) {
		d.tok = tok
	}
}

type differ struct {
	tok Tokenizer
}

// Diff computes the rows of a unified diff view from x (old) to y (new).
//
// Identical inputs produce only Unchanged rows. Diff panics if the line diff doesn't cover both
// inputs; that is a bug in the line diff, not a property of the input.
func Diff(x, y string, opts ...Option) []Row {
	d := differ{tok: SplitWords}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&d)
	}

	rows := Build(Pair(Lines(x, y)), d.tok)

	if err := Validate(rows); err != nil {
		panic(fmt.Errorf("align.Diff: validate failed with %v", err))
	}
	if rx, ry := Reconstruct(rows); rx != strings.TrimSuffix(x, "\n") || ry != strings.TrimSuffix(y, "\n") {
		panic(fmt.Errorf("align.Diff: rows do not reconstruct the input"))
	}
	return rows
}

// Reconstruct returns the old and the new text covered by rows. Lines are joined with "\n", there
// is no trailing line break.
func Reconstruct(rows []Row) (x, y string) {
	var xs, ys []string
	for _, r := range rows {
		if l, ok := r.Old(); ok {
			xs = append(xs, l.Text)
		}
		if l, ok := r.New(); ok {
			ys = append(ys, l.Text)
		}
	}
	return strings.Join(xs, "\n"), strings.Join(ys, "\n")
}
