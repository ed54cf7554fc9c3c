package align

import (
	"strings"
	"unicode"

	"znkr.io/diff"
)

// Tokenizer splits a line into tokens. Concatenating the tokens must yield the line again.
type Tokenizer func(line string) []string

// Words diffs two lines token by token and returns the spans that make up both lines. The
// SpanSame and SpanRemoved spans concatenate to x, the SpanSame and SpanAdded spans to y.
// Adjacent spans never share a kind.
//
// A nil tokenizer, or one that doesn't reproduce its input, is replaced by SplitWords.
func Words(x, y string, tok Tokenizer) []WordSpan {
	xs, ys := tokens(x, tok), tokens(y, tok)

	spans := make([]WordSpan, 0, max(len(xs), len(ys)))
	for _, edit := range diff.Edits(xs, ys) {
		var s WordSpan
		switch edit.Op {
		case diff.Match:
			s = WordSpan{SpanSame, edit.X}
		case diff.Delete:
			s = WordSpan{SpanRemoved, edit.X}
		case diff.Insert:
			s = WordSpan{SpanAdded, edit.Y}
		}
		if n := len(spans); n > 0 && spans[n-1].Kind == s.Kind {
			spans[n-1].Text += s.Text
			continue
		}
		spans = append(spans, s)
	}
	return spans
}

func tokens(line string, tok Tokenizer) []string {
	if tok == nil {
		return SplitWords(line)
	}
	toks := tok(line)
	if strings.Join(toks, "") != line {
		return SplitWords(line)
	}
	// Empty tokens would only produce empty spans.
	ret := toks[:0:0]
	for _, t := range toks {
		if t != "" {
			ret = append(ret, t)
		}
	}
	return ret
}

type class int

const (
	classWord class = iota
	classSpace
	classBracket
	classPunct
)

func classify(r rune) class {
	switch {
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	case unicode.IsSpace(r):
		return classSpace
	case strings.ContainsRune("()[]{}'\"", r):
		return classBracket
	default:
		return classPunct
	}
}

// SplitWords is the default Tokenizer. It splits a line into runs of word characters, runs of
// whitespace and runs of punctuation. Brackets and quotes always form a token of their own.
func SplitWords(line string) []string {
	var toks []string
	start := 0
	prev := classWord
	for i, r := range line {
		c := classify(r)
		if i > start && (c != prev || c == classBracket) {
			toks = append(toks, line[start:i])
			start = i
		}
		prev = c
	}
	if start < len(line) {
		toks = append(toks, line[start:])
	}
	return toks
}
