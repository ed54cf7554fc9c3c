// Package tokenize provides lexer based tokenizers for inline diff spans.
package tokenize

import (
	"strings"
	"unicode"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"prdesk.io/viewer/align"
)

type Option func(*tokenizer)

// Lang selects the lexer by name, e.g. "go" or "python".
func Lang(lang string) Option {
	return func(t *tokenizer) {
		if l := lexers.Get(lang); l != nil {
			t.lexer = l
		}
	}
}

// LangFromFilename selects the lexer matching filename.
func LangFromFilename(filename string) Option {
	return func(t *tokenizer) {
		if l := lexers.Match(filename); l != nil {
			t.lexer = l
		}
	}
}

// Lexer returns a tokenizer that splits lines along the tokens of a chroma lexer, so that string
// literals, numbers and identifiers change as one unit. Whitespace always forms its own tokens.
//
// Without a matching lexer, or for a line the lexer can't reproduce, the tokenizer behaves like
// align.SplitWords.
func Lexer(opts ...Option) align.Tokenizer {
	t := &tokenizer{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(t)
	}
	if t.lexer == nil {
		return align.SplitWords
	}
	return t.tokens
}

type tokenizer struct {
	lexer chroma.Lexer
}

func (t *tokenizer) tokens(line string) []string {
	it, err := t.lexer.Tokenise(nil, line)
	if err != nil {
		return align.SplitWords(line)
	}

	var ret []string
	n := 0
	for _, token := range it.Tokens() {
		v := token.Value
		// Lexers may add a line break to the end of their input.
		if rest := len(line) - n; len(v) > rest {
			v = v[:rest]
		}
		n += len(v)
		ret = append(ret, splitSpaces(v)...)
	}
	if strings.Join(ret, "") != line {
		return align.SplitWords(line)
	}
	return ret
}

// splitSpaces splits s into runs of whitespace and runs of everything else.
func splitSpaces(s string) []string {
	var ret []string
	start := 0
	prev := false
	for i, r := range s {
		space := unicode.IsSpace(r)
		if i > start && space != prev {
			ret = append(ret, s[start:i])
			start = i
		}
		prev = space
	}
	if start < len(s) {
		ret = append(ret, s[start:])
	}
	return ret
}
