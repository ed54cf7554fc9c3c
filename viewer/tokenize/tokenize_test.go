package tokenize

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"prdesk.io/viewer/align"
)

func TestLexerReconstructs(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		line string
	}{
		{"go", Lang("go"), `	s := fmt.Sprintf("%d items", len(xs)) // count`},
		{"go-filename", LangFromFilename("main.go"), `func (r *Row) Old() (Line, bool) {`},
		{"python", LangFromFilename("app/main.py"), `    return {"ok": True}  # done`},
		{"empty", Lang("go"), ""},
		{"only-spaces", Lang("go"), "   \t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lexer(tt.opt)(tt.line)
			if s := strings.Join(got, ""); s != tt.line {
				t.Errorf("tokens join to %q, want %q", s, tt.line)
			}
		})
	}
}

func TestLexerKeepsStringLiterals(t *testing.T) {
	got := Lexer(Lang("go"))(`s := "a+b"`)
	if !slices.Contains(got, `"a+b"`) {
		t.Errorf("tokens %q do not contain the string literal", got)
	}
}

func TestLexerFallback(t *testing.T) {
	line := "x += f(y)"
	want := align.SplitWords(line)
	for _, opt := range []Option{nil, Lang("no-such-language"), LangFromFilename("notes.zzqx")} {
		got := Lexer(opt)(line)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Lexer result is different (-want, +got):\n%s", diff)
		}
	}
}

func TestSplitSpaces(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{" a  b ", []string{" ", "a", "  ", "b", " "}},
		{"// a comment", []string{"//", " ", "a", " ", "comment"}},
	}
	for _, tt := range tests {
		got := splitSpaces(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("splitSpaces(%q) is different (-want, +got):\n%s", tt.in, diff)
		}
	}
}
