package align

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want []Row
	}{
		{
			name: "empty",
		},
		{
			name: "identical",
			x:    "foo\nbar\n",
			y:    "foo\nbar\n",
			want: []Row{
				Unchanged{OldNo: 1, NewNo: 1, Text: "foo"},
				Unchanged{OldNo: 2, NewNo: 2, Text: "bar"},
			},
		},
		{
			name: "pure-insertion",
			y:    "a\nb",
			want: []Row{
				Added{Line{1, "a"}},
				Added{Line{2, "b"}},
			},
		},
		{
			name: "pure-deletion",
			x:    "a\nb",
			want: []Row{
				Removed{Line{1, "a"}},
				Removed{Line{2, "b"}},
			},
		},
		{
			name: "non-adjacent",
			x:    "a\nb\nc\n",
			y:    "b\nc\nd\n",
			want: []Row{
				Removed{Line{1, "a"}},
				Unchanged{OldNo: 2, NewNo: 1, Text: "b"},
				Unchanged{OldNo: 3, NewNo: 2, Text: "c"},
				Added{Line{3, "d"}},
			},
		},
		{
			name: "blank-lines",
			x:    "a\n\n",
			y:    "a\n\n",
			want: []Row{
				Unchanged{OldNo: 1, NewNo: 1, Text: "a"},
				Unchanged{OldNo: 2, NewNo: 2, Text: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.x, tt.y)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff result is different (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestDiffReplacementBalanced(t *testing.T) {
	rows := Diff("foo", "bar")
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2: %v", len(rows), rows)
	}

	old, ok := rows[0].(ChangedOld)
	if !ok {
		t.Fatalf("rows[0] is %T, want ChangedOld", rows[0])
	}
	neu, ok := rows[1].(ChangedNew)
	if !ok {
		t.Fatalf("rows[1] is %T, want ChangedNew", rows[1])
	}
	if old.No != 1 || neu.No != 1 {
		t.Errorf("line numbers are %d and %d, want 1 and 1", old.No, neu.No)
	}

	for _, spans := range [][]WordSpan{old.Spans, neu.Spans} {
		if spans == nil {
			t.Fatalf("missing spans")
		}
		if got := join(spans, SpanSame); got != "" {
			t.Errorf("same text is %q, want empty", got)
		}
		if got := join(spans, SpanRemoved); got != "foo" {
			t.Errorf("removed text is %q, want %q", got, "foo")
		}
		if got := join(spans, SpanAdded); got != "bar" {
			t.Errorf("added text is %q, want %q", got, "bar")
		}
	}
}

func TestDiffReplacementUnbalanced(t *testing.T) {
	rows := Diff("a\nb", "x")
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3: %v", len(rows), rows)
	}

	old, ok := rows[0].(ChangedOld)
	if !ok || old.Line != (Line{1, "a"}) || old.Spans == nil {
		t.Errorf("rows[0] = %#v, want ChangedOld for line 1 with spans", rows[0])
	}
	neu, ok := rows[1].(ChangedNew)
	if !ok || neu.Line != (Line{1, "x"}) || neu.Spans == nil {
		t.Errorf("rows[1] = %#v, want ChangedNew for line 1 with spans", rows[1])
	}
	want := ChangedOld{Line: Line{2, "b"}}
	if diff := cmp.Diff(Row(want), rows[2]); diff != "" {
		t.Errorf("rows[2] is different (-want, +got):\n%s", diff)
	}
}

func TestDiffProperties(t *testing.T) {
	tests := []struct {
		name string
		x, y string
	}{
		{"func-edit", "func f() int {\n\treturn 0\n}\n", "func f() int {\n\tx := 1\n\treturn x\n}\n"},
		{"trailing-newline-added", "a\nb", "a\nb\n"},
		{"interleaved", "a\nb\nc\nd\ne\n", "a\nB\nc\nD\nE\nF\ne\n"},
		{"all-replaced", "one\ntwo\nthree", "uno\ndos"},
		{"crlf", "a\r\nb\r\n", "a\r\nc\r\n"},
		{"unicode", "größe := 1\n", "größe := 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Diff(tt.x, tt.y)
			if err := Validate(rows); err != nil {
				t.Fatalf("Validate() = %v", err)
			}

			x, y := Reconstruct(rows)
			if want := strings.TrimSuffix(tt.x, "\n"); x != want {
				t.Errorf("old text is %q, want %q", x, want)
			}
			if want := strings.TrimSuffix(tt.y, "\n"); y != want {
				t.Errorf("new text is %q, want %q", y, want)
			}

			for i, r := range rows {
				switch r.(type) {
				case Unchanged, Removed, Added:
					if Spans(r) != nil {
						t.Errorf("rows[%d] (%T) has spans", i, r)
					}
				}
			}
		})
	}
}

func TestDiffIdentical(t *testing.T) {
	x := "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n"
	rows := Diff(x, x)
	if got, want := len(rows), strings.Count(x, "\n"); got != want {
		t.Fatalf("got %d rows, want %d", got, want)
	}
	for i, r := range rows {
		u, ok := r.(Unchanged)
		if !ok {
			t.Fatalf("rows[%d] is %T, want Unchanged", i, r)
		}
		if u.OldNo != u.NewNo || u.OldNo != i+1 {
			t.Errorf("rows[%d] has line numbers %d/%d, want %d", i, u.OldNo, u.NewNo, i+1)
		}
	}
}

func TestDiffWithTokenizer(t *testing.T) {
	// A tokenizer that breaks its contract is replaced by SplitWords.
	broken := func(string) []string { return []string{"nope"} }
	rows := Diff("a b", "a c", WithTokenizer(broken))
	spans := Spans(rows[0])
	if got := join(spans, SpanSame); got != "a " {
		t.Errorf("same text is %q, want %q", got, "a ")
	}
	if got := join(spans, SpanRemoved); got != "b" {
		t.Errorf("removed text is %q, want %q", got, "b")
	}
	if got := join(spans, SpanAdded); got != "c" {
		t.Errorf("added text is %q, want %q", got, "c")
	}
}

func TestCount(t *testing.T) {
	rows := Diff("a\nb\nc\n", "a\nx\nc\nd\n")
	want := Stats{Unchanged: 2, Removed: 1, Added: 2}
	got := Count(rows)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Count result is different (-want, +got):\n%s", diff)
	}
	if !got.Changed() {
		t.Errorf("Changed() = false, want true")
	}
	if Count(Diff("a", "a")).Changed() {
		t.Errorf("Changed() = true for identical inputs")
	}
}

func join(spans []WordSpan, kind SpanKind) string {
	var sb strings.Builder
	for _, s := range spans {
		if s.Kind == kind {
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}
