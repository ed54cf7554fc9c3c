package align

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want []LineGroup
	}{
		{
			name: "empty",
		},
		{
			name: "trailing-newline-dropped",
			x:    "a\nb\n",
			y:    "a\nb\n",
			want: []LineGroup{{Equal, []string{"a", "b"}}},
		},
		{
			name: "insert-only",
			y:    "a\nb",
			want: []LineGroup{{Insert, []string{"a", "b"}}},
		},
		{
			name: "delete-only",
			x:    "a\nb",
			want: []LineGroup{{Delete, []string{"a", "b"}}},
		},
		{
			name: "same-prefix",
			x:    "foo\nbar\n",
			y:    "foo\nbaz\n",
			want: []LineGroup{
				{Equal, []string{"foo"}},
				{Delete, []string{"bar"}},
				{Insert, []string{"baz"}},
			},
		},
		{
			name: "deletions-first",
			x:    "a\nb\nc\n",
			y:    "x\ny\n",
			want: []LineGroup{
				{Delete, []string{"a", "b", "c"}},
				{Insert, []string{"x", "y"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.x, tt.y)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Lines result is different (-want, +got):\n%s", diff)
			}
		})
	}
}
