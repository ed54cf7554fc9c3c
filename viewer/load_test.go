package main

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"prdesk.io/viewer/config"
)

func TestLoadReview(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	oldPath := write("old.go", "x := 1\n")
	newPath := write("new.go", "x := 2\n")
	reviewPath := write("review.json", `{"pr_title": "T", "suggestions": [{"file_path": "a.go", "suggestion": "s"}]}`)

	r, err := loadReview([]string{oldPath, newPath})
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Suggestions[0].OriginalCode + r.Suggestions[0].ImprovedCode; got != "x := 1\nx := 2\n" {
		t.Errorf("suggestion code = %q", got)
	}

	r, err = loadReview([]string{reviewPath})
	if err != nil {
		t.Fatal(err)
	}
	if r.PRTitle != "T" {
		t.Errorf("PRTitle = %q, want %q", r.PRTitle, "T")
	}

	if _, err := loadReview([]string{oldPath, filepath.Join(dir, "missing")}); err == nil {
		t.Error("loadReview() with a missing file succeeded")
	}
	if _, err := loadReview(nil); err == nil || !strings.Contains(err.Error(), "got 0 arguments") {
		t.Errorf("loadReview(nil) error = %v", err)
	}
}

func TestTokenizer(t *testing.T) {
	line := `fmt.Println("hello")`
	tests := []struct {
		name    string
		cfg     config.Config
		path    string
		literal bool // whether the string literal is a single token
	}{
		{
			name: "words",
			cfg:  config.Config{Tokenizer: "words"},
			path: "main.go",
		},
		{
			name:    "lexer_from_filename",
			cfg:     config.Config{Tokenizer: "lexer"},
			path:    "main.go",
			literal: true,
		},
		{
			name:    "lexer_from_lang",
			cfg:     config.Config{Tokenizer: "lexer", Lang: "go"},
			path:    "notes.zzqx",
			literal: true,
		},
		{
			name: "lexer_without_match",
			cfg:  config.Config{Tokenizer: "lexer"},
			path: "notes.zzqx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenizer(&tt.cfg)(tt.path)(line)
			if strings.Join(got, "") != line {
				t.Errorf("tokens %q don't reconstruct %q", got, line)
			}
			if slices.Contains(got, `"hello"`) != tt.literal {
				t.Errorf("tokens = %q, want literal as one token: %v", got, tt.literal)
			}
		})
	}
}
