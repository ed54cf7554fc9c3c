// Package review holds the code review documents produced by the review service: a pull request,
// its scores and the suggestions made for it.
package review

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNoSuggestions is returned when a review has no suggestion with code to diff.
var ErrNoSuggestions = errors.New("no suggestions with code")

// Review is a reviewed pull request as returned by the review service.
type Review struct {
	PRURL            string       `json:"pr_url"`
	Provider         string       `json:"provider,omitempty"`
	ProjectName      string       `json:"project_name,omitempty"`
	PRNumber         *int         `json:"pr_number,omitempty"`
	PRTitle          string       `json:"pr_title,omitempty"`
	PRAuthor         string       `json:"pr_author,omitempty"`
	SourceBranch     string       `json:"source_branch,omitempty"`
	TargetBranch     string       `json:"target_branch,omitempty"`
	Status           string       `json:"status,omitempty"`
	Score            *int         `json:"score,omitempty"`             // 0-100
	Effort           *int         `json:"effort,omitempty"`            // 1-5
	SecurityConcerns string       `json:"security_concerns,omitempty"` // markdown
	PRDescription    string       `json:"pr_description,omitempty"`    // YAML, see ParseDescription
	Suggestions      []Suggestion `json:"suggestions"`
}

// Suggestion is a single finding of a review, optionally with a code change.
type Suggestion struct {
	FilePath     string `json:"file_path"`
	LineStart    *int   `json:"line_start,omitempty"`
	LineEnd      *int   `json:"line_end,omitempty"`
	Severity     string `json:"severity"` // "error", "warning" or "info"
	Category     string `json:"category"` // e.g. "security", "best_practice"
	OriginalCode string `json:"original_code,omitempty"`
	ImprovedCode string `json:"improved_code,omitempty"`
	Suggestion   string `json:"suggestion"`
	Explanation  string `json:"explanation,omitempty"` // markdown
	Score        *int   `json:"score,omitempty"`       // 0-10
	ScoreWhy     string `json:"score_why,omitempty"`
}

// FieldError reports a required suggestion field that is missing.
type FieldError struct {
	Index int    // Index of the suggestion
	Field string // JSON name of the field
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("suggestion %d: missing %s", e.Index, e.Field)
}

// Parse parses a review from JSON and applies the defaults of the review service. All missing
// required fields are reported.
func Parse(data []byte) (*Review, error) {
	var r Review
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing review: %v", err)
	}

	var errs []error
	for i := range r.Suggestions {
		s := &r.Suggestions[i]
		s.setDefaults()
		if s.FilePath == "" {
			errs = append(errs, &FieldError{Index: i, Field: "file_path"})
		}
		if s.Suggestion == "" {
			errs = append(errs, &FieldError{Index: i, Field: "suggestion"})
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &r, nil
}

// Load reads and parses a review from a file.
func Load(path string) (*Review, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading review: %v", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

func (s *Suggestion) setDefaults() {
	if s.Severity == "" {
		s.Severity = "info"
	}
	if s.Category == "" {
		s.Category = "style"
	}
}

// Title returns the name of the project and the number of the pull request, or the title if
// neither is known.
func (r *Review) Title() string {
	switch {
	case r.ProjectName != "" && r.PRNumber != nil:
		return fmt.Sprintf("%s #%d", r.ProjectName, *r.PRNumber)
	case r.PRTitle != "":
		return r.PRTitle
	case r.PRURL != "":
		return r.PRURL
	default:
		return "Review"
	}
}
