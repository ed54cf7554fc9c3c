package review

import (
	"fmt"
	"regexp"
	"strings"

	"prdesk.io/viewer/align"
)

// HasCode reports whether the suggestion comes with a code change.
func (s *Suggestion) HasCode() bool {
	return s.OriginalCode != "" || s.ImprovedCode != ""
}

// Rows diffs the original code against the improved code. A missing side is treated as empty.
func (s *Suggestion) Rows(opts ...align.Option) []align.Row {
	return align.Diff(s.OriginalCode, s.ImprovedCode, opts...)
}

// Location returns the file path of the suggestion together with its line range.
func (s *Suggestion) Location() string {
	switch {
	case s.LineStart == nil:
		return s.FilePath
	case s.LineEnd == nil || *s.LineEnd == *s.LineStart:
		return fmt.Sprintf("%s:%d", s.FilePath, *s.LineStart)
	default:
		return fmt.Sprintf("%s:%d-%d", s.FilePath, *s.LineStart, *s.LineEnd)
	}
}

// IsCritical reports whether the suggestion is an error or scored at least 9.
func (s *Suggestion) IsCritical() bool {
	return strings.EqualFold(s.Severity, "error") || (s.Score != nil && *s.Score >= 9)
}

// Critical returns the critical suggestions of the review.
func (r *Review) Critical() []Suggestion {
	var ret []Suggestion
	for _, s := range r.Suggestions {
		if s.IsCritical() {
			ret = append(ret, s)
		}
	}
	return ret
}

// WithCode returns the suggestions that come with a code change, or ErrNoSuggestions if there
// are none.
func (r *Review) WithCode() ([]Suggestion, error) {
	var ret []Suggestion
	for _, s := range r.Suggestions {
		if s.HasCode() {
			ret = append(ret, s)
		}
	}
	if len(ret) == 0 {
		return nil, ErrNoSuggestions
	}
	return ret, nil
}

// Group is a list of suggestions sharing a category.
type Group struct {
	Name        string // Formatted category
	Suggestions []Suggestion
}

// ByCategory groups suggestions by their formatted category. Groups are ordered by the first
// appearance of their category; the order of suggestions within a group is kept.
func (r *Review) ByCategory() []Group {
	var groups []Group
	index := make(map[string]int)
	for _, s := range r.Suggestions {
		name := FormatCategory(s.Category)
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, Group{Name: name})
		}
		groups[i].Suggestions = append(groups[i].Suggestions, s)
	}
	return groups
}

var wordStart = regexp.MustCompile(`\b\w`)

// FormatCategory turns a category into a title: "best_practice" becomes "Best Practice". An
// empty category is a best practice.
func FormatCategory(cat string) string {
	if cat == "" {
		cat = "best_practice"
	}
	cat = strings.ReplaceAll(cat, "_", " ")
	return wordStart.ReplaceAllStringFunc(cat, strings.ToUpper)
}
