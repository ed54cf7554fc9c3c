package review

import "fmt"

// FromFiles returns a review with a single suggestion that changes the old file into the new one.
// It lets plain file diffs go through the same rendering as reviews.
func FromFiles(oldPath, oldText, newPath, newText string) *Review {
	text := "Changes to " + newPath
	if oldPath != newPath {
		text = fmt.Sprintf("Changes from %s to %s", oldPath, newPath)
	}
	s := Suggestion{
		FilePath:     newPath,
		OriginalCode: oldText,
		ImprovedCode: newText,
		Suggestion:   text,
	}
	s.setDefaults()
	return &Review{
		Provider:    "local",
		PRTitle:     text,
		Status:      "completed",
		Suggestions: []Suggestion{s},
	}
}
