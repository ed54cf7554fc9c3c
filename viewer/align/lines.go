package align

import (
	"strings"

	"znkr.io/diff"
	"znkr.io/diff/textdiff"
)

// Lines diffs x and y line by line and returns the line groups that transform x into y.
//
// The groups partition both inputs in order. Lines lose their trailing line break, so a text
// ending in a newline doesn't produce an extra empty line. In a run of changes without matching
// lines in between, all deletions come before all insertions.
func Lines(x, y string) []LineGroup {
	edits := textdiff.Edits(x, y, textdiff.IndentHeuristic())

	var groups []LineGroup
	var dels, ins []string
	flush := func() {
		if len(dels) > 0 {
			groups = append(groups, LineGroup{Op: Delete, Lines: dels})
			dels = nil
		}
		if len(ins) > 0 {
			groups = append(groups, LineGroup{Op: Insert, Lines: ins})
			ins = nil
		}
	}

	for _, edit := range edits {
		line := strings.TrimSuffix(edit.Line, "\n")
		switch edit.Op {
		case diff.Match:
			flush()
			if n := len(groups); n > 0 && groups[n-1].Op == Equal {
				groups[n-1].Lines = append(groups[n-1].Lines, line)
			} else {
				groups = append(groups, LineGroup{Op: Equal, Lines: []string{line}})
			}
		case diff.Delete:
			dels = append(dels, line)
		case diff.Insert:
			ins = append(ins, line)
		}
	}
	flush()
	return groups
}
