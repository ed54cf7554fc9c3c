package align

// Stats counts lines of a diff.
type Stats struct {
	Unchanged int // Lines present on both sides
	Removed   int // Lines only on the old side, replaced or not
	Added     int // Lines only on the new side, replacing or not
}

// Count returns the line counts of rows.
func Count(rows []Row) Stats {
	var s Stats
	for _, r := range rows {
		switch r.(type) {
		case Unchanged:
			s.Unchanged++
		case Removed, ChangedOld:
			s.Removed++
		case Added, ChangedNew:
			s.Added++
		}
	}
	return s
}

// Changed reports whether the diff contains any change.
func (s Stats) Changed() bool { return s.Removed > 0 || s.Added > 0 }
