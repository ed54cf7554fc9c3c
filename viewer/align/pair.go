package align

// Pair merges every Delete group that is immediately followed by an Insert group into a
// ChangeBlock. All other groups are returned unchanged and in order.
//
// Only directly adjacent groups are merged: Delete, Insert, Delete, Insert yields two blocks and a
// Delete separated from an Insert by an Equal group stays on its own.
func Pair(groups []LineGroup) []Segment {
	segs := make([]Segment, 0, len(groups))
	for i := 0; i < len(groups); i++ {
		g := groups[i]
		if g.Op == Delete && i+1 < len(groups) && groups[i+1].Op == Insert {
			segs = append(segs, ChangeBlock{Removed: g.Lines, Added: groups[i+1].Lines})
			i++
			continue
		}
		segs = append(segs, g)
	}
	return segs
}
