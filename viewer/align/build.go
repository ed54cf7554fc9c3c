package align

// Build turns segments into rows and assigns line numbers, counting each side from 1.
//
// Lines of a ChangeBlock are paired by position: the i-th removed line and the i-th added line
// get inline spans computed with tok. Lines without a partner, which happens when a block removes
// more lines than it adds or vice versa, get no spans.
func Build(segs []Segment, tok Tokenizer) []Row {
	var rows []Row
	oldNo, newNo := 1, 1
	for _, seg := range segs {
		switch seg := seg.(type) {
		case LineGroup:
			for _, line := range seg.Lines {
				switch seg.Op {
				case Equal:
					rows = append(rows, Unchanged{OldNo: oldNo, NewNo: newNo, Text: line})
					oldNo++
					newNo++
				case Delete:
					rows = append(rows, Removed{Line{oldNo, line}})
					oldNo++
				case Insert:
					rows = append(rows, Added{Line{newNo, line}})
					newNo++
				}
			}

		case ChangeBlock:
			for i := range max(len(seg.Removed), len(seg.Added)) {
				var spans []WordSpan
				if i < len(seg.Removed) && i < len(seg.Added) {
					spans = Words(seg.Removed[i], seg.Added[i], tok)
				}
				if i < len(seg.Removed) {
					rows = append(rows, ChangedOld{Line{oldNo, seg.Removed[i]}, spans})
					oldNo++
				}
				if i < len(seg.Added) {
					rows = append(rows, ChangedNew{Line{newNo, seg.Added[i]}, spans})
					newNo++
				}
			}
		}
	}
	return rows
}
