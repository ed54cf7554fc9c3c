package render

import "prdesk.io/viewer/align"

// Item is either a row or a gap of unchanged rows that were folded away.
type Item struct {
	Row     align.Row // nil for gaps
	Skipped int       // number of folded rows for gaps
}

// Fold replaces unchanged rows that are more than context rows away from the closest change with
// gaps. A negative context keeps all rows. Without any change, all rows fold into one gap.
func Fold(rows []align.Row, context int) []Item {
	items := make([]Item, 0, len(rows))
	if context < 0 {
		for _, r := range rows {
			items = append(items, Item{Row: r})
		}
		return items
	}

	keep := make([]bool, len(rows))
	last := -1 // index of the last change seen
	for i, r := range rows {
		if _, ok := r.(align.Unchanged); !ok {
			last = i
		}
		keep[i] = last >= 0 && i-last <= context
	}
	last = -1
	for i := len(rows) - 1; i >= 0; i-- {
		if _, ok := rows[i].(align.Unchanged); !ok {
			last = i
		}
		if last >= 0 && last-i <= context {
			keep[i] = true
		}
	}

	for i, r := range rows {
		if keep[i] {
			items = append(items, Item{Row: r})
			continue
		}
		if n := len(items); n > 0 && items[n-1].Row == nil {
			items[n-1].Skipped++
			continue
		}
		items = append(items, Item{Skipped: 1})
	}
	return items
}
