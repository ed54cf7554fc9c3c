package align

import (
	"fmt"
	"strings"
)

// Validate checks the invariants of a row sequence and returns an error on the first violation:
//
//   - Line numbers on each side start at 1 and increase by exactly 1.
//   - Only ChangedOld and ChangedNew rows carry spans, and only as a pair: a ChangedOld row with
//     spans is directly followed by a ChangedNew row with the same spans.
//   - Spans reconstruct the text of their row.
func Validate(rows []Row) error {
	oldNo, newNo := 1, 1
	for i, r := range rows {
		if l, ok := r.Old(); ok {
			if l.No != oldNo {
				return fmt.Errorf("row[%d]: old line number is %d, want %d", i, l.No, oldNo)
			}
			oldNo++
		}
		if l, ok := r.New(); ok {
			if l.No != newNo {
				return fmt.Errorf("row[%d]: new line number is %d, want %d", i, l.No, newNo)
			}
			newNo++
		}

		switch r := r.(type) {
		case Unchanged, Removed, Added:
			// no spans possible
		case ChangedOld:
			if r.Spans == nil {
				continue
			}
			if got := spanText(r.Spans, SpanRemoved); got != r.Text {
				return fmt.Errorf("row[%d]: spans do not reconstruct old text", i)
			}
			partner, ok := rowAt(rows, i+1).(ChangedNew)
			if !ok || partner.Spans == nil {
				return fmt.Errorf("row[%d]: spans without a new line", i)
			}
		case ChangedNew:
			if r.Spans == nil {
				continue
			}
			if got := spanText(r.Spans, SpanAdded); got != r.Text {
				return fmt.Errorf("row[%d]: spans do not reconstruct new text", i)
			}
			partner, ok := rowAt(rows, i-1).(ChangedOld)
			if !ok || partner.Spans == nil {
				return fmt.Errorf("row[%d]: spans without an old line", i)
			}
		default:
			return fmt.Errorf("row[%d]: unknown row %T", i, r)
		}
	}
	return nil
}

func rowAt(rows []Row, i int) Row {
	if i < 0 || i >= len(rows) {
		return nil
	}
	return rows[i]
}

// spanText concatenates all spans that are either SpanSame or of the given kind.
func spanText(spans []WordSpan, kind SpanKind) string {
	var sb strings.Builder
	for _, s := range spans {
		if s.Kind == SpanSame || s.Kind == kind {
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}
