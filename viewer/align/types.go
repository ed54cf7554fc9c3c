// Package align turns two versions of a text into numbered, side-annotated rows for a unified
// diff view.
//
// The pipeline is Lines (line groups) -> Pair (replacement blocks) -> Build (rows), with Words
// computing intra-line highlights for lines that were replaced. Diff runs the whole pipeline.
// Everything in this package is a pure function of its input and safe for concurrent use.
package align

// Op describes how a group of lines changed.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type=Op,SpanKind
type Op int

const (
	Equal  Op = iota // Lines present in both texts
	Delete           // Lines only present in the old text
	Insert           // Lines only present in the new text
)

// LineGroup is a maximal run of consecutive lines sharing the same Op. Lines never contain the
// line break.
type LineGroup struct {
	Op    Op
	Lines []string
}

// ChangeBlock is a Delete group directly followed by an Insert group. Its lines are paired by
// position when building rows.
type ChangeBlock struct {
	Removed []string
	Added   []string
}

// Segment is either a LineGroup or a ChangeBlock.
type Segment interface {
	segment()
}

func (LineGroup) segment()   {}
func (ChangeBlock) segment() {}

// SpanKind describes a fragment of a replaced line.
type SpanKind int

const (
	SpanSame    SpanKind = iota // Present in both lines
	SpanRemoved                 // Only present in the old line
	SpanAdded                   // Only present in the new line
)

// WordSpan is a fragment of a replaced line.
type WordSpan struct {
	Kind SpanKind
	Text string
}

// Line is one side of a row.
type Line struct {
	No   int // 1-based line number on its side
	Text string
}

// Row is one renderable line of a diff. It is one of Unchanged, Removed, Added, ChangedOld or
// ChangedNew. A row only has the sides its variant declares.
type Row interface {
	Old() (Line, bool)
	New() (Line, bool)
	row()
}

// Unchanged is a line present in both texts.
type Unchanged struct {
	OldNo, NewNo int
	Text         string
}

// Removed is a deleted line that has no replacement.
type Removed struct {
	Line
}

// Added is an inserted line that doesn't replace anything.
type Added struct {
	Line
}

// ChangedOld is the old side of a replaced line. Spans is set iff the block has a new line at the
// same position.
type ChangedOld struct {
	Line
	Spans []WordSpan
}

// ChangedNew is the new side of a replaced line. Spans is set iff the block has an old line at the
// same position.
type ChangedNew struct {
	Line
	Spans []WordSpan
}

func (r Unchanged) Old() (Line, bool) { return Line{r.OldNo, r.Text}, true }
func (r Unchanged) New() (Line, bool) { return Line{r.NewNo, r.Text}, true }
func (Unchanged) row()                {}

func (r Removed) Old() (Line, bool) { return r.Line, true }
func (r Removed) New() (Line, bool) { return Line{}, false }
func (Removed) row()                {}

func (r Added) Old() (Line, bool) { return Line{}, false }
func (r Added) New() (Line, bool) { return r.Line, true }
func (Added) row()                {}

func (r ChangedOld) Old() (Line, bool) { return r.Line, true }
func (r ChangedOld) New() (Line, bool) { return Line{}, false }
func (ChangedOld) row()                {}

func (r ChangedNew) Old() (Line, bool) { return Line{}, false }
func (r ChangedNew) New() (Line, bool) { return r.Line, true }
func (ChangedNew) row()                {}

// Spans returns the inline spans of a row, or nil if the row has none.
func Spans(r Row) []WordSpan {
	switch r := r.(type) {
	case ChangedOld:
		return r.Spans
	case ChangedNew:
		return r.Spans
	}
	return nil
}
