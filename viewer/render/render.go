// Package render writes diff rows for humans (plain text, terminal, HTML) and machines (JSON).
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"prdesk.io/viewer/align"
)

// ErrUnknownFormat is returned by GetWriter for formats it doesn't know.
var ErrUnknownFormat = errors.New("unknown format")

// File is the diff of a single file or snippet.
type File struct {
	Name string // Displayed above the rows, optional
	Rows []align.Row
}

// Options controls writers.
type Options struct {
	Context int    // Unchanged lines shown around changes, negative shows all lines
	Color   string // "auto", "always" or "never"; only used by the ansi writer
}

// Writer writes files in a specific format.
type Writer interface {
	Write(w io.Writer, files ...*File) error
}

// Formats lists the formats known to GetWriter.
var Formats = []string{"text", "ansi", "html", "json"}

// GetWriter returns a writer for the specified format.
func GetWriter(format string, opts Options) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{opts: opts}, nil
	case "ansi":
		return &ANSIWriter{opts: opts}, nil
	case "html":
		return &HTMLWriter{opts: opts}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Kind returns the name of the row variant as used in JSON and as CSS class.
func Kind(r align.Row) string {
	switch r.(type) {
	case align.Unchanged:
		return "unchanged"
	case align.Removed:
		return "removed"
	case align.Added:
		return "added"
	case align.ChangedOld:
		return "changed-old"
	case align.ChangedNew:
		return "changed-new"
	}
	return ""
}

// marker returns the unified diff marker of a row.
func marker(r align.Row) byte {
	_, hasOld := r.Old()
	_, hasNew := r.New()
	switch {
	case hasOld && hasNew:
		return ' '
	case hasOld:
		return '-'
	default:
		return '+'
	}
}

// text returns the content of a row, which is the old line for rows that have one.
func text(r align.Row) string {
	if l, ok := r.Old(); ok {
		return l.Text
	}
	l, _ := r.New()
	return l.Text
}

// numbers returns the line numbers of a row, empty for missing sides.
func numbers(r align.Row) (o, n string) {
	if l, ok := r.Old(); ok {
		o = strconv.Itoa(l.No)
	}
	if l, ok := r.New(); ok {
		n = strconv.Itoa(l.No)
	}
	return o, n
}

// numberWidth returns the width of the widest line number in files.
func numberWidth(files []*File) int {
	w := 1
	for _, f := range files {
		for _, r := range f.Rows {
			o, n := numbers(r)
			w = max(w, len(o), len(n))
		}
	}
	return w
}

// header returns the title line of a file, or "" for files without a name.
func header(f *File) string {
	if f.Name == "" {
		return ""
	}
	s := align.Count(f.Rows)
	return fmt.Sprintf("%s (+%d -%d)", f.Name, s.Added, s.Removed)
}
