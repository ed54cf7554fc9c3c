package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"prdesk.io/viewer/align"
)

//go:embed templates/diff.html
var htmlTemplates string

var templates = template.Must(template.New("").Parse(htmlTemplates))

// HTMLWriter writes diffs as HTML tables with one column per line number and one for the content.
type HTMLWriter struct {
	opts Options
}

// NewHTMLWriter returns an HTMLWriter, used to embed diffs into other pages.
func NewHTMLWriter(opts Options) *HTMLWriter {
	return &HTMLWriter{opts: opts}
}

// Write writes a standalone HTML document containing all files.
func (hw *HTMLWriter) Write(w io.Writer, files ...*File) error {
	var diffs []template.HTML
	title := "diff"
	for _, f := range files {
		if f.Name != "" && title == "diff" {
			title = f.Name
		}
		d, err := hw.Fragment(f)
		if err != nil {
			return err
		}
		diffs = append(diffs, d)
	}

	err := templates.ExecuteTemplate(w, "page", struct {
		Title string
		Diffs []template.HTML
	}{
		Title: title,
		Diffs: diffs,
	})
	if err != nil {
		return fmt.Errorf("rendering page: %v", err)
	}
	return nil
}

// Fragment renders f as an HTML fragment. The fragment expects the rules of Stylesheet.
func (hw *HTMLWriter) Fragment(f *File) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "diff", hw.view(f)); err != nil {
		return "", fmt.Errorf("rendering diff: %v", err)
	}
	return template.HTML(buf.String()), nil
}

// Stylesheet returns the CSS rules used by fragments.
func Stylesheet() (template.CSS, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "style", nil); err != nil {
		return "", fmt.Errorf("rendering stylesheet: %v", err)
	}
	return template.CSS(buf.String()), nil
}

type htmlFile struct {
	Name  string
	Stats align.Stats
	Rows  []htmlRow
}

type htmlRow struct {
	Class    string
	Old, New string
	Marker   string
	Spans    []htmlSpan
	Skipped  int
}

type htmlSpan struct {
	Class string
	Text  string
}

func (hw *HTMLWriter) view(f *File) htmlFile {
	v := htmlFile{
		Name:  f.Name,
		Stats: align.Count(f.Rows),
	}
	for _, item := range Fold(f.Rows, hw.opts.Context) {
		if item.Row == nil {
			v.Rows = append(v.Rows, htmlRow{Skipped: item.Skipped})
			continue
		}
		r := item.Row
		o, n := numbers(r)
		v.Rows = append(v.Rows, htmlRow{
			Class:  Kind(r),
			Old:    o,
			New:    n,
			Marker: string(marker(r)),
			Spans:  htmlSpans(r),
		})
	}
	return v
}

func htmlSpans(r align.Row) []htmlSpan {
	spans := align.Spans(r)
	if spans == nil {
		return []htmlSpan{{Text: text(r)}}
	}

	class, kind := "ins", align.SpanAdded
	if _, ok := r.Old(); ok {
		class, kind = "del", align.SpanRemoved
	}
	var ret []htmlSpan
	for _, s := range spans {
		switch s.Kind {
		case align.SpanSame:
			ret = append(ret, htmlSpan{Text: s.Text})
		case kind:
			ret = append(ret, htmlSpan{Class: class, Text: s.Text})
		}
	}
	return ret
}
