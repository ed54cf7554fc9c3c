package render

import (
	"encoding/json"
	"fmt"
	"io"

	"prdesk.io/viewer/align"
)

// JSONWriter writes the complete row model, without folding, for other programs to render.
type JSONWriter struct{}

type jsonFile struct {
	Name  string    `json:"name,omitempty"`
	Stats jsonStats `json:"stats"`
	Rows  []jsonRow `json:"rows"`
}

type jsonStats struct {
	Unchanged int `json:"unchanged"`
	Removed   int `json:"removed"`
	Added     int `json:"added"`
}

type jsonRow struct {
	Kind  string      `json:"kind"`
	Old   int         `json:"old,omitempty"`
	New   int         `json:"new,omitempty"`
	Text  string      `json:"text"`
	Spans *[]jsonSpan `json:"spans,omitempty"`
}

type jsonSpan struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

var spanKinds = map[align.SpanKind]string{
	align.SpanSame:    "same",
	align.SpanRemoved: "removed",
	align.SpanAdded:   "added",
}

func (jw *JSONWriter) Write(w io.Writer, files ...*File) error {
	out := make([]jsonFile, 0, len(files))
	for _, f := range files {
		out = append(out, toJSON(f))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding json: %v", err)
	}
	return nil
}

// toJSON returns the JSON representation of f.
func toJSON(f *File) jsonFile {
	s := align.Count(f.Rows)
	jf := jsonFile{
		Name:  f.Name,
		Stats: jsonStats{s.Unchanged, s.Removed, s.Added},
		Rows:  make([]jsonRow, 0, len(f.Rows)),
	}
	for _, r := range f.Rows {
		jr := jsonRow{
			Kind: Kind(r),
			Text: text(r),
		}
		if l, ok := r.Old(); ok {
			jr.Old = l.No
		}
		if l, ok := r.New(); ok {
			jr.New = l.No
		}
		if spans := align.Spans(r); spans != nil {
			js := make([]jsonSpan, 0, len(spans))
			for _, s := range spans {
				js = append(js, jsonSpan{spanKinds[s.Kind], s.Text})
			}
			jr.Spans = &js
		}
		jf.Rows = append(jf.Rows, jr)
	}
	return jf
}
