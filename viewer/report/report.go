// Package report renders a review into a bundle of documents: an HTML page, an Atom feed and the
// JSON row model of every suggestion. Bundles are served by package server and archived by
// package pack.
package report

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"prdesk.io/viewer/align"
	"prdesk.io/viewer/render"
	"prdesk.io/viewer/review"
)

// Doc is a single rendered document of a bundle.
type Doc struct {
	Path     string
	MimeType string
	Data     []byte
}

// Bundle is an immutable set of documents, keyed by path.
type Bundle struct {
	docs map[string]*Doc
}

// Doc returns the document for the given path, or nil if the document cannot be found.
func (b *Bundle) Doc(path string) *Doc {
	return b.docs[path]
}

// Docs returns all documents ordered by path.
func (b *Bundle) Docs() []*Doc {
	ret := make([]*Doc, 0, len(b.docs))
	for _, d := range b.docs {
		ret = append(ret, d)
	}
	slices.SortFunc(ret, func(a, b *Doc) int {
		return cmp.Compare(a.Path, b.Path)
	})
	return ret
}

// Options controls rendering of a report.
type Options struct {
	Title     string                            // Overrides the title derived from the review
	Context   int                               // Unchanged lines around changes, negative shows all
	Tokenizer func(path string) align.Tokenizer // Tokenizer for a file, nil uses align.SplitWords
	Updated   time.Time                         // Update time of the feed, zero uses the current time
}

// Build renders r into a bundle.
func Build(r *review.Review, opts Options) (*Bundle, error) {
	if opts.Updated.IsZero() {
		opts.Updated = time.Now()
	}

	p, err := newPage(r, opts)
	if err != nil {
		return nil, err
	}

	b := &Bundle{docs: make(map[string]*Doc)}
	add := func(path, mime string, data []byte) {
		b.docs[path] = &Doc{Path: path, MimeType: mime, Data: data}
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "report", p); err != nil {
		return nil, fmt.Errorf("rendering report: %v", err)
	}
	add("/", "text/html; charset=utf-8", buf.Bytes())

	feed, err := renderFeed(p, opts.Updated)
	if err != nil {
		return nil, err
	}
	add("/feed.atom", "application/atom+xml; charset=utf-8", feed)

	rows, err := renderRows(r, opts)
	if err != nil {
		return nil, err
	}
	add("/review.json", "application/json", rows)

	return b, nil
}

// Files returns the diffs of all suggestions with code, named by their location.
func Files(r *review.Review, opts Options) ([]*render.File, error) {
	suggestions, err := r.WithCode()
	if err != nil {
		return nil, err
	}
	files := make([]*render.File, 0, len(suggestions))
	for _, s := range suggestions {
		files = append(files, &render.File{
			Name: s.Location(),
			Rows: s.Rows(tokenizer(opts, s.FilePath)),
		})
	}
	return files, nil
}

func tokenizer(opts Options, path string) align.Option {
	if opts.Tokenizer == nil {
		return align.WithTokenizer(align.SplitWords)
	}
	return align.WithTokenizer(opts.Tokenizer(path))
}

func renderRows(r *review.Review, opts Options) ([]byte, error) {
	files, err := Files(r, opts)
	if err != nil && !errors.Is(err, review.ErrNoSuggestions) {
		return nil, err
	}
	var buf bytes.Buffer
	if err := (&render.JSONWriter{}).Write(&buf, files...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
