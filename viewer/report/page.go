package report

import (
	"cmp"
	_ "embed"
	"fmt"
	"html/template"
	"log"
	"strings"

	"prdesk.io/viewer/markdown"
	"prdesk.io/viewer/render"
	"prdesk.io/viewer/review"
)

//go:embed templates/report.html
var reportTemplate string

var templates = template.Must(template.New("").Parse(reportTemplate))

type page struct {
	Title          string
	Review         *review.Review
	Style          template.CSS
	Critical       int
	Total          int
	Security       template.HTML
	Description    *description
	RawDescription string // set if the description isn't YAML
	Groups         []group
}

type description struct {
	*review.Description
	HTML template.HTML
}

type group struct {
	Name  string
	Items []*item
}

type item struct {
	ID          string
	Severity    string // CSS class
	Label       string
	Suggestion  review.Suggestion
	Explanation template.HTML
	Diff        template.HTML
}

func newPage(r *review.Review, opts Options) (*page, error) {
	style, err := render.Stylesheet()
	if err != nil {
		return nil, err
	}
	p := &page{
		Title:    cmp.Or(opts.Title, r.Title()),
		Review:   r,
		Style:    style,
		Critical: len(r.Critical()),
		Total:    len(r.Suggestions),
	}

	if p.Security, err = markdown.HTML(r.SecurityConcerns); err != nil {
		return nil, fmt.Errorf("rendering security concerns: %v", err)
	}

	d, err := review.ParseDescription(r.PRDescription)
	switch {
	case err != nil:
		log.Printf("showing raw PR description: %v", err)
		p.RawDescription = r.PRDescription
	case d != nil:
		html, err := markdown.HTML(d.Description)
		if err != nil {
			return nil, fmt.Errorf("rendering PR description: %v", err)
		}
		p.Description = &description{d, html}
	}

	hw := render.NewHTMLWriter(render.Options{Context: opts.Context})
	n := 0
	for _, g := range r.ByCategory() {
		pg := group{Name: g.Name}
		for _, s := range g.Suggestions {
			n++
			it := &item{
				ID:         fmt.Sprintf("s%d", n),
				Suggestion: s,
			}
			it.Severity, it.Label = severity(&s)
			if it.Explanation, err = markdown.HTML(s.Explanation); err != nil {
				return nil, fmt.Errorf("rendering explanation of %s: %v", it.ID, err)
			}
			if s.HasCode() {
				f := &render.File{Name: s.Location(), Rows: s.Rows(tokenizer(opts, s.FilePath))}
				if it.Diff, err = hw.Fragment(f); err != nil {
					return nil, err
				}
			}
			pg.Items = append(pg.Items, it)
		}
		p.Groups = append(p.Groups, pg)
	}
	return p, nil
}

// severity returns the CSS class and the label for the severity of a suggestion.
func severity(s *review.Suggestion) (class, label string) {
	switch strings.ToLower(s.Severity) {
	case "error":
		return "error", "Critical"
	case "warning":
		return "warning", "Warning"
	default:
		return "info", "Info"
	}
}
