package report

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"

	"golang.org/x/tools/blog/atom"
)

// renderFeed renders one Atom entry per suggestion, in the order of the page.
func renderFeed(p *page, updated time.Time) ([]byte, error) {
	r := p.Review
	id := "tag:prdesk.io,2025:" + p.Title
	if r.PRURL != "" {
		id = r.PRURL
	}

	feed := atom.Feed{
		Title:   p.Title,
		ID:      id,
		Updated: atom.Time(updated),
		Link: []atom.Link{{
			Rel:  "self",
			Href: "/feed.atom",
		}},
	}
	if r.PRAuthor != "" {
		feed.Author = &atom.Person{Name: r.PRAuthor}
	}

	for _, g := range p.Groups {
		for _, it := range g.Items {
			var content bytes.Buffer
			if err := templates.ExecuteTemplate(&content, "entry", it); err != nil {
				return nil, fmt.Errorf("rendering feed entry %s: %v", it.ID, err)
			}

			e := &atom.Entry{
				Title: fmt.Sprintf("[%s] %s: %s", it.Label, it.Suggestion.Location(), it.Suggestion.Suggestion),
				ID:    id + "#" + it.ID,
				Link: []atom.Link{{
					Rel:  "alternate",
					Href: "/#" + it.ID,
				}},
				Updated: atom.Time(updated),
				Summary: &atom.Text{
					Type: "text",
					Body: g.Name,
				},
				Content: &atom.Text{
					Type: "html",
					Body: content.String(),
				},
			}
			feed.Entry = append(feed.Entry, e)
		}
	}

	b, err := xml.Marshal(feed)
	if err != nil {
		return nil, fmt.Errorf("encoding feed: %v", err)
	}
	return b, nil
}
