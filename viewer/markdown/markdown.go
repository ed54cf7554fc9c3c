// Package markdown renders the free text of a review (descriptions, explanations, security notes)
// to HTML. Raw HTML in the input is dropped; the text comes from a model and isn't trusted.
package markdown

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Footnote,
		Callouts,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// Render converts markdown to HTML.
func Render(data []byte) ([]byte, error) {
	root := md.Parser().Parse(text.NewReader(data))

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, data, root); err != nil {
		return nil, fmt.Errorf("rendering markdown: %v", err)
	}
	return buf.Bytes(), nil
}

// HTML is like Render but returns a value that can be used in templates as is. Empty input
// results in empty output.
func HTML(s string) (template.HTML, error) {
	if s == "" {
		return "", nil
	}
	b, err := Render([]byte(s))
	if err != nil {
		return "", err
	}
	return template.HTML(b), nil
}
