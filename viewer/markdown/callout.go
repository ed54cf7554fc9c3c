package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Callout is a paragraph started by a label like "WARNING: ". Models like to write these into
// explanations, they are rendered as boxes.
type Callout struct {
	ast.BaseBlock
	Label string
}

var KindCallout = ast.NewNodeKind("Callout")

func (n *Callout) Kind() ast.NodeKind { return KindCallout }

func (n *Callout) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Label": n.Label}, nil)
}

// calloutTitles maps labels to the titles they are rendered with.
var calloutTitles = map[string]string{
	"NOTE":      "Note",
	"TIP":       "Tip",
	"IMPORTANT": "Important",
	"WARNING":   "Warning",
}

var calloutRE = regexp.MustCompile("^(NOTE|TIP|IMPORTANT|WARNING): ")

// Callouts is a goldmark extension that parses and renders callouts.
var Callouts goldmark.Extender = &callouts{}

type callouts struct{}

func (e *callouts) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(
			util.Prioritized(&calloutParser{}, 999),
		),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(&calloutRenderer{}, 500),
		),
	)
}

type calloutParser struct{}

var _ parser.BlockParser = (*calloutParser)(nil)

func (p *calloutParser) Trigger() []byte {
	return []byte{'N', 'T', 'I', 'W'}
}

func (p *calloutParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, _ := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 {
		return nil, parser.NoChildren
	}

	m := calloutRE.FindSubmatch(line[pos:])
	if m == nil {
		return nil, parser.NoChildren
	}
	reader.Advance(pos + len(m[0]))
	return &Callout{Label: string(m[1])}, parser.HasChildren
}

func (p *calloutParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	line, _ := reader.PeekLine()
	if util.IsBlank(line) {
		return parser.Close
	}
	reader.Advance(reader.LineOffset())
	return parser.Continue | parser.HasChildren
}

func (p *calloutParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *calloutParser) CanInterruptParagraph() bool { return false }

func (p *calloutParser) CanAcceptIndentedLine() bool { return false }

type calloutRenderer struct{}

var _ renderer.NodeRenderer = (*calloutRenderer)(nil)

func (r *calloutRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindCallout, r.render)
}

func (r *calloutRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		w.WriteString("</div>\n")
		return ast.WalkContinue, nil
	}
	n := node.(*Callout)
	title, ok := calloutTitles[n.Label]
	if !ok {
		return ast.WalkStop, fmt.Errorf("unknown callout label: %q", n.Label)
	}
	fmt.Fprintf(w, `<div class="callout %s"><p class="callout-title">%s</p>`, strings.ToLower(n.Label), title)
	return ast.WalkContinue, nil
}
