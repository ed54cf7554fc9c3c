package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"prdesk.io/viewer/align"
)

// ANSIWriter writes a unified diff for terminals. Removed and added lines get a light background,
// the words that changed within a replaced line a darker one.
type ANSIWriter struct {
	opts Options
}

type ansiStyles struct {
	header, lineNo, gap      lipgloss.Style
	removedLine, removedSpan lipgloss.Style
	addedLine, addedSpan     lipgloss.Style
}

func newANSIStyles(r *lipgloss.Renderer) ansiStyles {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return ansiStyles{
		header:      base.Foreground(lipgloss.Color("6")).Bold(true),
		lineNo:      base.Foreground(lipgloss.Color("244")),
		gap:         base.Foreground(lipgloss.Color("244")).Italic(true),
		removedLine: base.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("224")),
		removedSpan: base.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("217")),
		addedLine:   base.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("194")),
		addedSpan:   base.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("114")),
	}
}

func (aw *ANSIWriter) Write(w io.Writer, files ...*File) error {
	r := lipgloss.NewRenderer(w)
	switch aw.opts.Color {
	case "always":
		r.SetColorProfile(termenv.TrueColor)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	}
	st := newANSIStyles(r)

	bw := bufio.NewWriter(w)
	width := numberWidth(files)
	for i, f := range files {
		if i > 0 {
			bw.WriteString("\n")
		}
		if h := header(f); h != "" {
			fmt.Fprintln(bw, st.header.Render(h))
		}
		for _, item := range Fold(f.Rows, aw.opts.Context) {
			if item.Row == nil {
				pad := strings.Repeat(" ", 2*width+1)
				fmt.Fprintln(bw, pad+st.gap.Render(fmt.Sprintf(" ... %d unchanged lines", item.Skipped)))
				continue
			}
			o, n := numbers(item.Row)
			bw.WriteString(st.lineNo.Render(fmt.Sprintf("%*s %*s ", width, o, width, n)))
			bw.WriteString(st.line(item.Row))
			bw.WriteString("\n")
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing ansi: %v", err)
	}
	return nil
}

// line renders the marker and content of a row.
func (st ansiStyles) line(r align.Row) string {
	var lineStyle, spanStyle lipgloss.Style
	var kind align.SpanKind
	switch r.(type) {
	case align.Unchanged:
		return "  " + text(r)
	case align.Removed, align.ChangedOld:
		lineStyle, spanStyle, kind = st.removedLine, st.removedSpan, align.SpanRemoved
	default:
		lineStyle, spanStyle, kind = st.addedLine, st.addedSpan, align.SpanAdded
	}

	var sb strings.Builder
	sb.WriteString(lineStyle.Render(string(marker(r)) + " "))
	spans := align.Spans(r)
	if spans == nil {
		sb.WriteString(lineStyle.Render(text(r)))
		return sb.String()
	}
	for _, s := range spans {
		switch s.Kind {
		case align.SpanSame:
			sb.WriteString(lineStyle.Render(s.Text))
		case kind:
			sb.WriteString(spanStyle.Render(s.Text))
		}
	}
	return sb.String()
}
