package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TextWriter writes a plain unified diff with line numbers for both sides:
//
//	main.go (+1 -1)
//	1 1   package main
//	2   - var x = 1
//	  2 + var x = 2
type TextWriter struct {
	opts Options
}

func (tw *TextWriter) Write(w io.Writer, files ...*File) error {
	bw := bufio.NewWriter(w)
	width := numberWidth(files)
	for i, f := range files {
		if i > 0 {
			bw.WriteString("\n")
		}
		if h := header(f); h != "" {
			fmt.Fprintln(bw, h)
		}
		for _, item := range Fold(f.Rows, tw.opts.Context) {
			if item.Row == nil {
				fmt.Fprintf(bw, "%s ... %d unchanged lines\n", strings.Repeat(" ", 2*width+1), item.Skipped)
				continue
			}
			o, n := numbers(item.Row)
			fmt.Fprintf(bw, "%*s %*s %c %s\n", width, o, width, n, marker(item.Row), text(item.Row))
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing text: %v", err)
	}
	return nil
}
