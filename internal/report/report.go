// Package report renders a pipeline.PipelineContext's diagnostics for a
// terminal: one line per diagnostic in discovery order, colored when
// stdout is a real terminal, followed by a humanized summary line.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/doyoubi/minimoe/internal/pipeline"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// IsTerminal reports whether w looks like a real terminal worth coloring
// output for. Non-file writers (e.g. a bytes.Buffer in a test) are never
// treated as terminals.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Format writes every diagnostic in ctx, in the order they were recorded,
// followed by a one-line summary. color controls whether each line carries
// an ANSI severity marker.
func Format(ctx *pipeline.PipelineContext, w io.Writer, color bool) {
	name := ctx.Filename
	if name == "" {
		name = "<input>"
	}
	for _, d := range ctx.Diagnostics {
		row, col := "?", "?"
		if d.Anchor != nil {
			row = fmt.Sprintf("%d", d.Anchor.Row)
			col = fmt.Sprintf("%d", d.Anchor.Column)
		}
		if color {
			fmt.Fprintf(w, "%s%s:%s:%s: [%s] %s%s\n", ansiRed, name, row, col, d.Kind, d.Message, ansiReset)
		} else {
			fmt.Fprintf(w, "%s:%s:%s: [%s] %s\n", name, row, col, d.Kind, d.Message)
		}
	}

	tokens := 0
	if ctx.CodeFile != nil {
		for _, line := range ctx.CodeFile.Lines {
			tokens += len(line.Tokens)
		}
	}
	fmt.Fprintf(w, "scanned %s tokens, %s diagnostics\n",
		humanize.Comma(int64(tokens)), humanize.Comma(int64(len(ctx.Diagnostics))))
}

// Summary aggregates several contexts (e.g. one per file processed by
// cmd/minimoe) into a single humanized line.
func Summary(contexts []*pipeline.PipelineContext) string {
	files := len(contexts)
	var diags int
	for _, ctx := range contexts {
		diags += len(ctx.Diagnostics)
	}
	return fmt.Sprintf("processed %s file(s), %s diagnostics total",
		humanize.Comma(int64(files)), humanize.Comma(int64(diags)))
}
