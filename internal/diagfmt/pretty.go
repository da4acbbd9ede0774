// Package diagfmt renders document diagnostics and analysis results
// for the command line: pretty text, JSON, and aligned stats tables.
package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"taml/internal/diag"
	"taml/internal/source"
)

// PositionResolver maps virtual stream positions back to source lines.
// *model.Document satisfies it. A nil resolver leaves locations as raw
// position ranges.
type PositionResolver interface {
	FindPosition(position uint32) (source.Line, bool)
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
)

// Pretty writes one line per diagnostic, errors before warnings:
//
//	<path>:<line>: <SEVERITY> <CODE>: <message>
//
// With ShowContext the recorded source fragment follows indented on
// its own line. Callers sort the bag beforehand if they want
// positional order inside each log.
func Pretty(w io.Writer, bag *diag.Bag, pos PositionResolver, opts PrettyOpts) {
	printed := 0
	total := bag.Len()

	emit := func(items []diag.Diagnostic) {
		for i := range items {
			if opts.Max > 0 && printed >= opts.Max {
				return
			}
			writePretty(w, &items[i], pos, opts)
			printed++
		}
	}
	emit(bag.Errors())
	emit(bag.Warnings())

	if remaining := total - printed; remaining > 0 {
		fmt.Fprintf(w, "(%d more not shown)\n", remaining)
	}
}

func writePretty(w io.Writer, d *diag.Diagnostic, pos PositionResolver, opts PrettyOpts) {
	sev := d.Severity.String()
	if opts.Color {
		switch d.Severity {
		case diag.SevError:
			sev = errorColor.Sprint(sev)
		default:
			sev = warningColor.Sprint(sev)
		}
	}

	fmt.Fprintf(w, "%s: %s %s: %s\n", location(d.Span, pos), sev, d.Code, d.Message)
	if opts.ShowContext && d.Context != "" {
		fmt.Fprintf(w, "    %s\n", d.Context)
	}
}

// location formats a span as path:line when the resolver covers it and
// falls back to the raw position range.
func location(span source.Span, pos PositionResolver) string {
	if pos != nil {
		if line, ok := pos.FindPosition(span.Start); ok {
			return fmt.Sprintf("%s:%d", line.Path, line.Line)
		}
	}
	return span.String()
}
