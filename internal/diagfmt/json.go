package diagfmt

import (
	"encoding/json"
	"io"

	"taml/internal/diag"
	"taml/internal/source"
)

// LocationJSON is a span plus its resolved source coordinates.
type LocationJSON struct {
	Path      string `json:"path,omitempty"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	Line      uint32 `json:"line,omitempty"`
}

// DiagnosticJSON is one diagnostic in JSON form.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Context  string       `json:"context,omitempty"`
	Location LocationJSON `json:"location"`
}

// DiagnosticsOutput is the root of the JSON output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Errors      int              `json:"errors"`
	Warnings    int              `json:"warnings"`
	Count       int              `json:"count"`
}

func makeLocation(span source.Span, pos PositionResolver, includePositions bool) LocationJSON {
	loc := LocationJSON{
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if includePositions && pos != nil {
		if line, ok := pos.FindPosition(span.Start); ok {
			loc.Path = line.Path
			loc.Line = line.Line
		}
	}
	return loc
}

// BuildDiagnosticsOutput assembles the JSON structure without
// serialising it. Errors precede warnings; Max truncates the combined
// list while the per-severity totals keep counting the whole bag.
func BuildDiagnosticsOutput(bag *diag.Bag, pos PositionResolver, opts JSONOpts) DiagnosticsOutput {
	diagnostics := make([]DiagnosticJSON, 0, bag.Len())

	add := func(items []diag.Diagnostic) {
		for i := range items {
			if opts.Max > 0 && len(diagnostics) >= opts.Max {
				return
			}
			d := &items[i]
			diagnostics = append(diagnostics, DiagnosticJSON{
				Severity: d.Severity.String(),
				Code:     d.Code.String(),
				Message:  d.Message,
				Context:  d.Context,
				Location: makeLocation(d.Span, pos, opts.IncludePositions),
			})
		}
	}
	add(bag.Errors())
	add(bag.Warnings())

	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Errors:      len(bag.Errors()),
		Warnings:    len(bag.Warnings()),
		Count:       len(diagnostics),
	}
}

// JSON writes the diagnostics as indented JSON.
func JSON(w io.Writer, bag *diag.Bag, pos PositionResolver, opts JSONOpts) error {
	output := BuildDiagnosticsOutput(bag, pos, opts)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
