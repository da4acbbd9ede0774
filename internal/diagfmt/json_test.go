package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestJSONOutputShape(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, testBag(), testResolver(), JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if out.Count != 2 || out.Errors != 1 || out.Warnings != 1 {
		t.Fatalf("counts = %d/%d/%d, want 2/1/1", out.Count, out.Errors, out.Warnings)
	}

	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "TA2004" {
		t.Errorf("first diagnostic = %s %s, want ERROR TA2004", d.Severity, d.Code)
	}
	if d.Message != "duplicate definition of x" || d.Context != "int x;" {
		t.Errorf("message/context = %q/%q", d.Message, d.Context)
	}
	if d.Location.Path != "gate.tm" || d.Location.Line != 4 {
		t.Errorf("location = %s:%d, want gate.tm:4", d.Location.Path, d.Location.Line)
	}
	if d.Location.StartByte != 45 || d.Location.EndByte != 50 {
		t.Errorf("bytes = %d-%d, want 45-50", d.Location.StartByte, d.Location.EndByte)
	}

	if out.Diagnostics[1].Severity != "WARNING" {
		t.Errorf("second diagnostic = %s, want WARNING", out.Diagnostics[1].Severity)
	}
}

func TestJSONWithoutPositions(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, testBag(), testResolver(), JSONOpts{}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	loc := out.Diagnostics[0].Location
	if loc.Path != "" || loc.Line != 0 {
		t.Errorf("positions resolved without IncludePositions: %+v", loc)
	}
	if loc.StartByte != 45 || loc.EndByte != 50 {
		t.Errorf("raw bytes lost: %+v", loc)
	}
}

func TestJSONMaxKeepsTotals(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, testBag(), nil, JSONOpts{Max: 1}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(out.Diagnostics) != 1 || out.Count != 1 {
		t.Errorf("truncation failed: count = %d, len = %d", out.Count, len(out.Diagnostics))
	}
	if out.Errors != 1 || out.Warnings != 1 {
		t.Errorf("totals should cover the whole bag: %d/%d", out.Errors, out.Warnings)
	}
}
