package trace

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestSpanEmitsBeginAndEnd(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	span := Begin(tr, ScopePass, "stats", 0)
	if span.ID() == 0 {
		t.Fatalf("expected a real span ID at phase level")
	}
	span.WithExtra("templates", "3")
	span.End("done")

	out := buf.String()
	if !strings.Contains(out, "\u2192 stats") {
		t.Errorf("missing begin event in output:\n%s", out)
	}
	if !strings.Contains(out, "\u2190 stats (done)") {
		t.Errorf("missing end event in output:\n%s", out)
	}
	if !strings.Contains(out, "templates=3") {
		t.Errorf("missing extra field in output:\n%s", out)
	}
}

func TestLevelFiltersScopes(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	span := Begin(tr, ScopeTemplate, "template:Train", 0)
	span.End("")

	if buf.Len() != 0 {
		t.Fatalf("template scope must be silent at phase level, got:\n%s", buf.String())
	}
	if span.ID() != 0 {
		t.Fatalf("filtered span should be a nop span")
	}
}

func TestNDJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)

	Begin(tr, ScopePass, "explore", 0).End("5 cuts")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 NDJSON lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"kind":"begin"`) || !strings.Contains(lines[0], `"name":"explore"`) {
		t.Errorf("unexpected begin line: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"detail":"5 cuts"`) {
		t.Errorf("unexpected end line: %s", lines[1])
	}
}

func TestNopTracerIsInert(t *testing.T) {
	span := Begin(Nop, ScopeDriver, "anything", 0)
	span.WithExtra("k", "v")
	if d := span.End("detail"); d != 0 {
		t.Errorf("nop span duration = %v, want 0", d)
	}
	if Nop.Enabled() {
		t.Error("nop tracer must report disabled")
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"phase", LevelPhase, false},
		{"DETAIL", LevelDetail, false},
		{"debug", LevelDebug, false},
		{"verbose", LevelOff, true},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewReturnsNopWhenOff(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Enabled() {
		t.Fatal("LevelOff config must yield a disabled tracer")
	}
}

func TestContextRoundTrip(t *testing.T) {
	if got := FromContext(nil); got != Nop {
		t.Fatalf("nil context should yield Nop")
	}

	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatText)
	ctx := WithTracer(context.Background(), tr)
	if got := FromContext(ctx); got != Tracer(tr) {
		t.Fatalf("tracer did not round-trip through context")
	}
}
