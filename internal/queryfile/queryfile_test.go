package queryfile

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"taml/internal/model"
)

const sampleTOML = `
[[query]]
formula = "A[] not deadlock"
comment = "safety"
location = "model.tm:12"

[query.options]
reduction = "aggressive"
order = "bfs"

[query.expectation]
type = "symbolic"
status = "true"

[[query.expectation.resources]]
name = "time"
value = "10"
unit = "s"

[[query]]
formula = "E<> Gate.open"
`

func TestParseFull(t *testing.T) {
	queries, err := Parse([]byte(sampleTOML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(queries) != 2 {
		t.Fatalf("queries = %d, want 2", len(queries))
	}

	q := queries[0]
	if q.Formula != "A[] not deadlock" || q.Comment != "safety" || q.Location != "model.tm:12" {
		t.Fatalf("query fields = %+v", q)
	}
	want := []model.Option{{Name: "order", Value: "bfs"}, {Name: "reduction", Value: "aggressive"}}
	if !reflect.DeepEqual(q.Options, want) {
		t.Fatalf("options = %+v, want name-sorted %+v", q.Options, want)
	}
	if q.Expectation.Status != model.StatusTrue || q.Expectation.ValueType != model.ExpectSymbolic {
		t.Fatalf("expectation = %+v", q.Expectation)
	}
	if len(q.Expectation.Resources) != 1 || q.Expectation.Resources[0].Unit != "s" {
		t.Fatalf("resources = %+v", q.Expectation.Resources)
	}

	if queries[1].Formula != "E<> Gate.open" || len(queries[1].Options) != 0 {
		t.Fatalf("second query = %+v", queries[1])
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	queries := []model.Query{
		{
			Formula:  "A[] not deadlock",
			Comment:  "safety",
			Location: "train.tm:3",
			Options:  []model.Option{{Name: "order", Value: "bfs"}},
			Expectation: model.Expectation{
				ValueType: model.ExpectProbability,
				Status:    model.StatusMaybeTrue,
				Value:     "0.95",
				Resources: []model.Resource{{Name: "mem", Value: "256", Unit: "MB"}},
			},
		},
		{Formula: "E<> done"},
	}

	data, err := Encode(queries)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Encode(...)): %v\n%s", err, data)
	}
	if !reflect.DeepEqual(queries, back) {
		t.Fatalf("round trip diverged\n in: %+v\nout: %+v", queries, back)
	}
}

func TestSaveLoad(t *testing.T) {
	queries := []model.Query{
		{Formula: "A[] Train.safe", Options: []model.Option{{Name: "depth", Value: "100"}}},
	}
	path := filepath.Join(t.TempDir(), "queries.toml")
	if err := Save(path, queries); err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(queries, back) {
		t.Fatalf("disk round trip diverged: %+v", back)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{
			name: "missing formula",
			toml: "[[query]]\ncomment = \"no formula\"\n",
			want: "missing formula",
		},
		{
			name: "unknown key",
			toml: "[[query]]\nformula = \"x\"\nbogus = 1\n",
			want: "unknown key",
		},
		{
			name: "bad status",
			toml: "[[query]]\nformula = \"x\"\n[query.expectation]\nstatus = \"yes\"\n",
			want: "unknown status",
		},
		{
			name: "bad expectation type",
			toml: "[[query]]\nformula = \"x\"\n[query.expectation]\ntype = \"oracular\"\n",
			want: "unknown expectation type",
		},
		{
			name: "nameless resource",
			toml: "[[query]]\nformula = \"x\"\n[query.expectation]\nstatus = \"true\"\n[[query.expectation.resources]]\nvalue = \"1\"\n",
			want: "resource without a name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml))
			if err == nil {
				t.Fatalf("Parse accepted %q", tt.toml)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want %q", err, tt.want)
			}
		})
	}
}
