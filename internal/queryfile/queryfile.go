// Package queryfile reads and writes verification query lists as TOML.
// The format carries everything model.Query holds: formula, comment,
// source location, engine options and the expected outcome with its
// resource budgets. Queries round-trip byte-stable once options are in
// canonical (name-sorted) order, which Load and Save both enforce.
package queryfile

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"taml/internal/model"
)

type queryDoc struct {
	Queries []queryEntry `toml:"query"`
}

type queryEntry struct {
	Formula     string            `toml:"formula"`
	Comment     string            `toml:"comment,omitempty"`
	Location    string            `toml:"location,omitempty"`
	Options     map[string]string `toml:"options,omitempty"`
	Expectation *expectationEntry `toml:"expectation,omitempty"`
}

type expectationEntry struct {
	Type      string          `toml:"type,omitempty"`
	Status    string          `toml:"status,omitempty"`
	Value     string          `toml:"value,omitempty"`
	Resources []resourceEntry `toml:"resources,omitempty"`
}

type resourceEntry struct {
	Name  string `toml:"name"`
	Value string `toml:"value"`
	Unit  string `toml:"unit,omitempty"`
}

// Load reads a query file from disk.
func Load(path string) ([]model.Query, error) {
	var doc queryDoc
	meta, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return decode(&doc, meta, path)
}

// Parse reads a query list from raw TOML.
func Parse(data []byte) ([]model.Query, error) {
	var doc queryDoc
	meta, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return decode(&doc, meta, "query list")
}

func decode(doc *queryDoc, meta toml.MetaData, origin string) ([]model.Query, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", origin, undecoded[0].String())
	}
	queries := make([]model.Query, 0, len(doc.Queries))
	for i := range doc.Queries {
		q, err := fromEntry(&doc.Queries[i])
		if err != nil {
			return nil, fmt.Errorf("%s: query %d: %w", origin, i+1, err)
		}
		queries = append(queries, q)
	}
	return queries, nil
}

// Save writes the queries to path, keeping the existing file mode when
// the file is already there.
func Save(path string, queries []model.Query) error {
	data, err := Encode(queries)
	if err != nil {
		return err
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Encode renders the queries as TOML.
func Encode(queries []model.Query) ([]byte, error) {
	doc := queryDoc{Queries: make([]queryEntry, 0, len(queries))}
	for i := range queries {
		doc.Queries = append(doc.Queries, toEntry(&queries[i]))
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

func fromEntry(e *queryEntry) (model.Query, error) {
	if e.Formula == "" {
		return model.Query{}, fmt.Errorf("missing formula")
	}
	q := model.Query{
		Formula:  e.Formula,
		Comment:  e.Comment,
		Location: e.Location,
	}
	if len(e.Options) > 0 {
		names := make([]string, 0, len(e.Options))
		for name := range e.Options {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			q.Options = append(q.Options, model.Option{Name: name, Value: e.Options[name]})
		}
	}
	if e.Expectation != nil {
		valueType, err := parseExpectationType(e.Expectation.Type)
		if err != nil {
			return model.Query{}, err
		}
		status, err := parseStatus(e.Expectation.Status)
		if err != nil {
			return model.Query{}, err
		}
		q.Expectation = model.Expectation{
			ValueType: valueType,
			Status:    status,
			Value:     e.Expectation.Value,
		}
		for _, r := range e.Expectation.Resources {
			if r.Name == "" {
				return model.Query{}, fmt.Errorf("resource without a name")
			}
			q.Expectation.Resources = append(q.Expectation.Resources, model.Resource{
				Name:  r.Name,
				Value: r.Value,
				Unit:  r.Unit,
			})
		}
	}
	return q, nil
}

func toEntry(q *model.Query) queryEntry {
	e := queryEntry{
		Formula:  q.Formula,
		Comment:  q.Comment,
		Location: q.Location,
	}
	if len(q.Options) > 0 {
		e.Options = make(map[string]string, len(q.Options))
		for _, opt := range q.Options {
			e.Options[opt.Name] = opt.Value
		}
	}
	if !expectationEmpty(&q.Expectation) {
		exp := &expectationEntry{
			Type:   q.Expectation.ValueType.String(),
			Status: q.Expectation.Status.String(),
			Value:  q.Expectation.Value,
		}
		for _, r := range q.Expectation.Resources {
			exp.Resources = append(exp.Resources, resourceEntry{
				Name:  r.Name,
				Value: r.Value,
				Unit:  r.Unit,
			})
		}
		e.Expectation = exp
	}
	return e
}

func expectationEmpty(e *model.Expectation) bool {
	return e.ValueType == model.ExpectSymbolic &&
		e.Status == model.StatusUnknown &&
		e.Value == "" &&
		len(e.Resources) == 0
}

func parseStatus(s string) (model.QueryStatus, error) {
	switch s {
	case "", "unknown":
		return model.StatusUnknown, nil
	case "true":
		return model.StatusTrue, nil
	case "false":
		return model.StatusFalse, nil
	case "maybe-true":
		return model.StatusMaybeTrue, nil
	case "maybe-false":
		return model.StatusMaybeFalse, nil
	}
	return model.StatusUnknown, fmt.Errorf("unknown status %q", s)
}

func parseExpectationType(s string) (model.ExpectationType, error) {
	switch s {
	case "", "symbolic":
		return model.ExpectSymbolic, nil
	case "probability":
		return model.ExpectProbability, nil
	case "numeric":
		return model.ExpectNumericValue, nil
	case "error":
		return model.ExpectErrorValue, nil
	}
	return model.ExpectSymbolic, fmt.Errorf("unknown expectation type %q", s)
}
