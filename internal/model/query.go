package model

// QueryStatus is the expected verdict recorded with a query.
type QueryStatus uint8

const (
	StatusUnknown QueryStatus = iota
	StatusTrue
	StatusFalse
	StatusMaybeTrue
	StatusMaybeFalse
)

var statusStrings = [...]string{
	StatusUnknown:    "unknown",
	StatusTrue:       "true",
	StatusFalse:      "false",
	StatusMaybeTrue:  "maybe-true",
	StatusMaybeFalse: "maybe-false",
}

func (s QueryStatus) String() string {
	if int(s) < len(statusStrings) {
		return statusStrings[s]
	}
	return "unknown"
}

// ExpectationType says how the expected value of a query is stated.
type ExpectationType uint8

const (
	ExpectSymbolic ExpectationType = iota
	ExpectProbability
	ExpectNumericValue
	ExpectErrorValue
)

var expectationStrings = [...]string{
	ExpectSymbolic:     "symbolic",
	ExpectProbability:  "probability",
	ExpectNumericValue: "numeric",
	ExpectErrorValue:   "error",
}

func (t ExpectationType) String() string {
	if int(t) < len(expectationStrings) {
		return expectationStrings[t]
	}
	return "symbolic"
}

// Option is a named engine option attached to a query or the model.
type Option struct {
	Name  string
	Value string
}

// Resource is an expected resource consumption entry, e.g. a time or
// memory budget. Unit is empty when the value carries its own.
type Resource struct {
	Name  string
	Value string
	Unit  string
}

// Expectation is the expected outcome of running a query.
type Expectation struct {
	ValueType ExpectationType
	Status    QueryStatus
	Value     string
	Resources []Resource
}

func (e *Expectation) clone() Expectation {
	out := *e
	out.Resources = append([]Resource(nil), e.Resources...)
	return out
}

// Query is a verification query carried alongside the model. It is
// independent of the automaton structure and round-trips through the
// toolchain untouched.
type Query struct {
	Formula     string
	Comment     string
	Options     []Option
	Expectation Expectation
	Location    string
}

func (q *Query) clone() Query {
	out := *q
	out.Options = append([]Option(nil), q.Options...)
	out.Expectation = q.Expectation.clone()
	return out
}

// SupportedMethods flags which analysis methods apply to a document.
type SupportedMethods struct {
	Symbolic   bool
	Stochastic bool
	Concrete   bool
}
