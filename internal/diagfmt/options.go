package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color       bool
	Max         int // output cap across both logs, 0 = all
	ShowContext bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // resolve spans to path:line
	Max              int  // output cap, does not touch the bag
}
