// Package diag holds the diagnostics sink for document construction and the
// value-typed semantic error conditions raised around it.
//
// Two channels exist. Structural diagnostics are position-tagged messages
// accumulated on a Bag while a builder populates a document; they never abort
// construction, so a single pass can surface as many problems as possible.
// Semantic conditions (unknown identifier, duplicate definition, ...) are
// TypeError values: a code plus the offending name substituted into a message
// template. They are returned, never panicked, and the caller decides whether
// to record them on a Bag, surface them, or both.
//
// The Bag is deliberately a standalone object rather than a field buried in
// the document aggregate: read-only passes over a finished document can still
// append diagnostics without touching document state, and tests can inspect
// the sink in isolation.
//
// Rendering lives in internal/diagfmt; this package is data only.
package diag
