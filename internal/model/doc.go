// Package model is the in-memory document model for timed-automata
// systems and their live-sequence-chart scenarios. A Document owns
// everything: the global declarations, templates with their automaton
// bodies, instances produced by (partial) instantiation, processes,
// priorities, queries and the source position table.
//
// Construction is append-only and single-writer: a builder feeds the
// document through Add* calls in source order, then downstream passes
// read it via accessors or the Accept traversal. Entities refer to each
// other through typed IDs, never through pointers, so a whole-document
// Clone keeps every handle valid. Pointers returned by accessors are
// views into arenas and stay usable only until the next Add on the same
// container; hold IDs across mutations, not pointers.
package model
