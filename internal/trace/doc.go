// Package trace provides a tracing subsystem for the taml analysis passes.
//
// Tracing tracks document analysis phases and per-template work so that slow
// or stuck passes can be diagnosed without a debugger.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	taml scenario --trace=- --trace-level=phase
//
// # Architecture
//
// The package provides two tracer implementations:
//
//   - NopTracer: zero-overhead no-op tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//
// # Levels
//
// Tracing verbosity is controlled by levels:
//
//   - LevelOff: no tracing
//   - LevelPhase: driver and pass boundaries
//   - LevelDetail: per-template events
//   - LevelDebug: everything
//
// # Scopes
//
// Events are categorized by scope:
//
//   - ScopeDriver: top-level CLI operations
//   - ScopePass: analysis passes (stats, explore)
//   - ScopeTemplate: per-template processing
//
// # Context Propagation
//
// Tracers are propagated through the analysis pipeline via context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "stats", parentID)
//	defer span.End("")
package trace
