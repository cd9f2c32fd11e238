// Package trace is the event log of thriftfmt.
//
// The formatter has no printf-logging: batch progress, phase boundaries and
// per-file work are reported as trace events, written to a stream (text or
// NDJSON) and/or kept in a ring buffer that is dumped when a run fails.
//
// # Usage
//
//	thriftfmt fmt --trace=- --trace-level=detail idl/
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only the ring dump on failure
//   - LevelPhase: driver and phase boundaries (lex, parse, patch, render)
//   - LevelDetail: per-file events
//   - LevelDebug: + cache hits and cache errors
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePhase, "parse", parentID)
//	defer span.End("")
package trace
