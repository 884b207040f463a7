// Package trace records what the front end is doing: driver steps, passes,
// per-file work and, at the most verbose level, every grammar production the
// parser enters and every token the lexer produces.
//
// Enable tracing via command-line flags:
//
//	occ parse --trace=- --trace-level=debug main.c
//
// Implementations:
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes each event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events in memory
//
// Tracers travel through the pipeline via context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	ctx, span := trace.Start(ctx, trace.ScopePass, "parse")
//	defer span.End("")
//
// Directory runs tag each file's work with trace.WithTask so interleaved
// events from parallel files can be told apart.
package trace
