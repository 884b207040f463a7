package trace

import "context"

type (
	tracerKey struct{}
	spanKey   struct{}
)

// FromContext returns the tracer stored in ctx or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// WithTracer attaches t to ctx. A nil tracer is stored as Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// SpanContext is the parent link handed to Begin and Point.
// Task is the 1-based index of the file a directory run is working on,
// 0 for driver-level work and single-file commands.
type SpanContext struct {
	SpanID uint64
	Task   uint32
}

// CurrentSpan returns the span context carried by ctx.
func CurrentSpan(ctx context.Context) SpanContext {
	if ctx == nil {
		return SpanContext{}
	}
	sc, _ := ctx.Value(spanKey{}).(SpanContext)
	return sc
}

// WithSpanContext replaces the span context carried by ctx.
func WithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	return context.WithValue(ctx, spanKey{}, sc)
}

// WithTask tags ctx with the index of the file being processed. Spans opened
// below it keep the current parent.
func WithTask(ctx context.Context, task int) context.Context {
	sc := CurrentSpan(ctx)
	sc.Task = uint32(task) //nolint:gosec // индекс файла, не переполняется
	return WithSpanContext(ctx, sc)
}

// Start opens a span under the one carried by ctx, using the tracer from
// ctx, and returns a context whose children attach to the new span.
func Start(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	span := Begin(FromContext(ctx), scope, name, CurrentSpan(ctx))
	if span.ID() == 0 {
		return ctx, span
	}
	return WithSpanContext(ctx, span.Context()), span
}
