package oteltrace

import (
	"context"

	"github.com/Zhima-Mochi/cafe-patterns/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const defaultTracerName = "cafe-patterns"

type tracer struct{ t trace.Tracer }

// New returns a tracer bound to the global provider. Spans are no-ops until
// Install (or another SDK setup) replaces it.
func New(name string) observability.Tracer {
	return NewWithProvider(name, otel.GetTracerProvider())
}

// NewWithProvider binds the tracer to an explicit provider.
func NewWithProvider(name string, tp trace.TracerProvider) observability.Tracer {
	if name == "" {
		name = defaultTracerName
	}
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &tracer{t: tp.Tracer(name)}
}

func (t *tracer) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.t.Start(ctx, name, trace.WithAttributes(attrs...))
}

// Install sets an SDK tracer provider as the global one so spans carry real
// trace and span IDs. No exporter is attached; IDs surface through the logs.
func Install(opts ...sdktrace.TracerProviderOption) (shutdown func(context.Context) error) {
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
