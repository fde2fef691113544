package middleware

import (
	"fmt"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name.
const defaultTracerName = "varselect"

// TracingConfig configures the tracing middleware.
type TracingConfig struct {
	// TracerName is the name of the tracer (default: "varselect").
	TracerName string

	// TracerProvider overrides the global provider.
	TracerProvider trace.TracerProvider

	// Filter determines which requests to trace.
	// If nil, all requests are traced.
	Filter func(r *http.Request) bool
}

// TracingOption configures the tracing middleware.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(c *TracingConfig) {
		c.TracerProvider = tp
	}
}

// WithFilter sets a filter function for requests.
func WithFilter(filter func(r *http.Request) bool) TracingOption {
	return func(c *TracingConfig) {
		c.Filter = filter
	}
}

// Tracing creates middleware that starts a server span for every request.
//
// The span is stored in the request context, so handlers and the clients
// they call inherit it. Responses with status 500 and above mark the span
// as an error.
func Tracing(opts ...TracingOption) func(http.Handler) http.Handler {
	config := TracingConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}

	tp := config.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	tracer := tp.Tracer(config.TracerName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Filter != nil && !config.Filter(r) {
				next.ServeHTTP(w, r)
				return
			}

			ctx, span := tracer.Start(r.Context(), fmt.Sprintf("%s %s", r.Method, r.URL.Path),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
				),
			)
			defer span.End()

			if id := RequestIDFromContext(r.Context()); id != "" {
				span.SetAttributes(attribute.String("http.request_id", id))
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			span.SetAttributes(attribute.Int("http.status_code", status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			} else {
				span.SetStatus(codes.Ok, "")
			}
		})
	}
}
