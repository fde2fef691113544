// Package middleware provides HTTP middleware and guard instrumentation for
// varselect.
//
// This package includes:
//   - OpenTelemetry tracing middleware
//   - Prometheus metrics middleware and a guard outcome observer
//   - Request ID and structured access logging
//
// All middleware has the func(http.Handler) http.Handler shape used by chi:
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	r := chi.NewRouter()
//	r.Use(
//	    middleware.RequestID,
//	    middleware.AccessLog(logger),
//	    middleware.Tracing(middleware.WithTracerName("varselect")),
//	    m.Handler,
//	)
//
// # Prometheus Metrics
//
//   - varselect_http_requests_total: requests by method and status
//   - varselect_http_request_duration_seconds: request duration histogram
//   - varselect_guard_submissions_total: guarded submissions by outcome
//
// Expose them with promhttp.HandlerFor on the same registry.
//
// # Tracing
//
// The tracer comes from the global OpenTelemetry provider unless
// WithTracerProvider is given. Configure the provider in main() before
// starting the server; without one, spans are no-ops.
package middleware
