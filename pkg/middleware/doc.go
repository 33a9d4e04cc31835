// Package middleware provides render middleware for muon engines.
//
// This package includes:
//   - OpenTelemetry tracing: one span per rendered element
//   - Prometheus metrics: render counts, durations, output sizes and errors
//
// # OpenTelemetry Middleware
//
//	engine := muon.New(muon.Config{
//	    Middleware: []muon.Middleware{
//	        middleware.OpenTelemetry(middleware.WithTracerName("my-site")),
//	    },
//	})
//
// The tracer comes from the global provider unless WithTracerProvider is
// given. Configure the global provider in main() before rendering.
//
// # Prometheus Metrics
//
//	metrics := middleware.NewMetrics(middleware.WithNamespace("site"))
//	engine := muon.New(muon.Config{
//	    Middleware: []muon.Middleware{metrics.Middleware()},
//	})
//	http.Handle("/metrics", promhttp.Handler())
//
// Metrics collected (namespace "muon" by default):
//   - muon_renders_total: Counter of renders by element and status
//   - muon_render_duration_seconds: Histogram of render duration by element
//   - muon_render_bytes: Histogram of output size by element
//   - muon_render_errors_total: Counter of failed renders by element and error code
package middleware
