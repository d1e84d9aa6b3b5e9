// Package middleware provides HTTP middleware for servers that render
// primitives: Prometheus metrics for page renders and OpenTelemetry
// tracing around the render path.
//
// Both are standard func(http.Handler) http.Handler middleware and
// compose with chi:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Metrics())
//	r.Use(middleware.OTel())
package middleware
