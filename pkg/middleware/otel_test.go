package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestOTelPassesRequestThrough(t *testing.T) {
	handler := OTel()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		io.WriteString(w, "brewing")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tooltip", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
	if rec.Body.String() != "brewing" {
		t.Errorf("body = %q, want brewing", rec.Body.String())
	}
}

func TestOTelFilterSkipsTracing(t *testing.T) {
	handler := OTel(
		WithRequestFilter(func(r *http.Request) bool {
			return r.URL.Path != "/metrics"
		}),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("filtered request should still be served, status = %d", rec.Code)
	}
}

func TestOTelAttributeExtractorRuns(t *testing.T) {
	extracted := false
	handler := OTel(
		WithTracerName("test"),
		WithAttributeExtractor(func(r *http.Request) []attribute.KeyValue {
			extracted = true
			return []attribute.KeyValue{attribute.String("render.page", r.URL.Path)}
		}),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/accordion", nil))

	if !extracted {
		t.Error("attribute extractor should run for traced requests")
	}
}
