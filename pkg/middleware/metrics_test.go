package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func gatherFamily(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	return nil
}

func TestMetricsCountsRenders(t *testing.T) {
	reg := prometheus.NewRegistry()
	handler := Metrics(WithRegistry(reg), WithNamespace("test"))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/tooltip", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	family := gatherFamily(t, reg, "test_renders_total")
	if family == nil {
		t.Fatal("test_renders_total not registered")
	}

	m := family.GetMetric()
	if len(m) != 1 {
		t.Fatalf("metric count = %d, want 1", len(m))
	}
	if got := m[0].GetCounter().GetValue(); got != 3 {
		t.Errorf("renders_total = %v, want 3", got)
	}
	if got := m[0].GetLabel()[0].GetValue(); got != "/tooltip" {
		t.Errorf("path label = %q, want /tooltip", got)
	}
}

func TestMetricsCountsServerErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	handler := Metrics(WithRegistry(reg), WithNamespace("test"))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/broken", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	family := gatherFamily(t, reg, "test_render_errors_total")
	if family == nil {
		t.Fatal("test_render_errors_total not registered")
	}
	if got := family.GetMetric()[0].GetCounter().GetValue(); got != 1 {
		t.Errorf("render_errors_total = %v, want 1", got)
	}
}

func TestMetricsIgnoresClientErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	handler := Metrics(WithRegistry(reg), WithNamespace("test"))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	family := gatherFamily(t, reg, "test_render_errors_total")
	if family != nil && len(family.GetMetric()) > 0 {
		if got := family.GetMetric()[0].GetCounter().GetValue(); got != 0 {
			t.Errorf("render_errors_total = %v, want 0 for a 404", got)
		}
	}
}

func TestMetricsSubsystemAndConstLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	handler := Metrics(
		WithRegistry(reg),
		WithNamespace("test"),
		WithSubsystem("showcase"),
		WithConstLabels(prometheus.Labels{"instance": "a"}),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	family := gatherFamily(t, reg, "test_showcase_renders_total")
	if family == nil {
		t.Fatal("subsystem-qualified metric not registered")
	}

	labels := family.GetMetric()[0].GetLabel()
	found := false
	for _, l := range labels {
		if l.GetName() == "instance" && l.GetValue() == "a" {
			found = true
		}
	}
	if !found {
		t.Errorf("const label instance=a missing, labels = %v", labels)
	}
}

func TestStatusRecorderCapturesStatus(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	rec.WriteHeader(http.StatusTeapot)

	if rec.status != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.status, http.StatusTeapot)
	}
}
