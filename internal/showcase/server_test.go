package showcase

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func get(t *testing.T, handler http.Handler, path string) (int, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec.Code, rec.Body.String()
}

func TestIndexPage(t *testing.T) {
	s := New(Config{})

	status, body := get(t, s.Handler(), "/")

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.HasPrefix(body, "<!DOCTYPE html>") {
		t.Errorf("body should start with a doctype, got %q", body[:min(40, len(body))])
	}
	if !strings.Contains(body, `href="/tooltip"`) {
		t.Errorf("index should link to the tooltip page")
	}
}

func TestTooltipPage(t *testing.T) {
	s := New(Config{})

	status, body := get(t, s.Handler(), "/tooltip?side=bottom")

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.Contains(body, "Saves the current document") {
		t.Errorf("tooltip content missing from page")
	}
	if !strings.Contains(body, `data-side="bottom"`) {
		t.Errorf("side query param should reach the popup, got %q", body)
	}
}

func TestAccordionPage(t *testing.T) {
	s := New(Config{})

	status, body := get(t, s.Handler(), "/accordion?open=two")

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.Contains(body, "Contents of the second section.") {
		t.Errorf("accordion contents missing from page")
	}
	if !strings.Contains(body, `id="accordion-content-one"`) {
		t.Errorf("closed item should still render its panel")
	}
}

func TestThemePage(t *testing.T) {
	s := New(Config{})

	status, body := get(t, s.Handler(), "/theme?theme=dark")

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.Contains(body, "Current theme: dark") {
		t.Errorf("theme should reach the consumer, got %q", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(Config{})

	// Render a page first so the counters exist.
	get(t, s.Handler(), "/tooltip")

	status, body := get(t, s.Handler(), "/metrics")

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.Contains(body, "primitives_showcase_renders_total") {
		t.Errorf("metrics output missing render counter")
	}
}

func TestLiveRerender(t *testing.T) {
	s := New(Config{})
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(liveRequest{Content: "updated hint", Side: "left", Open: true}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var resp liveResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if !strings.Contains(resp.HTML, "updated hint") {
		t.Errorf("re-rendered fragment missing content, got %q", resp.HTML)
	}
	if !strings.Contains(resp.HTML, `data-side="left"`) {
		t.Errorf("re-rendered fragment missing side, got %q", resp.HTML)
	}
}
