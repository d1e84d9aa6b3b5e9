// Package showcase serves the component showcase: server-rendered pages
// demonstrating the shipped primitives, with render metrics, tracing, and
// a live re-render endpoint.
package showcase

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stephen9412/primitives/pkg/middleware"
	"github.com/stephen9412/primitives/pkg/primitives"
	"github.com/stephen9412/primitives/pkg/render"
	"github.com/stephen9412/primitives/pkg/ui"
	"github.com/stephen9412/primitives/pkg/vdom"
)

// Config configures the showcase server.
type Config struct {
	// Addr is the listen address (default ":8080").
	Addr string

	// Pretty enables indented HTML output.
	Pretty bool
}

// Server renders the showcase pages.
type Server struct {
	config Config
	router chi.Router
}

// New creates a showcase server with its routes and middleware wired.
func New(config Config) *Server {
	if config.Addr == "" {
		config.Addr = ":8080"
	}

	s := &Server{config: config}

	// Each server owns its registry so constructing two servers never
	// trips duplicate collector registration.
	registry := prometheus.NewRegistry()

	r := chi.NewRouter()
	r.Use(middleware.Metrics(
		middleware.WithSubsystem("showcase"),
		middleware.WithRegistry(registry),
	))
	r.Use(middleware.OTel())

	r.Get("/", s.handleIndex)
	r.Get("/tooltip", s.handleTooltip)
	r.Get("/accordion", s.handleAccordion)
	r.Get("/theme", s.handleTheme)
	r.Get("/live", s.handleLive)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	s.router = r
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the showcase server.
func (s *Server) ListenAndServe() error {
	log.Printf("showcase listening on %s", s.config.Addr)
	return http.ListenAndServe(s.config.Addr, s.router)
}

// renderPage walks the node under a fresh root owner and writes the HTML.
func (s *Server) renderPage(w http.ResponseWriter, node *vdom.VNode) {
	owner := primitives.NewOwner(nil)
	defer owner.Dispose()

	var html string
	var err error
	owner.StartRender()
	primitives.WithOwner(owner, func() {
		r := render.NewRenderer(render.Config{Pretty: s.config.Pretty})
		html, err = r.RenderToString(node)
	})
	if err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<!DOCTYPE html>\n" + html))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, page("Primitives", nav()))
}

func (s *Server) handleTooltip(w http.ResponseWriter, r *http.Request) {
	side := r.URL.Query().Get("side")
	if side == "" {
		side = "top"
	}

	body := ui.Tooltip(
		ui.TooltipContent("Saves the current document"),
		ui.TooltipSide(side),
		ui.TooltipChildren(vdom.Button(vdom.Text("Save"))),
	)
	s.renderPage(w, page("Tooltip", body))
}

func (s *Server) handleAccordion(w http.ResponseWriter, r *http.Request) {
	open := r.URL.Query().Get("open")
	if open == "" {
		open = "one"
	}

	body := ui.Accordion(
		ui.AccordionValue(open),
		ui.AccordionItems(
			ui.AccordionItem("one",
				ui.AccordionTrigger("First section"),
				ui.AccordionContent(vdom.P(vdom.Text("Contents of the first section."))),
			),
			ui.AccordionItem("two",
				ui.AccordionTrigger("Second section"),
				ui.AccordionContent(vdom.P(vdom.Text("Contents of the second section."))),
			),
		),
	)
	s.renderPage(w, page("Accordion", body))
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	theme := r.URL.Query().Get("theme")
	if theme == "" {
		theme = "dark"
	}

	body := ui.ThemeProvider(theme,
		vdom.Lazy(func() *vdom.VNode {
			return vdom.Div(
				vdom.Class("panel panel-"+ui.UseTheme()),
				vdom.Text("Current theme: "+ui.UseTheme()),
			)
		}),
	)
	s.renderPage(w, page("Theme", body))
}
