// Package http serves the dashboard page and its JSON API over chi.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/gridview"
	"github.com/aretw0/gridview/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dashboard defines the interface the HTTP layer needs from the core.
type Dashboard interface {
	Facets() domain.Facets
	Query(sel domain.Selection) domain.Tables
	Figures(sel domain.Selection) (domain.Figure, domain.Figure)
}

// Server holds the handler dependencies.
type Server struct {
	Dashboard Dashboard
	Logger    *slog.Logger

	queries  prometheus.Counter
	duration prometheus.Histogram
}

// FacetsResponse is the payload of GET /api/facets.
type FacetsResponse struct {
	domain.Facets
	Default domain.Selection `json:"default_selection"`
}

// FiguresResponse is the payload of POST /api/figures.
type FiguresResponse struct {
	StateChart domain.Figure `json:"state_chart"`
	TimeChart  domain.Figure `json:"time_chart"`
}

// NewHandler creates the HTTP handler for the dashboard.
// Metrics are registered on a private registry so multiple handlers (tests)
// can coexist in one process.
func NewHandler(dashboard Dashboard, logger *slog.Logger) http.Handler {
	s := &Server{
		Dashboard: dashboard,
		Logger:    logger,
		queries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gridview_queries_total",
			Help: "Total number of dashboard queries",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "gridview_query_duration_seconds",
			Help: "Duration of filter and aggregation per query",
		}),
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(s.queries, s.duration)

	r := chi.NewRouter()
	r.Get("/", s.Index)
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/api/facets", s.GetFacets)
	r.Post("/api/query", s.PostQuery)
	r.Post("/api/figures", s.PostFigures)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}

// Index serves the embedded dashboard page.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(dashboardHTML))
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"app":         "gridview-http",
		"version":     gridview.Version,
		"api_version": "0.1.0",
	})
}

// GetFacets handles the GET /api/facets request.
func (s *Server) GetFacets(w http.ResponseWriter, r *http.Request) {
	facets := s.Dashboard.Facets()
	s.writeJSON(w, FacetsResponse{
		Facets:  facets,
		Default: facets.DefaultSelection(),
	})
}

// PostQuery handles the POST /api/query request: selection in, tables out.
func (s *Server) PostQuery(w http.ResponseWriter, r *http.Request) {
	sel, ok := s.decodeSelection(w, r)
	if !ok {
		return
	}
	var tables domain.Tables
	s.observe(func() {
		tables = s.Dashboard.Query(sel)
	})
	s.writeJSON(w, tables)
}

// PostFigures handles the POST /api/figures request: selection in, two
// freshly built figure specs out.
func (s *Server) PostFigures(w http.ResponseWriter, r *http.Request) {
	sel, ok := s.decodeSelection(w, r)
	if !ok {
		return
	}
	var resp FiguresResponse
	s.observe(func() {
		resp.StateChart, resp.TimeChart = s.Dashboard.Figures(sel)
	})
	s.writeJSON(w, resp)
}

// -- Helpers --

func (s *Server) decodeSelection(w http.ResponseWriter, r *http.Request) (domain.Selection, bool) {
	var sel domain.Selection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return domain.Selection{}, false
	}
	return sel, true
}

func (s *Server) observe(fn func()) {
	start := time.Now()
	fn()
	s.duration.Observe(time.Since(start).Seconds())
	s.queries.Inc()
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
