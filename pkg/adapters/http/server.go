package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/mael/pkg/adapters/memory"
	"github.com/aretw0/mael/pkg/schema"
)

// Renderer produces the rendered sheets and the column schema of a project.
// Each call re-reads the project so edits are visible without a restart.
type Renderer interface {
	Render(ctx context.Context) ([]memory.RenderedSheet, error)
	Schema() (*schema.ColumnConfig, error)
}

// Server serves the read-only inspection API.
type Server struct {
	Renderer Renderer
	Version  string
}

// Summary is one entry of the document listing.
type Summary struct {
	Index   int      `json:"index"`
	Title   string   `json:"title"`
	Source  string   `json:"source,omitempty"`
	Columns []string `json:"columns"`
	Rows    int      `json:"rows"`
}

// NewHandler creates the HTTP handler. metrics may be nil.
func NewHandler(renderer Renderer, version string, metrics http.Handler) http.Handler {
	server := &Server{Renderer: renderer, Version: version}

	r := chi.NewRouter()
	r.Get("/healthz", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/documents", server.ListDocuments)
	r.Get("/documents/{index}", server.GetDocument)
	r.Get("/schema", server.GetSchema)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "mael-http",
		"version": s.Version,
	})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request) ([]memory.RenderedSheet, bool) {
	sheets, err := s.Renderer.Render(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("render error: %v", err))
		slog.Error("Render failed", "error", err)
		return nil, false
	}
	return sheets, true
}

// ListDocuments handles the GET /documents request.
func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	sheets, ok := s.render(w, r)
	if !ok {
		return
	}
	out := make([]Summary, len(sheets))
	for i, sheet := range sheets {
		out[i] = Summary{
			Index:   i,
			Title:   sheet.Title,
			Source:  sheet.Source,
			Columns: sheet.Columns,
			Rows:    len(sheet.Rows),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// GetDocument handles the GET /documents/{index} request.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "index must be an integer")
		return
	}
	sheets, ok := s.render(w, r)
	if !ok {
		return
	}
	if index < 0 || index >= len(sheets) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("document %d not found", index))
		return
	}
	writeJSON(w, http.StatusOK, sheets[index])
}

// GetSchema handles the GET /schema request.
func (s *Server) GetSchema(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.Renderer.Schema()
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("schema error: %v", err))
		slog.Error("Schema load failed", "error", err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}
