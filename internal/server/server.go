// Package server hosts the documentation files over HTTP so a page or a
// remote docpeek can retrieve them.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/studiowebux/docpeek/internal/content"
	"github.com/studiowebux/docpeek/internal/discovery"
	"github.com/studiowebux/docpeek/internal/fetcher"
	"github.com/studiowebux/docpeek/internal/logger"
	"github.com/studiowebux/docpeek/internal/render"
	"github.com/studiowebux/docpeek/internal/types"
)

// Config holds server configuration
type Config struct {
	Addr     string
	AllowAll bool // allow all CORS origins
}

// Server serves raw and rendered files from a content manager
type Server struct {
	cfg        Config
	content    *content.Manager
	renderers  *render.Set
	controls   []types.Control
	files      map[types.FileID]bool
	log        *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. renderers should be an HTML set from
// render.SelectHTML. Only files named by controls are served.
func New(cfg Config, m *content.Manager, renderers *render.Set, controls []types.Control, log *zap.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		content:   m,
		renderers: renderers,
		controls:  controls,
		files:     make(map[types.FileID]bool),
		log:       logger.OrNop(log),
	}
	for _, file := range discovery.UniqueFiles(controls) {
		s.files[file] = true
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/api/files", s.handleFiles)
	r.Get("/files/*", s.handleRaw)
	r.Get("/view/*", s.handleView)

	return r
}

// Router returns the chi router, mostly for tests
func (s *Server) Router() chi.Router { return s.router }

// Start listens on the configured address until Shutdown
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info("Server listening", zap.String("addr", s.cfg.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving on %s: %w", s.cfg.Addr, err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	rows := discovery.Rows(s.controls)
	cache := s.content.Cache()
	for i := range rows {
		rows[i].Cached = cache.Has(rows[i].File)
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleRaw(w http.ResponseWriter, r *http.Request) {
	file, ok := s.discovered(w, r)
	if !ok {
		return
	}
	text, err := s.content.GetContent(r.Context(), file)
	if err != nil {
		s.writeFetchError(w, file, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

// discovered returns the requested identifier, answering 404 when no
// control names it
func (s *Server) discovered(w http.ResponseWriter, r *http.Request) (types.FileID, bool) {
	file := chi.URLParam(r, "*")
	if !s.files[file] {
		s.log.Warn("Rejected undiscovered file", zap.String("file", file))
		http.NotFound(w, r)
		return "", false
	}
	return file, true
}

var viewPage = template.Must(template.New("view").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.File}}</title>
</head>
<body>
<h1 class="file-title">{{.File}} <span class="badge badge-{{.Mode}}">{{.Mode}}</span></h1>
<div class="modal-body">{{.Body}}</div>
</body>
</html>
`))

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	file, ok := s.discovered(w, r)
	if !ok {
		return
	}
	text, err := s.content.GetContent(r.Context(), file)
	if err != nil {
		s.writeFetchError(w, file, err)
		return
	}

	body, err := s.renderers.Format(file, text)
	if err != nil {
		s.log.Error("Failed to render", zap.String("file", file), zap.Error(err))
		http.Error(w, "failed to render "+file, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = viewPage.Execute(w, struct {
		File string
		Mode types.DisplayMode
		Body template.HTML
	}{file, types.Classify(file), template.HTML(body)}) // renderers escape their input
	if err != nil {
		s.log.Error("Failed to write view", zap.String("file", file), zap.Error(err))
	}
}

// writeFetchError maps a retrieval failure to a status code. Source
// statuses below 500 are passed through, anything else is a bad gateway.
func (s *Server) writeFetchError(w http.ResponseWriter, file string, err error) {
	status := http.StatusBadGateway
	var statusErr *fetcher.StatusError
	if errors.As(err, &statusErr) && statusErr.Status >= 400 && statusErr.Status < 500 {
		status = statusErr.Status
	}

	s.log.Warn("Failed to serve", zap.String("file", file), zap.Int("status", status), zap.Error(err))
	http.Error(w, strings.TrimSpace(err.Error()), status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
