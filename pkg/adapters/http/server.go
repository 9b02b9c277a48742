package http

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aretw0/cmdform"
	"github.com/aretw0/cmdform/internal/dto"
	"github.com/aretw0/cmdform/pkg/adapters/openapi"
	"github.com/aretw0/cmdform/pkg/domain"
	"github.com/aretw0/cmdform/pkg/ports"
	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Server serves the command tree of a FormEngine as HTML forms and JSON.
type Server struct {
	Engine  ports.FormEngine
	Cache   ports.PageCache
	Metrics *Metrics

	title  string
	action string
	logger *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger for request and error logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithCache caches rendered form pages.
func WithCache(cache ports.PageCache) Option {
	return func(s *Server) {
		s.Cache = cache
	}
}

// WithMetrics records request metrics and mounts /metrics.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		s.Metrics = m
	}
}

// WithTitle sets the page title. Defaults to the root command name.
func WithTitle(title string) Option {
	return func(s *Server) {
		s.title = title
	}
}

// WithFormAction makes forms submit to base + "/" + path. Without it forms
// are rendered without a submit button.
func WithFormAction(base string) Option {
	return func(s *Server) {
		s.action = strings.TrimSuffix(base, "/")
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine ports.FormEngine, opts ...Option) http.Handler {
	s := &Server{
		Engine: engine,
		title:  engine.Root().Name,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(instrument(s.logger, s.Metrics))

	r.Get("/", s.GetIndex)
	r.Get("/form/*", s.GetForm)
	r.Get("/api/form/*", s.GetFormJSON)
	r.Get("/api/tree", s.GetTree)
	r.Get("/openapi.json", s.GetOpenAPI)
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	}
	return r
}

// GetIndex handles the GET / request.
func (s *Server) GetIndex(w http.ResponseWriter, r *http.Request) {
	root := s.Engine.Root()
	s.render(w, "index", indexPage{
		Title: s.title,
		Root:  root,
		Tree:  dto.NewTreeNode(nil, root),
	})
}

// GetForm handles the GET /form/{path} request.
func (s *Server) GetForm(w http.ResponseWriter, r *http.Request) {
	path, ok := s.commandPath(w, r)
	if !ok {
		return
	}

	cacheKey := "form:" + path
	if s.Cache != nil {
		page, hit, err := s.Cache.Get(r.Context(), cacheKey)
		switch {
		case err != nil:
			s.Metrics.cacheResult("error")
			s.logger.Warn("Page cache read failed", "path", path, "error", err)
		case hit:
			s.Metrics.cacheResult("hit")
			writeHTML(w, page)
			return
		default:
			s.Metrics.cacheResult("miss")
		}
	}

	form, err := s.Engine.Form(r.Context(), path, domain.WebRenderOptions())
	if err != nil {
		s.formError(w, path, err)
		return
	}

	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, "form", s.newFormPage(form)); err != nil {
		http.Error(w, "Failed to render form", http.StatusInternalServerError)
		s.logger.Error("Form template failed", "path", path, "error", err)
		return
	}

	if s.Cache != nil {
		if err := s.Cache.Set(r.Context(), cacheKey, buf.Bytes()); err != nil {
			s.logger.Warn("Page cache write failed", "path", path, "error", err)
		}
	}
	writeHTML(w, buf.Bytes())
}

// GetFormJSON handles the GET /api/form/{path} request.
func (s *Server) GetFormJSON(w http.ResponseWriter, r *http.Request) {
	path, ok := s.commandPath(w, r)
	if !ok {
		return
	}

	form, err := s.Engine.Form(r.Context(), path, domain.WebRenderOptions())
	if err != nil {
		s.formError(w, path, err)
		return
	}
	s.writeJSON(w, dto.NewFormResponse(form))
}

// GetTree handles the GET /api/tree request.
func (s *Server) GetTree(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, dto.NewTreeNode(nil, s.Engine.Root()))
}

// GetOpenAPI handles the GET /openapi.json request.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	doc, err := openapi.Build(s.Engine.Root(), s.title, strings.TrimSpace(cmdform.Version))
	if err != nil {
		http.Error(w, "Failed to build OpenAPI document", http.StatusInternalServerError)
		s.logger.Error("OpenAPI build failed", "error", err)
		return
	}
	s.writeJSON(w, doc)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"app":     "cmdform-http",
		"version": strings.TrimSpace(cmdform.Version),
		"root":    s.Engine.Root().Name,
	})
}

// commandPath extracts and sanitizes the wildcard path of the request.
func (s *Server) commandPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "*")
	path := raw
	var err error
	// chi routes on RawPath when it is set; only then is the param still escaped.
	if r.URL.RawPath != "" {
		path, err = url.PathUnescape(raw)
	}
	if err == nil {
		path, err = SanitizePath(path)
	}
	if err != nil {
		http.Error(w, "Invalid command path: "+err.Error(), http.StatusBadRequest)
		s.logger.Warn("Command path rejected", "error", err, "size", len(raw))
		return "", false
	}
	return path, true
}

func (s *Server) formError(w http.ResponseWriter, path string, err error) {
	if errors.Is(err, domain.ErrCommandNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, "Failed to build form", http.StatusInternalServerError)
	s.logger.Error("Form build failed", "path", path, "error", err)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		s.logger.Error("Template failed", "template", name, "error", err)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "error", err)
	}
}

func writeHTML(w http.ResponseWriter, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}
