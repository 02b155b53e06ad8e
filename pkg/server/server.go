package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/mermaidkit/pkg/errors"
	"github.com/matzehuels/mermaidkit/pkg/render/ink"
	"github.com/matzehuels/mermaidkit/pkg/store"
)

// MaxScriptBytes bounds request bodies.
const MaxScriptBytes = 1 << 20

// Renderer produces images from scripts. *ink.Client implements it.
type Renderer interface {
	Fetch(ctx context.Context, script string, format ink.Format, opts ink.Options) ([]byte, error)
}

// Config configures a [Server]. Renderer and Store are required.
type Config struct {
	Renderer Renderer
	Store    store.Store
	Logger   *log.Logger
}

// Server is the HTTP front end.
type Server struct {
	router   chi.Router
	renderer Renderer
	store    store.Store
	logger   *log.Logger
}

// New builds the router.
func New(cfg Config) (*Server, error) {
	if cfg.Renderer == nil || cfg.Store == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "server needs a renderer and a store")
	}
	s := &Server{
		renderer: cfg.Renderer,
		store:    cfg.Store,
		logger:   cfg.Logger,
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Route("/examples", func(r chi.Router) {
		r.Get("/", s.handleListExamples)
		r.Get("/{family}", s.handleExample)
	})
	r.Post("/render/{format}", s.handleRender)
	r.Route("/diagrams", func(r chi.Router) {
		r.Post("/", s.handleCreateDiagram)
		r.Get("/", s.handleListDiagrams)
		r.Get("/{id}", s.handleGetDiagram)
		r.Delete("/{id}", s.handleDeleteDiagram)
		r.Get("/{id}/{format}", s.handleRenderDiagram)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errors.New(errors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
	})
	s.router = r
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "listen on %s", addr)
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// StatusFor maps an error to an HTTP status.
func StatusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidExtension, errors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeNetwork:
		return http.StatusBadGateway
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

type errorBody struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, StatusFor(err), errorBody{Code: code, Error: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
