package server

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sortiz4/muon"
	"github.com/sortiz4/muon/internal/errors"
	"github.com/sortiz4/muon/pkg/markup"
)

// PageFunc builds the element tree for a request.
type PageFunc func(r *http.Request) markup.Element

// Config configures a Server.
type Config struct {
	// Engine renders pages. If nil, muon.Default() is used.
	Engine *muon.Engine

	// Logger is the structured logger for requests.
	// If nil, the engine's logger is used.
	Logger *slog.Logger

	// Metrics serves the metrics endpoint. If nil, no endpoint is mounted.
	Metrics http.Handler

	// MetricsPath is where Metrics is mounted (default: "/metrics").
	MetricsPath string

	// Middleware is extra request middleware, applied after the built-ins.
	Middleware []func(http.Handler) http.Handler
}

// Server routes requests to registered pages.
type Server struct {
	engine *muon.Engine
	logger *slog.Logger
	router chi.Router

	mu    sync.RWMutex
	pages map[string]struct{}
}

// New creates a Server with the given configuration.
func New(cfg Config) *Server {
	engine := cfg.Engine
	if engine == nil {
		engine = muon.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = engine.Logger()
	}

	s := &Server{
		engine: engine,
		logger: logger,
		router: chi.NewRouter(),
		pages:  make(map[string]struct{}),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.Recoverer)
	for _, mw := range cfg.Middleware {
		s.router.Use(mw)
	}

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		Response{Status: http.StatusOK, ContentType: "text/plain; charset=utf-8", Body: "ok"}.ServeHTTP(w, r)
	})
	if cfg.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		s.router.Handle(path, cfg.Metrics)
	}
	s.router.NotFound(s.notFound)

	return s
}

// Page registers page at path. Registering a path twice replaces the page.
func (s *Server) Page(path string, page PageFunc) {
	s.mu.Lock()
	s.pages[path] = struct{}{}
	s.mu.Unlock()

	s.router.Get(path, func(w http.ResponseWriter, r *http.Request) {
		s.servePage(w, r, page)
	})
}

// Pages returns the registered paths in sorted order.
func (s *Server) Pages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.pages))
	for p := range s.pages {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string, readTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request, page PageFunc) {
	build := func(...any) markup.Element { return page(r) }

	resp, err := muon.Render(r.Context(), s.engine, build, HTML)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "page render failed",
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	resp.ServeHTTP(w, r)
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	err := errors.New("E160").WithDetail(r.URL.Path)
	s.logger.DebugContext(r.Context(), "no page", "path", r.URL.Path, "error", err)
	http.NotFound(w, r)
}

// logRequests writes one log line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.logger.InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
