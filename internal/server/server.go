// Package server exposes the reduction engine over HTTP. It serves a small
// JSON API for on-demand reciprocal sums, a Prometheus metrics endpoint, and
// an optional static file tree.
package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/agbru/recipsum/internal/logging"
	"github.com/agbru/recipsum/internal/reduce"
)

const (
	// ServerName is advertised in the Server response header.
	ServerName = "recipsum/1.0"

	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server wires the HTTP handlers, metrics, and reduction factory together.
type Server struct {
	addr     string
	fileRoot string
	factory  reduce.ReducerFactory
	security SecurityConfig
	metrics  *Metrics
	logger   logging.Logger
	httpSrv  *http.Server
}

// Option customizes a Server during construction.
type Option func(*Server)

// WithSecurity overrides the default security configuration.
func WithSecurity(sc SecurityConfig) Option {
	return func(s *Server) { s.security = sc }
}

// WithFileRoot enables static file serving from the given directory.
func WithFileRoot(root string) Option {
	return func(s *Server) { s.fileRoot = root }
}

// New creates a Server listening on addr, backed by the given factory.
func New(addr string, factory reduce.ReducerFactory, logger logging.Logger, opts ...Option) *Server {
	s := &Server{
		addr:     addr,
		factory:  factory,
		security: DefaultSecurityConfig(),
		metrics:  NewMetrics(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.withCommonMiddleware(s.handleHealth))
	mux.HandleFunc("/metrics", s.withCommonMiddleware(s.handleMetrics))
	mux.HandleFunc("/api/v1/sum", s.withCommonMiddleware(s.handleSum))
	if s.fileRoot != "" {
		mux.HandleFunc("/files/", s.withCommonMiddleware(s.handleFiles))
	}

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

// Start runs the HTTP server until the context is canceled, then drains
// in-flight requests within the shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", logging.String("addr", s.addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("http server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	}
}

// withCommonMiddleware applies the standard header, security, and metrics
// layers to a handler.
func (s *Server) withCommonMiddleware(next http.HandlerFunc) http.HandlerFunc {
	wrapped := s.metricsMiddleware(next)
	wrapped = SecurityMiddleware(s.security, wrapped)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", ServerName)
		wrapped(w, r)
	}
}

// metricsMiddleware tracks in-flight and completed requests.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next(sw, r)
		s.metrics.CountRequest(r.URL.Path, strconv.Itoa(sw.status))
	}
}

// statusWriter captures the response status for metrics labeling.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}
