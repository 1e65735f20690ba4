package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	apperrors "github.com/agbru/kmul/internal/errors"
	"github.com/agbru/kmul/internal/logging"
	"github.com/agbru/kmul/internal/metrics"
)

// Server exposes /metrics, /health and /algorithms over HTTP.
type Server struct {
	httpServer     *http.Server
	logger         logging.Logger
	securityConfig SecurityConfig
	timeouts       Timeouts
	algorithms     []string
	started        time.Time
}

// NewServer creates a Server listening on addr (host:port).
func NewServer(addr string, opts ...Option) *Server {
	s := &Server{
		logger:         logging.NewLogger(os.Stderr, "metrics-server"),
		securityConfig: DefaultSecurityConfig(),
		timeouts:       DefaultServerTimeouts(),
		started:        time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.timeouts.ReadTimeout,
		WriteTimeout: s.timeouts.WriteTimeout,
		IdleTimeout:  s.timeouts.IdleTimeout,
	}
	return s
}

// Handler returns the request multiplexer with the middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", SecurityMiddleware(s.securityConfig, s.getOnly(metrics.Handler().ServeHTTP)))
	mux.HandleFunc("/health", SecurityMiddleware(s.securityConfig, s.getOnly(s.handleHealth)))
	mux.HandleFunc("/algorithms", SecurityMiddleware(s.securityConfig, s.getOnly(s.handleAlgorithms)))
	return mux
}

// Run serves until ctx is done, then shuts down gracefully. It returns an
// error if the listener cannot be opened or shutdown fails.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return apperrors.WrapError(err, "metrics server failed to listen on %s", s.httpServer.Addr)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("metrics server listening", logging.String("addr", ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return apperrors.WrapError(err, "metrics server failed")
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeouts.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return apperrors.WrapError(err, "failed to gracefully shutdown metrics server")
	}
	s.logger.Debug("metrics server stopped")
	return nil
}

func (s *Server) getOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			s.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
			return
		}
		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"uptime": time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, _ *http.Request) {
	algos := s.algorithms
	if algos == nil {
		algos = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"algorithms": algos})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", err)
	}
}
