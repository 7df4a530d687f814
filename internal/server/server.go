package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/InventoryViewer_Go/internal/handler"
	"github.com/osse101/InventoryViewer_Go/internal/logger"
	"github.com/osse101/InventoryViewer_Go/internal/metrics"
)

// Options configures the HTTP shell
type Options struct {
	Port           int
	AllowedOrigins []string
	ServiceName    string
	Version        string
	// StateStream, when set, is served at PathEvents
	StateStream http.Handler
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer wraps app, the route table's router, with the middleware stack
// and the operational endpoints. checker backs /readyz.
func NewServer(opts Options, app http.Handler, checker handler.HealthChecker) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(CORSMiddleware(opts.AllowedOrigins))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get(PathHealthz, handler.HandleHealthz())
	r.Get(PathReadyz, handler.HandleReadyz(checker))
	r.Get(PathVersion, handler.HandleVersion(opts.ServiceName, opts.Version))
	r.Handle(PathMetrics, promhttp.Handler())
	if opts.StateStream != nil {
		r.Method(http.MethodGet, PathEvents, opts.StateStream)
	}

	r.Mount("/", app)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
			IdleTimeout:       IdleTimeout,
		},
		router: r,
	}
}

// Handler exposes the full middleware-wrapped router
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush lets streaming handlers see through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// requestID reuses a caller-supplied X-Request-ID when it is sane
func requestID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(HeaderRequestID)); id != "" && len(id) <= MaxRequestIDLen {
		return id
	}
	return logger.GenerateRequestID()
}

func isQuiet(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuiet(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		id := requestID(r)
		w.Header().Set(HeaderRequestID, id)

		ctx := logger.WithRequestID(r.Context(), id)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start serves until Stop is called. A graceful stop is not an error.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping, "addr", s.httpServer.Addr)
	return s.httpServer.Shutdown(ctx)
}
