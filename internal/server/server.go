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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/incomeengine/internal/engine"
	"github.com/osse101/incomeengine/internal/handler"
	"github.com/osse101/incomeengine/internal/logger"
	"github.com/osse101/incomeengine/internal/metrics"
)

// Options configures the HTTP server
type Options struct {
	Port           int
	APIKey         string // empty disables authentication
	TrustedProxies []string
	Version        string
}

// Server exposes the engine over HTTP
type Server struct {
	httpServer *http.Server
	service    engine.Service
}

// NewServer creates a new Server. The service must be safe for concurrent
// use; wrap it with engine.Synchronized.
func NewServer(opts Options, service engine.Service) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, service),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		service: service,
	}
}

// NewRouter builds the route tree and middleware stack
func NewRouter(opts Options, service engine.Service) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	if opts.APIKey != "" {
		r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	}
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	cat := service.Catalog()
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(handler.ReadinessFunc(func() error {
		if cat == nil || len(cat.Assets()) == 0 {
			return errors.New(ErrMsgCatalogEmpty)
		}
		return nil
	})))
	catalogVersion := ""
	if cat != nil {
		catalogVersion = cat.Version
	}
	r.Get("/version", handler.HandleVersion(opts.Version, catalogVersion))
	r.Handle("/metrics", promhttp.Handler())

	assets := handler.NewAssetHandlers(service)
	days := handler.NewDayHandlers(service)
	upgrades := handler.NewUpgradeHandlers(service)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", days.HandleState())

		r.Route("/assets", func(r chi.Router) {
			r.Get("/", assets.HandleList())
			r.Post("/", assets.HandleLaunch())
			r.Route("/{instanceID}", func(r chi.Router) {
				r.Get("/income", assets.HandleIncome())
				r.Get("/actions", assets.HandleActions())
				r.Post("/actions/{actionID}", assets.HandlePerformAction())
				r.Get("/multipliers", assets.HandleMultipliers())
				r.Post("/niche", assets.HandleAssignNiche())
			})
		})

		r.Post("/day/end", days.HandleEndDay())
		r.Get("/events", days.HandleEvents())
		r.Get("/niches", days.HandleNiches())
		r.Get("/log", days.HandleLog())

		r.Route("/upgrades", func(r chi.Router) {
			r.Get("/", upgrades.HandleList())
			r.Get("/slots", upgrades.HandleSlots())
			r.Post("/{upgradeID}/purchase", upgrades.HandlePurchase())
		})
		r.Post("/courses/{courseID}/complete", upgrades.HandleCompleteCourse())
	})

	return r
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, prefix := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
