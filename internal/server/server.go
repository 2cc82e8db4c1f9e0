package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/ArcLab_Go/internal/catalog"
	"github.com/osse101/ArcLab_Go/internal/database"
	"github.com/osse101/ArcLab_Go/internal/handler"
	"github.com/osse101/ArcLab_Go/internal/logger"
	"github.com/osse101/ArcLab_Go/internal/metrics"
	"github.com/osse101/ArcLab_Go/internal/planner"
	"github.com/osse101/ArcLab_Go/internal/stash"
	"github.com/osse101/ArcLab_Go/internal/storage"
)

// Options configures the HTTP listener and its middleware
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	// MaxBodyBytes caps request bodies. Zero uses DefaultMaxBodyBytes.
	MaxBodyBytes int64
	Detector     DetectorConfig
}

// Services are the application services the routes call into
type Services struct {
	Catalog  catalog.Service
	Planner  planner.Service
	Stash    stash.Service
	Importer handler.CatalogImporter
	// CatalogSource is the document re-imported by the admin endpoint. Nil
	// disables it.
	CatalogSource storage.Source
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer wires middleware and routes
func NewServer(opts Options, dbPool database.Pool, svcs Services) *Server {
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	proxies := ParseTrustedProxies(opts.TrustedProxies)
	detector := NewSuspiciousActivityDetectorWithConfig(opts.Detector)

	r := chi.NewRouter()

	// Outermost first
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, proxies, detector))
	r.Use(SecurityLoggingMiddleware(proxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxBody))
	r.Use(metrics.Middleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, ErrMsgNotFound)
	})

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(svcs.Catalog))
			r.Post("/", handler.HandleCreateItem(svcs.Catalog))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.HandleGetItem(svcs.Catalog, svcs.Planner))
				r.Put("/", handler.HandleUpdateItem(svcs.Catalog))
				r.Delete("/", handler.HandleDeleteItem(svcs.Catalog))
				r.Put("/image", handler.HandleSetItemImage(svcs.Catalog))
				r.Put("/recipe", handler.HandleSaveRecipe(svcs.Catalog))
			})
		})

		r.Get("/categories", handler.HandleListCategories(svcs.Catalog))
		r.Get("/rarities", handler.HandleListRarities(svcs.Catalog))
		r.Get("/materials", handler.HandleListMaterials(svcs.Catalog))
		r.Get("/craftable", handler.HandleListCraftable(svcs.Catalog))

		r.Post("/loadout", handler.HandlePlanLoadout(svcs.Planner))

		r.Get("/stash", handler.HandleGetStash(svcs.Stash))
		r.Post("/stash", handler.HandleSaveStash(svcs.Stash))

		admin := handler.NewAdminCatalogHandler(svcs.Importer, svcs.Catalog, svcs.CatalogSource)
		r.Route("/admin", func(r chi.Router) {
			r.Post("/catalog/import", admin.HandleImport)
			r.Post("/cache/invalidate", admin.HandleInvalidateCache)
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			WriteTimeout:      DefaultWriteTimeout,
		},
		router: r,
	}
}

// Handler returns the routed handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if rw.written {
		return
	}
	rw.statusCode = statusCode
	rw.written = true
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// loggingMiddleware tags the request with an id and logs start and
// completion. Credentials never reach the log.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range quietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		if log.Enabled(ctx, slog.LevelDebug) {
			log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))
		}

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

func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

// Start serves until Stop is called. It returns http.ErrServerClosed after
// a graceful shutdown.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests until ctx expires
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
