// Package server exposes the daycare over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/DogDaycare_Go/internal/daycare"
	"github.com/osse101/DogDaycare_Go/internal/handler"
	"github.com/osse101/DogDaycare_Go/internal/metrics"
	"github.com/osse101/DogDaycare_Go/internal/repository"
	"github.com/osse101/DogDaycare_Go/internal/sse"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
	StoreName      string
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance. history and hub may be nil, in
// which case their routes report the feature as unavailable.
func NewServer(opts Options, svc daycare.Service, store handler.Pinger, history repository.Departures, hub *sse.Hub) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc, store, history, hub),
			ReadHeaderTimeout: ReadHeaderTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// NewRouter builds the route tree
func NewRouter(opts Options, svc daycare.Service, store handler.Pinger, history repository.Departures, hub *sse.Hub) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	guard := NewClientGuard(MaxRequestsPerWindow)

	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, guard))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, guard))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))
	r.Get("/version", handler.HandleVersion(opts.Version, opts.StoreName))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	candidates := handler.NewCandidateCache(handler.CandidateCacheSize, handler.CandidateCacheTTL)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/session", func(r chi.Router) {
			r.Get("/", handler.HandleGetSession(svc))
			r.Post("/start", handler.HandleStartGame(svc))
			r.Post("/play", handler.HandleSetPlaying(svc))
			r.Post("/reset", handler.HandleReset(svc))
		})

		r.Post("/dogs/{"+handler.URLParamDogID+"}/interact", handler.HandleInteract(svc))

		r.Route("/shop", func(r chi.Router) {
			r.Get("/", handler.HandleGetShop(svc, candidates))
			r.Post("/upgrades", handler.HandleBuyUpgrade(svc))
			r.Post("/slots", handler.HandleBuySlot(svc))
			r.Post("/workers", handler.HandleHireWorker(svc, candidates))
		})

		r.Route("/departures", func(r chi.Router) {
			r.Get("/", handler.HandleListDepartures(svc))
			r.Get("/history", handler.HandleDepartureHistory(history))
			r.Get("/export", handler.HandleExportDepartures(svc, history))
		})

		if hub != nil {
			r.Get("/stream", sse.Handler(hub))
			r.Get("/ws", handler.HandleWebsocket(hub, svc))
		}
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Handler returns the router served by the server
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
