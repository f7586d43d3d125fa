package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/ndungutse/project-tracker/internal/api/ws"
	"github.com/ndungutse/project-tracker/internal/auth"
	"github.com/ndungutse/project-tracker/internal/config"
	"github.com/ndungutse/project-tracker/internal/server/middleware"
	"github.com/ndungutse/project-tracker/internal/service"
	"github.com/ndungutse/project-tracker/internal/store/postgres"
	redisstore "github.com/ndungutse/project-tracker/internal/store/redis"
)

// Server is the HTTP server that wires all application routes and middleware.
type Server struct {
	router     chi.Router
	httpServer *http.Server
	store      *postgres.Store
	auth       *auth.Service
	pubsub     *redisstore.PubSub
	wsHub      *ws.Hub
	cfg        *config.Config

	audit      *service.AuditService
	developers *service.DeveloperService
	tasks      *service.TaskService
	projects   *service.ProjectService
	roles      *service.RoleService
}

// New creates a Server with all routes wired.
// pubsub may be nil; audit entries are then recorded but not streamed.
func New(cfg *config.Config, store *postgres.Store, pubsub *redisstore.PubSub, authSvc *auth.Service) *Server {
	router := chi.NewRouter()

	// Global middleware stack.
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Logger)
	router.Use(chimw.Recoverer)
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)

	hub := ws.NewHub(pubsub)

	var publisher service.Publisher
	if pubsub != nil {
		publisher = pubsub
	}
	audit := service.NewAuditService(store, publisher)

	s := &Server{
		router:     router,
		store:      store,
		auth:       authSvc,
		pubsub:     pubsub,
		wsHub:      hub,
		cfg:        cfg,
		audit:      audit,
		developers: service.NewDeveloperService(store, audit),
		tasks:      service.NewTaskService(store, audit),
		projects:   service.NewProjectService(store, audit),
		roles:      service.NewRoleService(store, audit),
		httpServer: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}

	// Mount API routes on /api/v1 with two sub-groups:
	// 1. Unauthenticated group for auth endpoints.
	// 2. Authenticated group for all other endpoints.
	router.Route("/api/v1", func(r chi.Router) {
		// Unauthenticated auth routes (register, login, refresh).
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimitByIP(context.Background(), 10, 20))

			authConfig := huma.DefaultConfig("Project Tracker Auth API", "1.0.0")
			authConfig.Servers = []*huma.Server{
				{URL: "/api/v1"},
			}
			authAPI := humachi.New(r, authConfig)
			registerAuthRoutes(authAPI, authSvc)
		})

		// Authenticated routes (everything else).
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT.Secret))
			r.Use(middleware.RateLimit(context.Background(), 100, 200))

			apiConfig := huma.DefaultConfig("Project Tracker API", "1.0.0")
			apiConfig.Servers = []*huma.Server{
				{URL: "/api/v1"},
			}
			api := humachi.New(r, apiConfig)
			s.registerAPIRoutes(api)

			// Role administration is admin-only.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin())

				adminConfig := huma.DefaultConfig("Project Tracker Admin API", "1.0.0")
				adminConfig.Servers = []*huma.Server{
					{URL: "/api/v1"},
				}
				adminConfig.OpenAPIPath = ""
				adminConfig.DocsPath = ""
				adminAPI := humachi.New(r, adminConfig)
				s.registerAdminRoutes(adminAPI)
			})
		})
	})

	// WebSocket routes.
	router.Route("/ws", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT.Secret))
		registerWSRoutes(r, hub)
	})

	// Prometheus metrics (unauthenticated, scrape target).
	router.Handle("/metrics", promhttp.Handler())

	// Health check (unauthenticated).
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	return s
}

// Start begins listening for HTTP requests.
func (s *Server) Start(_ context.Context) error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server.Start: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}
