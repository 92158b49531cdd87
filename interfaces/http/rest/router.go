package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventdeck/infrastructure/di"
	"eventdeck/interfaces/http/rest/handlers"
	"eventdeck/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{container: container}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	cfg := rt.container.Config
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.container.Logger))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if cfg.EnableMetrics {
		router.Handle("/metrics", promhttp.HandlerFor(rt.container.Metrics.Registry(), promhttp.HandlerOpts{}))
	}

	router.Route("/api", func(r chi.Router) {
		r.Route("/events", func(r chi.Router) {
			eventHandler := handlers.NewEventHandler(
				rt.container.ListEvents,
				rt.container.GetEvent,
				rt.container.CreateEvent,
				rt.container.UpdateEvent,
				rt.container.DeleteEvent,
				rt.container.ErrorHandler,
				cfg.PurgeCreatorOnDelete,
				rt.container.Logger,
			)
			r.Get("/", eventHandler.ListEvents)
			r.Post("/", eventHandler.CreateEvent)
			r.Get("/{eventID}", eventHandler.GetEvent)
			r.Put("/{eventID}", eventHandler.UpdateEvent)
			r.Delete("/{eventID}", eventHandler.DeleteEvent)
		})

		categoryHandler := handlers.NewCategoryHandler(rt.container.ListCategories, rt.container.ErrorHandler)
		r.Get("/categories", categoryHandler.ListCategories)

		userHandler := handlers.NewUserHandler(rt.container.ListUsers, rt.container.ErrorHandler)
		r.Get("/users", userHandler.ListUsers)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck reports ready once the event cache has been populated
// at least once. A cold cache is still ready in pull-through mode, the
// first request fills it, so this only gates on the upstream store
// being reachable.
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	if _, err := rt.container.Cache.Events(req.Context()); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"degraded"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
