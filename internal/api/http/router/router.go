// Package router wires handlers and middleware into the HTTP mux.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taskward/taskward-server/internal/api/http/handler"
	"github.com/taskward/taskward-server/internal/api/http/middleware"
	"github.com/taskward/taskward-server/internal/logger"
	"github.com/taskward/taskward-server/internal/metrics"
	"github.com/taskward/taskward-server/internal/model"
)

// Router builds the HTTP routing table for the task API.
type Router struct {
	authService    handler.AuthService
	taskService    handler.TaskService
	sessions       middleware.SessionResolver
	pinger         handler.Pinger
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	taskService handler.TaskService,
	sessions middleware.SessionResolver,
	pinger handler.Pinger,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		taskService:    taskService,
		sessions:       sessions,
		pinger:         pinger,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the chi mux. Auth routes sit outside the
// authenticate middleware; every /api route requires a resolved
// session before its handler runs.
func (r *Router) Register(reg *prometheus.Registry) http.Handler {
	recovery := middleware.NewRecovery(r.logger)
	logging := middleware.NewLogging(r.logger, r.contextManager)
	requestMetrics := middleware.NewMetrics(metrics.New(reg))
	authenticate := middleware.NewAuthenticate(r.sessions, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.logger)
	taskHandler := handler.NewTask(r.taskService, r.contextManager, r.logger)
	healthHandler := handler.NewHealth(r.pinger, r.logger)

	mux := chi.NewRouter()
	mux.Use(recovery.Handle)
	mux.Use(requestMetrics.Handle)
	mux.Use(logging.Handle)

	mux.Route("/auth", func(mux chi.Router) {
		mux.Post("/register", authHandler.Register)
		mux.Post("/login", authHandler.Login)
	})

	mux.Get("/healthz", healthHandler.Check)
	mux.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	mux.Group(func(mux chi.Router) {
		mux.Use(authenticate.Handle)

		mux.Route("/api/tasks", func(mux chi.Router) {
			mux.Get("/", taskHandler.List)
			mux.Post("/", taskHandler.Create)

			mux.Route("/{id}", func(mux chi.Router) {
				mux.Get("/", taskHandler.Get)
				mux.Put("/", taskHandler.Update)
				mux.Delete("/", taskHandler.Delete)
			})
		})
	})

	return mux
}
