package http

import (
	"log/slog"
	"os"

	"github.com/caredesk/homecare-backend-go/internal/config"
	"github.com/caredesk/homecare-backend-go/internal/handler/http/middleware"
	"github.com/caredesk/homecare-backend-go/internal/pkg/jwt"
	"github.com/caredesk/homecare-backend-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Auth       AuthHandler
	Assignment AssignmentHandler
	Holiday    HolidayHandler
	Client     ClientHandler
	Worker     WorkerHandler
	Planning   PlanningHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "caredesk-homecare"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/assignments", func(r chi.Router) {
				r.Get("/", h.Assignment.List)
				r.Post("/", h.Assignment.Create)
				r.Get("/conflicts", h.Planning.Conflicts)
				r.Get("/{id}", h.Assignment.Get)
				r.Put("/{id}", h.Assignment.Update)
				r.Delete("/{id}", h.Assignment.Delete)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Holiday.Create)
					r.Delete("/{id}", h.Holiday.Delete)
				})
			})

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", h.Client.List)
				r.Post("/", h.Client.Create)
				r.Get("/{id}", h.Client.Get)
			})

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", h.Worker.List)
				r.Post("/", h.Worker.Create)
				r.Get("/{id}", h.Worker.Get)
			})

			r.Route("/planning", func(r chi.Router) {
				r.Route("/clients/{clientID}", func(r chi.Router) {
					r.Get("/reassignments", h.Planning.Reassignments)
					r.Get("/plan", h.Planning.MonthlyPlan)
					r.Get("/balance", h.Planning.ClientBalance)
					r.Get("/balance/snapshot", h.Planning.BalanceSnapshot)
				})
				r.Get("/workers/{workerID}/balance", h.Planning.WorkerBalance)
			})
		})
	})

	return r
}
