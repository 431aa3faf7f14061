package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/asistia/homecare-backend-go/internal/config"
	"github.com/asistia/homecare-backend-go/internal/handler/http/middleware"
	"github.com/asistia/homecare-backend-go/internal/pkg/session"
)

type Handlers struct {
	Worker       WorkerHandler
	ServiceUser  ServiceUserHandler
	Assignment   AssignmentHandler
	Holiday      HolidayHandler
	Route        RouteHandler
	Notification NotificationHandler
}

func NewRouter(cfg *config.Config, verifier session.Verifier, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "homecare-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
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

	r.Route("/api/v1", func(r chi.Router) {
		// SSE stream authenticates with its own short-lived token, so it
		// sits outside the bearer-token group.
		r.Get("/notifications/stream", h.Notification.Stream)

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(verifier.JWTAuth()))
			r.Use(middleware.AuthRequired(verifier.JWTAuth()))

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", h.Worker.List)
				r.Post("/", h.Worker.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Worker.GetByID)
					r.Put("/", h.Worker.Update)
					r.Delete("/", h.Worker.Delete)
					r.Get("/assignments", h.Assignment.ListByWorker)
				})
			})

			r.Route("/service-users", func(r chi.Router) {
				r.Get("/", h.ServiceUser.List)
				r.Post("/", h.ServiceUser.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.ServiceUser.GetByID)
					r.Put("/", h.ServiceUser.Update)
					r.Delete("/", h.ServiceUser.Delete)
				})
			})

			r.Route("/assignments", func(r chi.Router) {
				r.Get("/", h.Assignment.List)
				r.Post("/", h.Assignment.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Assignment.GetByID)
					r.Put("/", h.Assignment.Update)
					r.Delete("/", h.Assignment.Delete)
					r.Get("/monthly-hours", h.Assignment.MonthlyHours)

					r.Route("/schedule/{day}", func(r chi.Router) {
						r.Put("/", h.Assignment.SetDayEnabled)
						r.Post("/slots", h.Assignment.AddSlot)
						r.Route("/slots/{slotID}", func(r chi.Router) {
							r.Put("/", h.Assignment.UpdateSlot)
							r.Delete("/", h.Assignment.RemoveSlot)
						})
					})
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.ListByYear)
				r.Post("/", h.Holiday.Create)
				r.Delete("/{id}", h.Holiday.Delete)
			})

			r.Route("/routes", func(r chi.Router) {
				r.Post("/estimate", h.Route.Estimate)
				r.Post("/estimate/external", h.Route.EstimateExternal)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Get("/stream-token", h.Notification.GetStreamToken)
				r.Post("/mark-read", h.Notification.MarkAsRead)
				r.Post("/mark-all-read", h.Notification.MarkAllAsRead)
				r.Delete("/{id}", h.Notification.Delete)
			})
		})
	})

	return r
}
