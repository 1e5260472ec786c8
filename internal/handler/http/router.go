package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/handler/http/middleware"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/jwt"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Auth      AuthHandler
	Staff     StaffHandler
	Visitor   VisitorHandler
	GateLog   GateLogHandler
	Settings  SettingsHandler
	Dashboard DashboardHandler
}

func NewRouter(JWTService jwt.Service, h Handlers, appEnv string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "gatemaster"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Auth.ListUsers)
				r.Post("/", h.Auth.CreateUser)
				r.Delete("/{id}", h.Auth.DeleteUser)
			})

			r.Route("/staff", func(r chi.Router) {
				r.Post("/", h.Staff.Submit)
				r.Get("/", h.Staff.Directory)
				r.Get("/pending", h.Staff.PendingQueue)
				r.Get("/counts", h.Staff.Counts)
				r.Get("/{id}", h.Staff.GetByID)

				// HR decides on requests
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/{id}/decision", h.Staff.Decide)
				})

				// Security records gate movements
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSecurity)
					r.Post("/{id}/out", h.Staff.RecordExit)
					r.Post("/{id}/in", h.Staff.RecordReturn)
				})
			})

			r.Route("/visitors", func(r chi.Router) {
				r.Get("/", h.Visitor.List)
				r.Get("/inside", h.Visitor.ListInside)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSecurity)
					r.Post("/", h.Visitor.Register)
					r.Post("/{id}/out", h.Visitor.MarkOut)
				})
			})

			r.Route("/logs", func(r chi.Router) {
				r.Get("/", h.GateLog.List)
				r.Get("/export", h.GateLog.Export)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Settings.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/departments", h.Settings.AddDepartment)
					r.Delete("/departments/{name}", h.Settings.RemoveDepartment)
					r.Post("/notifications/toggle", h.Settings.ToggleNotifications)
					r.Put("/theme", h.Settings.SetTheme)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/summary", h.Dashboard.Summary)
				r.Get("/insights", h.Dashboard.Insights)
			})
		})
	})
	return r
}
