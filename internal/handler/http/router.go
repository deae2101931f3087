package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/officeflow/officeflow-backend-go/internal/handler/http/middleware"
	"github.com/officeflow/officeflow-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Nav          NavHandler
	Dashboard    DashboardHandler
	Employee     EmployeeHandler
	Project      ProjectHandler
	Team         TeamHandler
	Leave        LeaveHandler
	Payroll      PayrollHandler
	Asset        AssetHandler
	Announcement AnnouncementHandler
}

func NewRouter(jwtService jwt.Service, resolver middleware.SessionResolver, h Handlers, allowedOrigins []string, env string) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "officeflow-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.ResolveSession(resolver))

			r.Get("/nav", h.Nav.Sections)
			r.Get("/dashboard", h.Dashboard.Get)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Put("/contact", h.Employee.UpdateContact)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.Get)
					r.Delete("/", h.Employee.Delete)
					r.Put("/account", h.Employee.UpdateAccount)
					r.Put("/metrics", h.Employee.UpdateMetrics)
					r.Get("/payslip", h.Payroll.Payslip)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.Project.List)
				r.Post("/", h.Project.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Put("/", h.Project.Update)
					r.Patch("/status", h.Project.UpdateStatus)
					r.Delete("/", h.Project.Delete)
				})
			})

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", h.Team.List)
				r.Post("/", h.Team.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Delete("/", h.Team.Delete)
					r.Post("/members", h.Team.AddMember)
					r.Delete("/members", h.Team.RemoveMember)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/requests", h.Leave.CreateRequest)
				r.Get("/requests/my", h.Leave.GetMyRequests)
				r.Get("/approvals", h.Leave.ListApprovals)
				r.Put("/requests/{id}/decision", h.Leave.DecideRequest)
			})

			r.Get("/payroll", h.Payroll.Summary)

			r.Route("/assets", func(r chi.Router) {
				r.Get("/", h.Asset.List)
				r.Post("/", h.Asset.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Put("/", h.Asset.Update)
					r.Post("/assign", h.Asset.Assign)
					r.Post("/unassign", h.Asset.Unassign)
					r.Get("/history", h.Asset.History)
					r.Get("/maintenance", h.Asset.Maintenance)
					r.Post("/maintenance", h.Asset.AddMaintenance)
				})
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", h.Announcement.List)
				r.Post("/", h.Announcement.Post)
			})
		})
	})

	return r
}
