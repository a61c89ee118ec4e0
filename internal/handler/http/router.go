package http

import (
	"log/slog"
	"os"

	"github.com/ems-suite/ems-backend-go/internal/handler/http/middleware"
	"github.com/ems-suite/ems-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Master     MasterHandler
	Employee   EmployeeHandler
	Leave      LeaveHandler
	Attendance AttendanceHandler
	Dashboard  DashboardHandler
}

func NewRouter(jwtService jwt.Service, allowedOrigins []string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ems-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// The event stream authenticates with its own short-lived token so
		// it sits outside the Verifier group
		r.Get("/dashboard/events", h.Dashboard.Events)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/auth/change-password", h.Auth.ChangePassword)

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Master.ListDepartments)
				r.Get("/{id}", h.Master.GetDepartment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreateDepartment)
					r.Put("/{id}", h.Master.UpdateDepartment)
					r.Delete("/{id}", h.Master.DeleteDepartment)
				})
			})

			r.Route("/sections", func(r chi.Router) {
				r.Get("/", h.Master.ListSections)
				r.Get("/{id}", h.Master.GetSection)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreateSection)
					r.Put("/{id}", h.Master.UpdateSection)
					r.Delete("/{id}", h.Master.DeleteSection)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Apply)
				r.Get("/my", h.Leave.ListMy)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Leave.List)
					r.Get("/pending-count", h.Leave.PendingCount)
					r.Patch("/{id}/{decision}", h.Leave.Process)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/daily", h.Attendance.DailyView)
				r.Post("/daily", h.Attendance.MarkDay)
				r.Get("/history", h.Attendance.History)
				r.Get("/insights", h.Attendance.Insights)
				r.Get("/export/pdf", h.Attendance.ExportPDF)
				r.Get("/export/xlsx", h.Attendance.ExportXLSX)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/my-summary", h.Dashboard.MySummary)
				r.Get("/event-token", h.Dashboard.GetEventToken)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/summary", h.Dashboard.AdminSummary)
				})
			})
		})
	})

	return r
}
