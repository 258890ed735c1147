package http

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shaik-naseema17/employee-management-backend/internal/handler/http/middleware"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/jwt"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth        AuthHandler
	Employee    EmployeeHandler
	Department  DepartmentHandler
	Leave       LeaveHandler
	Salary      SalaryHandler
	Dashboard   DashboardHandler
	Maintenance MaintenanceHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	// UploadsDir is served under /uploads when set
	UploadsDir string
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if opts.UploadsDir != "" {
		files := http.StripPrefix("/uploads/", http.FileServer(fileOnlyFS{http.Dir(opts.UploadsDir)}))
		r.Get("/uploads/*", files.ServeHTTP)
	}

	r.Route("/api", func(r chi.Router) {

		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/auth/verify", h.Auth.Verify)
			r.Put("/setting/change-password", h.Auth.ChangePassword)

			r.Route("/employee", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Get("/{id}", h.Employee.GetEmployee)
				r.Get("/user/{userId}", h.Employee.GetEmployeeByUser)
				r.Get("/department/{id}", h.Employee.ListEmployeesByDepartment)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Employee.CreateEmployee)
					r.Post("/add", h.Employee.CreateEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Delete("/{id}", h.Employee.DeleteEmployee)
				})
			})

			r.Route("/department", func(r chi.Router) {
				r.Get("/", h.Department.List)
				r.Get("/{id}", h.Department.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Department.Create)
					r.Put("/{id}", h.Department.Update)
					r.Delete("/{id}", h.Department.Delete)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", h.Leave.CreateLeave)
				r.Post("/add", h.Leave.CreateLeave)
				r.Get("/{id}", h.Leave.GetLeaves)
				r.Get("/user/{userId}", h.Leave.GetLeavesByUser)
				r.Get("/detail/{id}", h.Leave.GetLeaveDetail)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", h.Leave.ListLeaves)
					r.Put("/{id}", h.Leave.UpdateLeaveStatus)
				})
			})

			r.Route("/salary", func(r chi.Router) {
				r.Get("/{id}", h.Salary.GetSalaries)
				r.Get("/user/{userId}", h.Salary.GetSalariesByUser)
				r.Get("/payslip/{id}", h.Salary.DownloadPayslip)

				r.With(middleware.RequireAdmin).Post("/add", h.Salary.CreateSalary)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/dashboard/summary", h.Dashboard.GetSummary)
				r.Post("/maintenance/orphans/sweep", h.Maintenance.SweepOrphans)
			})
		})
	})
	return r
}

// fileOnlyFS reports directories as missing so /uploads never lists stored keys.
type fileOnlyFS struct {
	http.FileSystem
}

func (f fileOnlyFS) Open(name string) (http.File, error) {
	file, err := f.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}
