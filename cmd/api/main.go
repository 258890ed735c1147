package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shaik-naseema17/employee-management-backend/internal/config"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/auth"
	appHTTP "github.com/shaik-naseema17/employee-management-backend/internal/handler/http"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/cron"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/database"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/jwt"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/logger"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/storage"
	"github.com/shaik-naseema17/employee-management-backend/internal/repository/postgresql"
	serviceAuth "github.com/shaik-naseema17/employee-management-backend/internal/service/auth"
	dashboardService "github.com/shaik-naseema17/employee-management-backend/internal/service/dashboard"
	departmentService "github.com/shaik-naseema17/employee-management-backend/internal/service/department"
	employeeService "github.com/shaik-naseema17/employee-management-backend/internal/service/employee"
	"github.com/shaik-naseema17/employee-management-backend/internal/service/file"
	leaveService "github.com/shaik-naseema17/employee-management-backend/internal/service/leave"
	salaryService "github.com/shaik-naseema17/employee-management-backend/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	log, closer := logger.New(cfg.App)
	defer closer.Close()
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		slog.Error("Server stopped with error", "error", err)
		closer.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if cfg.Database.RunMigrations {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		return fmt.Errorf("init jwt: %w", err)
	}

	var fileStorage storage.FileStorage
	var uploadsDir string
	switch cfg.Storage.Type {
	case "local":
		local, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			return fmt.Errorf("init local storage: %w", err)
		}
		fileStorage = local
		uploadsDir = local.BasePath()
	default:
		return fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	authSvc := serviceAuth.NewAuthService(userRepo, JWTService, fileService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, departmentRepo, fileService)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, fileService)
	salarySvc := salaryService.NewSalaryService(salaryRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, time.Now)

	if cfg.Seed.AdminEmail != "" {
		created, err := authSvc.SeedAdmin(ctx, auth.SeedAdminRequest{
			Name:     cfg.Seed.AdminName,
			Email:    cfg.Seed.AdminEmail,
			Password: cfg.Seed.AdminPassword,
		})
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		slog.Info("Admin seed checked", "email", cfg.Seed.AdminEmail, "created", created)
	}

	scheduler := cron.NewScheduler()
	cron.RegisterMaintenanceJobs(scheduler, employeeSvc, cfg.Maintenance.SweepInterval)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         log,
			AllowedOrigins: cfg.App.AllowedOrigins,
			UploadsDir:     uploadsDir,
		},
		JWTService,
		appHTTP.Handlers{
			Auth:        appHTTP.NewAuthHandler(authSvc),
			Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
			Department:  appHTTP.NewDepartmentHandler(departmentSvc),
			Leave:       appHTTP.NewLeaveHandler(leaveSvc),
			Salary:      appHTTP.NewSalaryHandler(salarySvc),
			Dashboard:   appHTTP.NewDashboardHandler(dashboardSvc),
			Maintenance: appHTTP.NewMaintenanceHandler(employeeSvc),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
