package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/ems-suite/ems-backend-go/internal/config"
	appHTTP "github.com/ems-suite/ems-backend-go/internal/handler/http"
	"github.com/ems-suite/ems-backend-go/internal/pkg/cron"
	"github.com/ems-suite/ems-backend-go/internal/pkg/database"
	"github.com/ems-suite/ems-backend-go/internal/pkg/jwt"
	"github.com/ems-suite/ems-backend-go/internal/pkg/sse"
	"github.com/ems-suite/ems-backend-go/internal/repository/postgresql"
	attendanceService "github.com/ems-suite/ems-backend-go/internal/service/attendance"
	authService "github.com/ems-suite/ems-backend-go/internal/service/auth"
	dashboardService "github.com/ems-suite/ems-backend-go/internal/service/dashboard"
	employeeService "github.com/ems-suite/ems-backend-go/internal/service/employee"
	leaveService "github.com/ems-suite/ems-backend-go/internal/service/leave"
	"github.com/ems-suite/ems-backend-go/internal/service/master"
	reportService "github.com/ems-suite/ems-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	sectionRepo := postgresql.NewSectionRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()

	auth := authService.NewAuthService(userRepo, employeeRepo, jwtService)
	masterSvc := master.NewMasterService(departmentRepo, sectionRepo)
	employees := employeeService.NewEmployeeService(db, userRepo, employeeRepo)
	leaves := leaveService.NewLeaveService(leaveRepo, hub, logger)
	attendances := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, leaveRepo)
	reports := reportService.NewReportService(attendanceRepo, employeeRepo)
	dashboards := dashboardService.NewDashboardService(dashboardRepo, employeeRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, auth),
		Master:     appHTTP.NewMasterHandler(masterSvc),
		Employee:   appHTTP.NewEmployeeHandler(employees),
		Leave:      appHTTP.NewLeaveHandler(leaves),
		Attendance: appHTTP.NewAttendanceHandler(attendances, reports),
		Dashboard:  appHTTP.NewDashboardHandler(dashboards, jwtService, hub),
	}

	scheduler := cron.NewScheduler()
	leaveJobs := cron.NewLeaveJobs(leaveRepo, hub)
	scheduler.AddJob("refresh-pending-leaves", cfg.Dashboard.PendingLeaveRefresh, leaveJobs.RefreshPendingCount)
	scheduler.AddJob("sweep-revoked-tokens", time.Hour, func(ctx context.Context) error {
		if removed := jwtService.SweepRevokedTokens(time.Now()); removed > 0 {
			logger.Debug("swept revoked tokens", slog.Int("removed", removed))
		}
		return nil
	})
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, []string{cfg.App.FrontendURL}, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", slog.String("addr", addr), slog.String("env", cfg.App.Env))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
	}
}
