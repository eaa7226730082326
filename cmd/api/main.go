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

	"github.com/soomspa/spa-backend-go/internal/config"
	appHTTP "github.com/soomspa/spa-backend-go/internal/handler/http"
	"github.com/soomspa/spa-backend-go/internal/pkg/cron"
	"github.com/soomspa/spa-backend-go/internal/pkg/database"
	"github.com/soomspa/spa-backend-go/internal/pkg/jwt"
	"github.com/soomspa/spa-backend-go/internal/pkg/oauth"
	"github.com/soomspa/spa-backend-go/internal/repository/postgresql"
	attendanceService "github.com/soomspa/spa-backend-go/internal/service/attendance"
	authService "github.com/soomspa/spa-backend-go/internal/service/auth"
	courseService "github.com/soomspa/spa-backend-go/internal/service/course"
	dashboardService "github.com/soomspa/spa-backend-go/internal/service/dashboard"
	employeeService "github.com/soomspa/spa-backend-go/internal/service/employee"
	expenseService "github.com/soomspa/spa-backend-go/internal/service/expense"
	extraPaymentService "github.com/soomspa/spa-backend-go/internal/service/extrapayment"
	saleService "github.com/soomspa/spa-backend-go/internal/service/sale"
	settlementService "github.com/soomspa/spa-backend-go/internal/service/settlement"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	dsn := cfg.DatabaseURL()
	if err := database.Migrate(dsn, "file://migrations"); err != nil {
		fmt.Println("Error running migrations:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	loc := cfg.Location()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	courseRepo := postgresql.NewCourseRepository(db)
	saleRepo := postgresql.NewSaleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	extraPaymentRepo := postgresql.NewExtraPaymentRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	settlementRepo := postgresql.NewSettlementRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	courseSvc := courseService.NewCourseService(courseRepo)
	saleSvc := saleService.NewSaleService(saleRepo, courseRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, loc, cfg.Shop.BusinessDayStartHour)
	extraPaymentSvc := extraPaymentService.NewExtraPaymentService(extraPaymentRepo, employeeRepo)
	expenseSvc := expenseService.NewExpenseService(expenseRepo)
	settlementSvc := settlementService.NewSettlementService(settlementRepo, employeeRepo, attendanceRepo, saleRepo, extraPaymentRepo, loc)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, loc)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService, googleService),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Course:       appHTTP.NewCourseHandler(courseSvc),
		Sale:         appHTTP.NewSaleHandler(saleSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		ExtraPayment: appHTTP.NewExtraPaymentHandler(extraPaymentSvc),
		Expense:      appHTTP.NewExpenseHandler(expenseSvc),
		Settlement:   appHTTP.NewSettlementHandler(settlementSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
}
