package main

import (
	"fmt"
	"net/http"

	"github.com/hrms-app/hrms-backend-go/internal/config"
	appHTTP "github.com/hrms-app/hrms-backend-go/internal/handler/http"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrms-app/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrms-app/hrms-backend-go/internal/service/attendance"
	serviceAuth "github.com/hrms-app/hrms-backend-go/internal/service/auth"
	employeeService "github.com/hrms-app/hrms-backend-go/internal/service/employee"
	leaveService "github.com/hrms-app/hrms-backend-go/internal/service/leave"
	payrollService "github.com/hrms-app/hrms-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolSettings{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpireMinutes)
	authSvc := serviceAuth.NewAuthService(db, userRepo, jwtSvc)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, employeeRepo, userRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	userHandler := appHTTP.NewUserHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	healthHandler := appHTTP.NewHealthHandler(db)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		userHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		healthHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
