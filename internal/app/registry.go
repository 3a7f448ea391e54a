package app

import (
	"database/sql"

	"hradmin/internal/attendance"
	"hradmin/internal/audit"
	"hradmin/internal/auth"
	"hradmin/internal/employee"
	"hradmin/internal/leave"
	"hradmin/internal/messaging/kafka"
	"hradmin/internal/middleware"
	"hradmin/internal/salary"
	"hradmin/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	auditRepo := audit.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	salaryRepo := salary.NewRepository(gormDB)

	// --- Services ---
	auditRecorder := audit.NewRecorder(auditRepo)
	authService := auth.NewService(authRepo)
	attendanceService := attendance.NewServiceWithOutbox(attendanceRepo, employeeRepo, outboxRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	leaveService := leave.NewService(db, leaveRepo, auditRecorder)
	salaryService := salary.NewService(salaryRepo, attendanceRepo, outboxRepo, auditRecorder)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	auditHandler := audit.NewHandler(auditRepo)
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)
	salaryHandler := salary.NewHandler(salaryService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rdb)
		audit.RegisterRoutes(api, auditHandler)
		employee.RegisterRoutes(api, employeeHandler)
		leave.RegisterRoutes(api, leaveHandler)
		salary.RegisterRoutes(api, salaryHandler, rdb)
	}

	return nil
}
