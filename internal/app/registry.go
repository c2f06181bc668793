package app

import (
	"database/sql"

	"go-absensi/internal/attendance"
	"go-absensi/internal/compliance"
	"go-absensi/internal/employee"
	"go-absensi/internal/leave"
	"go-absensi/internal/leavequota"
	"go-absensi/internal/loan"
	"go-absensi/internal/messaging/kafka"
	"go-absensi/internal/payroll"
	"go-absensi/internal/settings"

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
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	loanRepo := loan.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	quotaRepo := leavequota.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)

	// --- Services ---
	accumulator := compliance.NewAccumulator(
		attendanceRepo,
		compliance.NewOutboxSink(outboxRepo),
	)
	attendanceService := attendance.NewService(db, attendanceRepo, attendance.NewNoopGate(), accumulator)
	employeeService := employee.NewService(employeeRepo)
	quotaTracker := leavequota.NewTracker(quotaRepo)
	leaveService := leave.NewService(db, leaveRepo, quotaTracker)
	returnMonitor := leave.NewReturnMonitor(leaveRepo, attendanceRepo)
	loanService := loan.NewService(db, loanRepo)
	settingsProvider := settings.NewProvider(settingsRepo, rdb)
	deductionCalc := payroll.NewDeductionCalculator(loanRepo, attendanceRepo, settingsProvider)
	payrollService := payroll.NewService(db, payrollRepo, employeeRepo, deductionCalc, loanService)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService, returnMonitor)
	loanHandler := loan.NewHandler(loanService)
	payrollHandler := payroll.NewHandler(payrollService)
	quotaHandler := leavequota.NewHandler(quotaTracker)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler, rdb)
		employee.RegisterRoutes(api, employeeHandler)
		leave.RegisterRoutes(api, leaveHandler)
		leavequota.RegisterRoutes(api, quotaHandler)
		loan.RegisterRoutes(api, loanHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
	}

	return nil
}
