package app

import (
	"database/sql"

	"github.com/anas1606/attendance/internal/attendance"
	"github.com/anas1606/attendance/internal/auth"
	"github.com/anas1606/attendance/internal/holiday"
	"github.com/anas1606/attendance/internal/messaging/kafka"
	"github.com/anas1606/attendance/internal/rbac"
	"github.com/anas1606/attendance/internal/staff"
	"github.com/anas1606/attendance/internal/ticket"
	"github.com/anas1606/attendance/internal/user"

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
	userRepo := user.NewRepository(gormDB)
	staffRepo := staff.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	ticketRepo := ticket.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(userRepo)
	attendanceService := attendance.NewService(db, attendanceRepo, staffRepo, holidayRepo, outboxRepo)
	staffService := staff.NewService(staffRepo, attendanceRepo, holidayRepo, rdb)
	holidayService := holiday.NewService(db, holidayRepo)
	ticketService := ticket.NewService(db, ticketRepo, userRepo, outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	staffHandler := staff.NewHandler(staffService)
	holidayHandler := holiday.NewHandler(holidayService)
	ticketHandler := ticket.NewHandler(ticketService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, rdb)
		staff.RegisterRoutes(api, staffHandler, rbacService)
		holiday.RegisterRoutes(api, holidayHandler, rbacService)
		ticket.RegisterRoutes(api, ticketHandler, rbacService)
	}

	return nil
}
