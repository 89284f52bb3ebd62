package attendance

import (
	"github.com/anas1606/attendance/internal/middleware"
	"github.com/anas1606/attendance/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, rdb *redis.Client) {
	staff := r.Group("/staff")
	staff.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		write := rbac.Authorize(rbacService, "attendance", "write")
		idemp := middleware.Idempotency(rdb)

		staff.POST("/punch-in", write, idemp, h.PunchIn)
		staff.POST("/lunch-start", write, idemp, h.LunchStart)
		staff.POST("/lunch-end", write, idemp, h.LunchEnd)
		staff.POST("/punch-out", write, idemp, h.PunchOut)
		staff.POST("/mark-leave", write, idemp, h.MarkLeave)
		staff.GET("/attendance", rbac.Authorize(rbacService, "attendance", "read"), h.MonthAttendance)
	}
}
