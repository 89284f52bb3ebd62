package holiday

import (
	"github.com/anas1606/attendance/internal/middleware"
	"github.com/anas1606/attendance/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	// Staff can read the holiday calendar; only admins can change it.
	holidays := r.Group("/holidays")
	holidays.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		read := rbac.Authorize(rbacService, "holidays", "read")

		holidays.GET("", read, h.List)
		holidays.GET("/:id", read, h.GetByID)
	}

	admin := r.Group("/admin/holidays")
	admin.Use(middleware.AuthMiddleware(), middleware.ExtractUserID(), middleware.RoleMiddleware("ADMIN"))
	{
		read := rbac.Authorize(rbacService, "holidays", "read")
		write := rbac.Authorize(rbacService, "holidays", "write")

		admin.GET("", read, h.List)
		admin.POST("", write, h.Create)
		admin.DELETE("/:id", write, h.Delete)
	}
}
