package staff

import (
	"github.com/anas1606/attendance/internal/middleware"
	"github.com/anas1606/attendance/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	me := r.Group("/staff")
	me.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		me.GET("/profile", rbac.Authorize(rbacService, "staff", "read"), h.GetMyProfile)
	}

	admin := r.Group("/admin/staff")
	admin.Use(middleware.AuthMiddleware(), middleware.ExtractUserID(), middleware.RoleMiddleware("ADMIN"))
	{
		read := rbac.Authorize(rbacService, "staff", "read")

		admin.GET("", read, h.ListStaff)
		admin.GET("/:id/attendance", read, h.StaffAttendance)
	}
}
