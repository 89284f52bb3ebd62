package ticket

import (
	"github.com/anas1606/attendance/internal/middleware"
	"github.com/anas1606/attendance/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	tickets := r.Group("/staff/tickets")
	tickets.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		read := rbac.Authorize(rbacService, "tickets", "read")
		write := rbac.Authorize(rbacService, "tickets", "write")

		tickets.POST("", write, h.Create)
		tickets.GET("", read, h.List)
		tickets.GET("/:id", read, h.GetByID)
		tickets.PUT("/:id/status", write, h.UpdateStatus)
		tickets.POST("/:id/comments", write, h.AddComment)
	}
}
