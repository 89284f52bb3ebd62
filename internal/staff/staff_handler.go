package staff

import (
	"net/http"

	"github.com/anas1606/attendance/internal/shared/apperror"
	"github.com/anas1606/attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetMyProfile(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	resp, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": resp}, nil)
}

func (h *Handler) ListStaff(c *gin.Context) {
	resp, err := h.service.GetAllStaff(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"staff": resp}, nil)
}

func (h *Handler) StaffAttendance(c *gin.Context) {
	staffID := c.Param("id")
	month := c.Query("month")

	resp, err := h.service.StaffMonthlyAttendance(c.Request.Context(), staffID, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
