package ticket

import (
	"net/http"
	"strconv"

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

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"ticket": resp}, nil)
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id_validated")
	role := c.GetString("role")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := ListFilter{
		View:   c.Query("view"),
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	resp, meta, err := h.service.List(c.Request.Context(), userID, role, filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tickets": resp}, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	userID := c.GetString("user_id_validated")
	role := c.GetString("role")

	resp, err := h.service.GetByID(c.Request.Context(), userID, role, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ticket": resp}, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	userID := c.GetString("user_id_validated")
	role := c.GetString("role")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), userID, role, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ticket": resp}, nil)
}

func (h *Handler) AddComment(c *gin.Context) {
	userID := c.GetString("user_id_validated")
	role := c.GetString("role")

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.AddComment(c.Request.Context(), userID, role, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"comment": resp}, nil)
}
