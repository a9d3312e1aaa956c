package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fixnow/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the dashboard under an admin-only group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.Stats)
	rg.GET("/users", h.ListUsers)
	rg.PUT("/users/:id/role", h.UpdateUserRole)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/payments/analytics", h.PaymentAnalytics)
	rg.GET("/professionals/verification", h.VerificationQueue)
	rg.GET("/reports", h.Report)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	users, total, err := h.service.ListUsers(c.Request.Context(), c.Query("role"), c.Query("search"), page, limit)
	if err != nil {
		h.renderError(c, err, "Failed to list users")
		return
	}
	response.Paginated(c, http.StatusOK, "users", users, page, limit, total)
}

func (h *Handler) UpdateUserRole(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.UpdateUserRole(c.Request.Context(), id, req.Role); err != nil {
		h.renderError(c, err, "Failed to update role")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) ListBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	bookings, total, err := h.service.ListBookings(
		c.Request.Context(),
		c.Query("status"),
		c.Query("service"),
		c.Query("start_date"),
		c.Query("end_date"),
		page, limit,
	)
	if err != nil {
		h.renderError(c, err, "Failed to list bookings")
		return
	}
	response.Paginated(c, http.StatusOK, "bookings", bookings, page, limit, total)
}

func (h *Handler) PaymentAnalytics(c *gin.Context) {
	buckets, err := h.service.PaymentAnalytics(c.Request.Context(), c.DefaultQuery("period", "month"))
	if err != nil {
		h.renderError(c, err, "Failed to compute analytics")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"analytics": buckets})
}

func (h *Handler) VerificationQueue(c *gin.Context) {
	pros, err := h.service.VerificationQueue(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.renderError(c, err, "Failed to load verification queue")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"professionals": pros})
}

func (h *Handler) Report(c *gin.Context) {
	rows, err := h.service.Report(
		c.Request.Context(),
		c.Query("type"),
		c.Query("start_date"),
		c.Query("end_date"),
	)
	if err != nil {
		h.renderError(c, err, "Failed to build report")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"report": rows})
}

func (h *Handler) renderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
