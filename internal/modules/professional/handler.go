package professional

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fixnow/internal/domain"
	"fixnow/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public, unauthenticated surface.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/professionals", h.List)
	rg.GET("/professionals/:id", h.GetByID)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/professionals", h.CreateProfile)
	rg.PUT("/professionals/:id", h.UpdateProfile)
	rg.PUT("/professionals/:id/availability", h.UpdateAvailability)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/professionals/:id/verification", h.UpdateVerification)
}

func (h *Handler) List(c *gin.Context) {
	var serviceID int64
	if raw := c.Query("service_id"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service_id")
			return
		}
		serviceID = v
	}

	pros, err := h.service.List(c.Request.Context(), serviceID, c.Query("category"))
	if err != nil {
		h.renderError(c, err, "Failed to list professionals")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"professionals": pros})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err, "Failed to load professional")
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.CreateProfile(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.renderError(c, err, "Failed to create profile")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"professional": p})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.UpdateProfile(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		h.renderError(c, err, "Failed to update profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"professional": p})
}

func (h *Handler) UpdateAvailability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.UpdateAvailability(c.Request.Context(), id, c.GetInt64("user_id"), req.Availability)
	if err != nil {
		h.renderError(c, err, "Failed to update availability")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"professional": p})
}

func (h *Handler) UpdateVerification(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.UpdateVerification(c.Request.Context(), id, domain.VerificationStatus(req.Status))
	if err != nil {
		h.renderError(c, err, "Failed to update verification status")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"professional": p})
}

func (h *Handler) renderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid professional data")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Professional not found")
	case errors.Is(err, ErrProfileExists):
		response.Error(c, http.StatusConflict, "CONFLICT", "Professional profile already exists")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
