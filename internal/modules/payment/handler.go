package payment

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments", h.Create)
	rg.POST("/payments/create-intent", h.CreateIntent)
	rg.POST("/payments/confirm", h.Confirm)
	// GET /payments doubles as the history endpoint: the router tree
	// does not allow a static /history sibling of /:id.
	rg.GET("/payments", h.History)
	rg.GET("/payments/:id", h.GetByID)
	rg.PATCH("/payments/:id/status", h.UpdateStatus)
}

// RegisterWebhookRoutes mounts the gateway callback. It lives outside
// the authenticated group: the gateway authenticates via signature.
func (h *Handler) RegisterWebhookRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/webhook", h.Webhook)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.CreateDirect(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.renderError(c, err, "Failed to record payment")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"payment": p})
}

func (h *Handler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	resp, err := h.service.CreateIntent(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.renderError(c, err, "Failed to create payment intent")
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) Confirm(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Confirm(c.Request.Context(), c.GetInt64("user_id"), req.IntentID)
	if err != nil {
		h.renderError(c, err, "Failed to confirm payment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment": p})
}

// Webhook must read the raw body before any JSON binding so the
// signature is verified over exactly the bytes the gateway signed.
func (h *Handler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unreadable body")
		return
	}

	if err := h.service.HandleWebhook(c.Request.Context(), body, c.GetHeader("Gateway-Signature")); err != nil {
		h.renderError(c, err, "Failed to process webhook")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"received": true})
}

func (h *Handler) History(c *gin.Context) {
	payments, err := h.service.History(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payment history")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": payments})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.renderError(c, err, "Failed to load payment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment": p})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.UpdateStatus(c.Request.Context(), id, c.GetInt64("user_id"), domain.PaymentStatus(req.Status))
	if err != nil {
		h.renderError(c, err, "Failed to update payment status")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment": p})
}

func (h *Handler) renderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment data")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	case errors.Is(err, ErrInvalidSignature):
		response.Error(c, http.StatusBadRequest, "INVALID_SIGNATURE", "Webhook signature verification failed")
	case errors.Is(err, ErrGateway):
		response.Error(c, http.StatusBadGateway, "GATEWAY_ERROR", "Payment gateway unavailable")
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
