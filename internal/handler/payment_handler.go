package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reelify/reelify-backend/internal/model"
	"github.com/reelify/reelify-backend/internal/response"
	"github.com/reelify/reelify-backend/internal/service"
	"github.com/reelify/reelify-backend/internal/validator"
)

// PaymentHandler bridges to the payment provider.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePaymentIntent godoc
// POST /create-payment-intent
// Mints a client-side payment handle for the given price. Provider
// failures propagate to the caller; they are never retried here.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req model.CreatePaymentIntentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	clientSecret, err := h.paymentService.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		if errors.Is(err, service.ErrPaymentProvider) {
			response.Fail(c, http.StatusBadGateway, response.ErrPaymentProvider)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, model.CreatePaymentIntentResponse{ClientSecret: clientSecret})
}
