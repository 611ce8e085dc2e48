package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/reelify/reelify-backend/internal/middleware"
	"github.com/reelify/reelify-backend/internal/model"
	"github.com/reelify/reelify-backend/internal/response"
	"github.com/reelify/reelify-backend/internal/service"
	"github.com/reelify/reelify-backend/internal/validator"
)

// EnrollmentHandler handles checkout and enrollment history.
type EnrollmentHandler struct {
	enrollmentService *service.EnrollmentService
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollmentService *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// Checkout godoc
// POST /payments
// Commits the enrollment transaction for a completed payment. The
// enrollment record, selection removal and seat decrement land
// atomically. Replaying the same payment reference is rejected.
func (h *EnrollmentHandler) Checkout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.CheckoutRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if !strings.EqualFold(req.Email, claims.Email) {
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
		return
	}

	result, err := h.enrollmentService.Checkout(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyProcessed):
			response.Fail(c, http.StatusConflict, response.ErrAlreadyProcessed)
		case errors.Is(err, service.ErrSoldOut):
			response.Fail(c, http.StatusConflict, response.ErrSoldOut)
		case errors.Is(err, service.ErrClassNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// ListEnrollments godoc
// GET /enrolled/:email (owner-gated)
// The student's enrollment history, newest first.
func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	enrollments, err := h.enrollmentService.ListByStudent(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"enrollments": enrollments})
}
