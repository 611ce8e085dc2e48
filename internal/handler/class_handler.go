package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/reelify/reelify-backend/internal/middleware"
	"github.com/reelify/reelify-backend/internal/model"
	"github.com/reelify/reelify-backend/internal/response"
	"github.com/reelify/reelify-backend/internal/service"
	"github.com/reelify/reelify-backend/internal/validator"
)

// ClassHandler handles class browsing, submission and approval.
type ClassHandler struct {
	classService *service.ClassService
	userService  *service.UserService
	popularLimit int
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(classService *service.ClassService, userService *service.UserService, popularLimit int) *ClassHandler {
	return &ClassHandler{
		classService: classService,
		userService:  userService,
		popularLimit: popularLimit,
	}
}

// ListApproved godoc
// GET /classes
// Lists all approved classes, the public catalog.
func (h *ClassHandler) ListApproved(c *gin.Context) {
	classes, err := h.classService.ListApproved(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}

// ListPopular godoc
// GET /classes/popular
// Top approved classes by enrollment count.
func (h *ClassHandler) ListPopular(c *gin.Context) {
	classes, err := h.classService.ListPopular(c.Request.Context(), h.popularLimit)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}

// GetClass godoc
// GET /classes/:id
func (h *ClassHandler) GetClass(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	class, err := h.classService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"class": class})
}

// SubmitClass godoc
// POST /classes (instructor-gated)
// Submits a new class for admin approval. The instructor identity
// comes from the verified token, never from the payload.
func (h *ClassHandler) SubmitClass(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.SubmitClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	instructor, err := h.userService.GetByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	class := &model.Class{
		Name:            req.Name,
		Image:           req.Image,
		InstructorName:  instructor.Name,
		InstructorEmail: instructor.Email,
		Price:           req.Price,
		Seats:           req.Seats,
	}

	if err := h.classService.Submit(c.Request.Context(), class); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"class": class})
}

// ListMine godoc
// GET /classes/mine/:email (owner-gated)
// Lists the instructor's own submissions, any status.
func (h *ClassHandler) ListMine(c *gin.Context) {
	classes, err := h.classService.ListByInstructor(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}

// ApproveClass godoc
// PATCH /classes/approved/:id (admin-gated)
func (h *ClassHandler) ApproveClass(c *gin.Context) {
	h.setStatus(c, model.ClassStatusApproved)
}

// DenyClass godoc
// PATCH /classes/denied/:id (admin-gated)
func (h *ClassHandler) DenyClass(c *gin.Context) {
	h.setStatus(c, model.ClassStatusDenied)
}

func (h *ClassHandler) setStatus(c *gin.Context, status model.ClassStatus) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	affected, err := h.classService.SetStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if affected == 0 {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "status": status})
}

// SetFeedback godoc
// PUT /classes/feedback/:id (admin-gated)
// Attaches admin feedback, typically alongside a deny decision.
func (h *ClassHandler) SetFeedback(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.ClassFeedbackRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	affected, err := h.classService.SetFeedback(c.Request.Context(), id, req.Feedback)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if affected == 0 {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "feedback": req.Feedback})
}
