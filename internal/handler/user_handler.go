package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/reelify/reelify-backend/internal/model"
	"github.com/reelify/reelify-backend/internal/response"
	"github.com/reelify/reelify-backend/internal/service"
	"github.com/reelify/reelify-backend/internal/validator"
)

// UserHandler handles account upserts, profiles and role management.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpsertUser godoc
// PUT /users/:email
// Creates or refreshes a user on sign-in. Role from the payload is
// honored on first insert only (student or instructor; never admin);
// existing users keep their stored role.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var req model.UpsertUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user := &model.User{
		Name:  req.Name,
		Email: c.Param("email"),
		Photo: req.Photo,
		Role:  req.Role,
	}

	if err := h.userService.Upsert(c.Request.Context(), user, req.Password); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// GetUser godoc
// GET /users/:email
// Public profile lookup.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// ListInstructors godoc
// GET /instructors
func (h *UserHandler) ListInstructors(c *gin.Context) {
	instructors, err := h.userService.ListInstructors(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"instructors": instructors})
}

// ListPopularInstructors godoc
// GET /instructors/popular
func (h *UserHandler) ListPopularInstructors(popularLimit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		instructors, err := h.userService.ListPopularInstructors(c.Request.Context(), popularLimit)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}

		response.Success(c, http.StatusOK, gin.H{"instructors": instructors})
	}
}

// CheckAdmin godoc
// GET /users/admin/:email (owner-gated)
// Self-check used by the client to unlock the admin dashboard.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	h.checkRole(c, model.RoleAdmin, "admin")
}

// CheckInstructor godoc
// GET /users/instructor/:email (owner-gated)
func (h *UserHandler) CheckInstructor(c *gin.Context) {
	h.checkRole(c, model.RoleInstructor, "instructor")
}

func (h *UserHandler) checkRole(c *gin.Context, role model.Role, field string) {
	has, err := h.userService.HasRole(c.Request.Context(), c.Param("email"), role)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{field: has})
}

// GrantAdmin godoc
// PATCH /users/admin/:email (admin-gated)
func (h *UserHandler) GrantAdmin(c *gin.Context) {
	h.grantRole(c, model.RoleAdmin)
}

// GrantInstructor godoc
// PATCH /users/instructor/:email (admin-gated)
func (h *UserHandler) GrantInstructor(c *gin.Context) {
	h.grantRole(c, model.RoleInstructor)
}

func (h *UserHandler) grantRole(c *gin.Context, role model.Role) {
	affected, err := h.userService.GrantRole(c.Request.Context(), c.Param("email"), role)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if affected == 0 {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"email": c.Param("email"), "role": role})
}
