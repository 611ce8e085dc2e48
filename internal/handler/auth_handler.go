package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reelify/reelify-backend/internal/model"
	"github.com/reelify/reelify-backend/internal/response"
	"github.com/reelify/reelify-backend/internal/service"
	"github.com/reelify/reelify-backend/internal/validator"
)

// AuthHandler issues bearer tokens.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// IssueToken godoc
// POST /jwt
// Issues a 7-day bearer token for the given email. Identity is trusted
// to have been authenticated upstream (the sign-in provider); this
// endpoint deliberately performs no credential check of its own.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req model.IssueTokenRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, err := h.authService.IssueToken(req.Email)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, model.IssueTokenResponse{Token: token})
}
