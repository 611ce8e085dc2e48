package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/reelify/reelify-backend/internal/middleware"
	"github.com/reelify/reelify-backend/internal/model"
	"github.com/reelify/reelify-backend/internal/response"
	"github.com/reelify/reelify-backend/internal/service"
	"github.com/reelify/reelify-backend/internal/validator"
)

// SelectionHandler handles the pre-payment cart.
type SelectionHandler struct {
	selectionService *service.SelectionService
}

// NewSelectionHandler creates a new SelectionHandler.
func NewSelectionHandler(selectionService *service.SelectionService) *SelectionHandler {
	return &SelectionHandler{selectionService: selectionService}
}

// SelectClass godoc
// POST /selected
// Records the student's intent to take a class. The email in the body
// must match the verified token identity.
func (h *SelectionHandler) SelectClass(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.SelectClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if !strings.EqualFold(req.Email, claims.Email) {
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
		return
	}

	selection := &model.Selection{
		ClassID:      req.ClassID,
		StudentEmail: claims.Email,
	}

	if err := h.selectionService.Select(c.Request.Context(), selection); err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadySelected):
			response.Fail(c, http.StatusConflict, response.ErrAlreadySelected)
		case errors.Is(err, service.ErrClassNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"selection": selection})
}

// ListSelections godoc
// GET /selected/:email (owner-gated)
func (h *SelectionHandler) ListSelections(c *gin.Context) {
	selections, err := h.selectionService.ListByStudent(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"selections": selections})
}

// CancelSelection godoc
// DELETE /selected/:id
// Removes a selection; only the owning student can cancel it.
func (h *SelectionHandler) CancelSelection(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	affected, err := h.selectionService.Cancel(c.Request.Context(), id, claims.Email)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if affected == 0 {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": affected})
}
