package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/reelify/reelify-backend/internal/model"
	"github.com/reelify/reelify-backend/internal/response"
	"github.com/reelify/reelify-backend/internal/service"
)

// RequireRole checks that the authenticated user holds one of the
// allowed roles. Role lives in storage, not in the token, so a grant
// or revocation takes effect on the next request rather than at the
// next token refresh. Must run after RequireJWT.
func RequireRole(userService *service.UserService, roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		user, err := userService.GetByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				response.AbortFail(c, http.StatusForbidden, response.ErrRoleRequired)
				return
			}
			response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		response.AbortFail(c, http.StatusForbidden, response.ErrRoleRequired)
	}
}
