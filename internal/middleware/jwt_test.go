package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reelify/reelify-backend/internal/config"
	"github.com/reelify/reelify-backend/internal/service"
)

func newGuardedRouter(authService *service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/selected/:email", RequireJWT(authService), RequireOwner("email"), func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	return r
}

func newTestAuthService() *service.AuthService {
	return service.NewAuthService(&config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	})
}

func TestRequireJWTMissingToken(t *testing.T) {
	r := newGuardedRouter(newTestAuthService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/selected/alice@x.com", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireJWTBadToken(t *testing.T) {
	r := newGuardedRouter(newTestAuthService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/selected/alice@x.com", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireOwnerMismatch(t *testing.T) {
	authService := newTestAuthService()
	r := newGuardedRouter(authService)

	token, err := authService.IssueToken("bob@x.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/selected/alice@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestRequireOwnerMatch(t *testing.T) {
	authService := newTestAuthService()
	r := newGuardedRouter(authService)

	token, err := authService.IssueToken("alice@x.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/selected/alice@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestRequireJWTQueryFallback(t *testing.T) {
	// WebSocket upgrades pass the token as ?token= instead of a header.
	authService := newTestAuthService()
	r := newGuardedRouter(authService)

	token, err := authService.IssueToken("alice@x.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/selected/alice@x.com?token="+token, nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
