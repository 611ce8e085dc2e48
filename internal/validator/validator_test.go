package validator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/reelify/reelify-backend/internal/model"
)

func bindUpsert(t *testing.T, body string) map[string]string {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("PUT", "/users/alice@x.com", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req model.UpsertUserRequest
	return Bind(c, &req)
}

func TestBindUpsertAcceptedRoles(t *testing.T) {
	Setup()

	for _, role := range []string{"student", "instructor"} {
		if fields := bindUpsert(t, `{"name":"Alice","role":"`+role+`"}`); fields != nil {
			t.Errorf("role %q rejected: %v", role, fields)
		}
	}
}

func TestBindUpsertRejectsAdminRole(t *testing.T) {
	Setup()

	// Admin accounts come from the CLI or the role-grant endpoints, never
	// from the open sign-in upsert.
	fields := bindUpsert(t, `{"name":"Evil","role":"admin"}`)
	if fields == nil {
		t.Fatal("admin role accepted on self-registration")
	}
	if _, ok := fields["role"]; !ok {
		t.Errorf("expected a role field error, got %v", fields)
	}
}

func TestBindReportsFieldErrors(t *testing.T) {
	Setup()

	fields := bindUpsert(t, `{"photo":"not-a-url"}`)
	if fields == nil {
		t.Fatal("invalid payload accepted")
	}
	if _, ok := fields["name"]; !ok {
		t.Errorf("expected a name field error, got %v", fields)
	}
	if _, ok := fields["photo"]; !ok {
		t.Errorf("expected a photo field error, got %v", fields)
	}
}
