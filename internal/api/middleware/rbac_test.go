package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
)

func rbacRequest(t *testing.T, user *domain.User, allowed ...domain.Role) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(CurrentUserKey, user)
	}

	handler := RequireRole(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	rec := rbacRequest(t, &domain.User{ID: "u1", Role: domain.RoleAdmin}, domain.RoleAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_AllowsExpertOnExpertRoute(t *testing.T) {
	rec := rbacRequest(t, &domain.User{ID: "u1", Role: domain.RoleExpert}, domain.RoleExpert)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_RejectsUserOnAdminRoute(t *testing.T) {
	rec := rbacRequest(t, &domain.User{ID: "u1", Role: domain.RoleUser}, domain.RoleAdmin)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_AdminSatisfiesExpertCheck(t *testing.T) {
	rec := rbacRequest(t, &domain.User{ID: "u1", Role: domain.RoleAdmin}, domain.RoleExpert)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin on expert route, got %d", rec.Code)
	}
}

func TestRequireRole_ExpertDoesNotSatisfyAdminCheck(t *testing.T) {
	rec := rbacRequest(t, &domain.User{ID: "u1", Role: domain.RoleExpert}, domain.RoleAdmin)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_MissingUserUnauthorized(t *testing.T) {
	rec := rbacRequest(t, nil, domain.RoleAdmin)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
