package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hirewire/portal/internal/core/domain"
	"github.com/hirewire/portal/internal/core/ports"
)

func TestRequireIdentity_Allows(t *testing.T) {
	idp := &stubIdentity{claims: domain.Claims{IdentityID: "u1", Role: domain.RoleJobSeeker}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/user/update-role", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := RequireIdentity(idp)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(CtxIdentityID) != "u1" {
			t.Fatalf("identity id not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRequireIdentity_Anonymous(t *testing.T) {
	idp := &stubIdentity{err: ports.ErrNoIdentity}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/user/update-role", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequireIdentity(idp)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if err == nil {
		t.Fatalf("expected error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
