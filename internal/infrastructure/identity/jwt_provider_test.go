package identity

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hirewire/portal/internal/core/domain"
	"github.com/hirewire/portal/internal/core/ports"
)

func issuedCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == sessionCookie {
			return ck
		}
	}
	t.Fatalf("no session cookie issued")
	return nil
}

func requestWith(ck *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(ck)
	return req
}

func TestJWTProvider_RoundTrip(t *testing.T) {
	p := NewJWTProvider("secret", time.Hour, false)

	rec := httptest.NewRecorder()
	if err := p.Issue(rec, domain.Claims{IdentityID: "u1", Role: domain.RoleEmployer}); err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := p.Authenticate(requestWith(issuedCookie(t, rec)))
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if claims.IdentityID != "u1" || claims.Role != domain.RoleEmployer {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTProvider_RoleAbsent(t *testing.T) {
	p := NewJWTProvider("secret", time.Hour, false)

	rec := httptest.NewRecorder()
	if err := p.Issue(rec, domain.Claims{IdentityID: "u1"}); err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := p.Authenticate(requestWith(issuedCookie(t, rec)))
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if claims.HasRole() {
		t.Fatalf("expected role absent, got %q", claims.Role)
	}
}

func TestJWTProvider_SetRoleReissues(t *testing.T) {
	p := NewJWTProvider("secret", time.Hour, false)

	rec := httptest.NewRecorder()
	if err := p.Issue(rec, domain.Claims{IdentityID: "u1"}); err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec2 := httptest.NewRecorder()
	if err := p.SetRole(rec2, requestWith(issuedCookie(t, rec)), domain.RoleJobSeeker); err != nil {
		t.Fatalf("set role: %v", err)
	}

	claims, err := p.Authenticate(requestWith(issuedCookie(t, rec2)))
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if claims.IdentityID != "u1" || claims.Role != domain.RoleJobSeeker {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTProvider_NoCookie(t *testing.T) {
	p := NewJWTProvider("secret", time.Hour, false)

	_, err := p.Authenticate(httptest.NewRequest(http.MethodGet, "/", nil))
	if !errors.Is(err, ports.ErrNoIdentity) {
		t.Fatalf("expected ErrNoIdentity, got %v", err)
	}
}

func TestJWTProvider_TamperedToken(t *testing.T) {
	p := NewJWTProvider("secret", time.Hour, false)

	rec := httptest.NewRecorder()
	if err := p.Issue(rec, domain.Claims{IdentityID: "u1", Role: domain.RoleEmployer}); err != nil {
		t.Fatalf("issue: %v", err)
	}
	ck := issuedCookie(t, rec)
	ck.Value += "x"

	if _, err := p.Authenticate(requestWith(ck)); !errors.Is(err, ports.ErrNoIdentity) {
		t.Fatalf("expected ErrNoIdentity, got %v", err)
	}
}

func TestJWTProvider_WrongSecret(t *testing.T) {
	issuer := NewJWTProvider("secret-a", time.Hour, false)
	verifier := NewJWTProvider("secret-b", time.Hour, false)

	rec := httptest.NewRecorder()
	if err := issuer.Issue(rec, domain.Claims{IdentityID: "u1"}); err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Authenticate(requestWith(issuedCookie(t, rec))); !errors.Is(err, ports.ErrNoIdentity) {
		t.Fatalf("expected ErrNoIdentity, got %v", err)
	}
}

func TestJWTProvider_ExpiredToken(t *testing.T) {
	p := NewJWTProvider("secret", time.Hour, false)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	ck := &http.Cookie{Name: sessionCookie, Value: signed}
	if _, err := p.Authenticate(requestWith(ck)); !errors.Is(err, ports.ErrNoIdentity) {
		t.Fatalf("expected ErrNoIdentity, got %v", err)
	}
}

func TestJWTProvider_ClearExpiresCookie(t *testing.T) {
	p := NewJWTProvider("secret", time.Hour, false)

	rec := httptest.NewRecorder()
	if err := p.Clear(rec, httptest.NewRequest(http.MethodPost, "/", nil)); err != nil {
		t.Fatalf("clear: %v", err)
	}

	ck := issuedCookie(t, rec)
	if ck.MaxAge >= 0 {
		t.Fatalf("expected expiring cookie, got MaxAge=%d", ck.MaxAge)
	}
}
