package identity

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hirewire/portal/internal/core/domain"
	"github.com/hirewire/portal/internal/core/ports"
)

// JWTProvider keeps the whole claim set inside an HS256-signed cookie.
// There is no server-side state: SetRole re-issues the cookie, Clear
// expires it.
type JWTProvider struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewJWTProvider(secret string, ttl time.Duration, secure bool) *JWTProvider {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTProvider{secret: []byte(secret), ttl: ttl, secure: secure}
}

func (p *JWTProvider) Authenticate(r *http.Request) (domain.Claims, error) {
	ck, err := r.Cookie(sessionCookie)
	if err != nil || ck.Value == "" {
		return domain.Claims{}, ports.ErrNoIdentity
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(ck.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return p.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Claims{}, ports.ErrNoIdentity
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return domain.Claims{}, ports.ErrNoIdentity
	}
	role, _ := claims["role"].(string)
	return domain.Claims{IdentityID: sub, Role: domain.Role(role)}, nil
}

func (p *JWTProvider) Issue(w http.ResponseWriter, cl domain.Claims) error {
	claims := jwt.MapClaims{
		"sub": cl.IdentityID,
		"exp": time.Now().Add(p.ttl).Unix(),
	}
	if cl.Role != "" {
		claims["role"] = string(cl.Role)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, newSessionCookie(signed, int(p.ttl.Seconds()), p.secure))
	return nil
}

func (p *JWTProvider) SetRole(w http.ResponseWriter, r *http.Request, role domain.Role) error {
	cl, err := p.Authenticate(r)
	if err != nil {
		return err
	}
	cl.Role = role
	return p.Issue(w, cl)
}

func (p *JWTProvider) Clear(w http.ResponseWriter, _ *http.Request) error {
	http.SetCookie(w, newSessionCookie("", -1, p.secure))
	return nil
}
