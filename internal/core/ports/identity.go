package ports

import (
	"errors"
	"net/http"

	"github.com/hirewire/portal/internal/core/domain"
)

// ErrNoIdentity is returned by Authenticate when the request carries no
// usable session: missing cookie, expired token, unknown session id. The
// caller is treated as anonymous. Any other error is a provider fault.
var ErrNoIdentity = errors.New("no identity")

// IdentityProvider abstracts the session/token layer. Exactly one contract
// regardless of whether claims live in a signed cookie or a server-held
// session store; the access-control middleware never sees the difference.
type IdentityProvider interface {
	// Authenticate reads the caller's current claim set from the request.
	Authenticate(r *http.Request) (domain.Claims, error)
	// Issue starts a session for the given claims (sets the cookie).
	Issue(w http.ResponseWriter, claims domain.Claims) error
	// SetRole rewrites the role in the caller's current claim set so the
	// very next request observes it.
	SetRole(w http.ResponseWriter, r *http.Request, role domain.Role) error
	// Clear ends the caller's session.
	Clear(w http.ResponseWriter, r *http.Request) error
}
