// Package identity provides the two session backends behind the
// ports.IdentityProvider contract: a self-contained signed JWT cookie and
// a server-held Redis session. Both speak through the same cookie name so
// the rest of the system never knows which one is active.
package identity

import (
	"context"
	"net/http"
	"time"
)

const sessionCookie = "portal_session"

const storeTimeout = 5 * time.Second

func contextWithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), storeTimeout)
}

func newSessionCookie(value string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
