package domain

// Claims is the per-request capability set read from the identity
// provider: who the caller is and, once role selection has happened,
// which role they act as. An empty IdentityID means anonymous; an empty
// Role means the caller signed up but has not completed role selection.
type Claims struct {
	IdentityID string
	Role       Role
}

// Authenticated reports whether the claims belong to a signed-in caller.
func (c Claims) Authenticated() bool {
	return c.IdentityID != ""
}

// HasRole reports whether the caller has completed role selection.
func (c Claims) HasRole() bool {
	return c.Role.Valid()
}
