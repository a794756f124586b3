// Package entitlement gates pipeline invocation behind a per-identity free
// quota. Anonymous identities get a fixed number of generation runs;
// authenticated identities are unlimited.
package entitlement

import "fmt"

// IdentityKind distinguishes anonymous sessions from signed-up users.
type IdentityKind string

const (
	KindAnonymous     IdentityKind = "anonymous"
	KindAuthenticated IdentityKind = "authenticated"
)

// Identity is who is invoking the pipeline: an anonymous browser session or
// an authenticated user.
type Identity struct {
	kind IdentityKind
	id   string
}

// Anonymous returns an identity for an unauthenticated session.
func Anonymous(sessionID string) Identity {
	return Identity{kind: KindAnonymous, id: sessionID}
}

// Authenticated returns an identity for a signed-up user.
func Authenticated(userID string) Identity {
	return Identity{kind: KindAuthenticated, id: userID}
}

// Kind returns the identity's kind.
func (i Identity) Kind() IdentityKind { return i.kind }

// IsAuthenticated reports whether this identity has unlimited access.
func (i Identity) IsAuthenticated() bool { return i.kind == KindAuthenticated }

// Key returns the storage key for this identity. Anonymous sessions and
// users live in distinct namespaces so a session ID can never collide with
// a user ID.
func (i Identity) Key() string {
	if i.kind == KindAuthenticated {
		return "user:" + i.id
	}
	return "anon:" + i.id
}

// String implements fmt.Stringer.
func (i Identity) String() string {
	return fmt.Sprintf("%s(%s)", i.kind, i.id)
}
