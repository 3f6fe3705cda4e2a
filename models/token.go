package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried by every session token.
// It extends the RFC 7519 registered claims with an explicit role claim so
// that admin sessions are distinguished by a typed field rather than by the
// shape of the subject.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Role is RoleUser or RoleAdmin.
	Role string `json:"role"`
}

// Token wraps a JWT session token with convenience accessors for
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [SessionClaims] for claim access (subject, expiry, role).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in the session cookie.
//
// UserID is a cached copy of the "sub" (subject) claim, populated during
// token construction or parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the
	// compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SessionClaims provides access to the token's claim set.
	SessionClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	// Excluded from JSON serialization; it is an internal server-side cache.
	UserID string `json:"-"`
}

// IsAdmin reports whether the token carries the admin role claim.
func (t *Token) IsAdmin() bool {
	return t.Role == RoleAdmin
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
