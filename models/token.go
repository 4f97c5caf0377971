package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT session token with convenience accessors for
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [SessionClaims] for claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be placed in the auth cookie or an
// Authorization header.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SessionClaims carries the identity claims embedded in the token.
	SessionClaims

	// SignedString is the compact JWS representation of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	// Internal server-side cache populated during issue/parse.
	UserID int64 `json:"-"`
}

// SessionClaims is the claim set of a session token: the standard RFC 7519
// registered claims plus the identity attributes the UI needs without an
// extra user lookup.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Email is the email address of the token owner.
	Email string `json:"email,omitempty"`

	// Name is the display name of the token owner.
	Name string `json:"name,omitempty"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.SessionClaims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
