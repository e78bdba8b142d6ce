package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the payload of an issued access token: the account name
// and tier on top of the registered claims (sub, iss, iat, exp).
type TokenClaims struct {
	Name string `json:"username"`
	Tier Tier   `json:"type"`

	jwt.RegisteredClaims
}

// Token wraps a signed JWT together with its decoded claims.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims holds the decoded payload.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
