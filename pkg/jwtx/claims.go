package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultAccessTokenTTL = 12 * time.Hour
	DefaultInviteTTL      = 24 * time.Hour
)

// Purpose separates token kinds that share a signing key so an invitation
// can never be presented as an access token and vice versa.
type Purpose string

const (
	PurposeAccess Purpose = "access"
	PurposeInvite Purpose = "invite"
)

// Claims are the registered JWT claims plus a purpose tag. For access tokens
// the subject is the user id; for invitations it is the invitee email.
type Claims struct {
	jwt.RegisteredClaims

	Purpose Purpose `json:"pur"`
}

func NewAccessClaims(userID string, ttl time.Duration, issuer string, now time.Time) Claims {
	return newClaims(PurposeAccess, userID, ttl, issuer, now)
}

func NewInviteClaims(email string, ttl time.Duration, issuer string, now time.Time) Claims {
	return newClaims(PurposeInvite, email, ttl, issuer, now)
}

func newClaims(p Purpose, subject string, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Purpose: p,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim. It makes
// two tokens minted in the same second for the same subject distinct.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
