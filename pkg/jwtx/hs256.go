package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinKeySize is the smallest HMAC key we accept, in bytes.
const MinKeySize = 32

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrPurpose     = errors.New("jwtx: wrong token purpose")
	ErrWeakKey     = errors.New("jwtx: signing key too short")
)

// Signer mints tokens.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a token of the expected purpose and returns its claims.
type Verifier interface {
	Verify(token string, purpose Purpose) (Claims, error)
}

// HS256 signs and verifies tokens with a single shared HMAC key.
type HS256 struct {
	key    []byte
	issuer string
	leeway time.Duration
	now    func() time.Time
}

type Option func(*HS256)

// WithLeeway tolerates clock skew when checking exp and nbf.
func WithLeeway(d time.Duration) Option {
	return func(h *HS256) { h.leeway = d }
}

// WithClock overrides the time source used during verification.
func WithClock(now func() time.Time) Option {
	return func(h *HS256) { h.now = now }
}

func NewHS256(key []byte, issuer string, opts ...Option) (*HS256, error) {
	if len(key) < MinKeySize {
		return nil, ErrWeakKey
	}

	h := &HS256{key: key, issuer: issuer, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

func (h *HS256) Sign(c Claims) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	s, err := tok.SignedString(h.key)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return s, nil
}

func (h *HS256) Verify(tokenStr string, purpose Purpose) (Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(h.leeway),
		jwt.WithTimeFunc(h.now),
	}
	if h.issuer != "" {
		opts = append(opts, jwt.WithIssuer(h.issuer))
	}

	var claims Claims
	_, err := jwt.NewParser(opts...).ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return h.key, nil
	})
	if err != nil {
		return Claims{}, classify(err)
	}

	if claims.Purpose != purpose {
		return Claims{}, ErrPurpose
	}
	return claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrIssuer
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
