package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/pantry/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testKey = []byte(strings.Repeat("k", jwtx.MinKeySize))

func newHS(t *testing.T, now time.Time, opts ...jwtx.Option) *jwtx.HS256 {
	t.Helper()
	opts = append(opts, jwtx.WithClock(func() time.Time { return now }))
	h, err := jwtx.NewHS256(testKey, "pantry", opts...)
	require.NoError(t, err)
	return h
}

func TestNewHS256_RejectsShortKey(t *testing.T) {
	_, err := jwtx.NewHS256([]byte("short"), "pantry")
	require.ErrorIs(t, err, jwtx.ErrWeakKey)
}

func TestHS256_RoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h := newHS(t, now)

	tok, err := h.Sign(jwtx.NewInviteClaims("bob@x.com", jwtx.DefaultInviteTTL, "pantry", now))
	require.NoError(t, err)

	claims, err := h.Verify(tok, jwtx.PurposeInvite)
	require.NoError(t, err)
	require.Equal(t, "bob@x.com", claims.Subject)
	require.Equal(t, jwtx.PurposeInvite, claims.Purpose)
	require.Equal(t, now.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
	require.NotEmpty(t, claims.ID)
}

func TestHS256_DistinctTokensSameInstant(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h := newHS(t, now)

	a, err := h.Sign(jwtx.NewInviteClaims("bob@x.com", time.Hour, "pantry", now))
	require.NoError(t, err)
	b, err := h.Sign(jwtx.NewInviteClaims("bob@x.com", time.Hour, "pantry", now))
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestHS256_Rejections(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	signer := newHS(t, issued)

	invite, err := signer.Sign(jwtx.NewInviteClaims("bob@x.com", time.Hour, "pantry", issued))
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		_, err := newHS(t, issued.Add(2*time.Hour)).Verify(invite, jwtx.PurposeInvite)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("leeway covers skew", func(t *testing.T) {
		_, err := newHS(t, issued.Add(time.Hour+30*time.Second), jwtx.WithLeeway(time.Minute)).Verify(invite, jwtx.PurposeInvite)
		require.NoError(t, err)
	})

	t.Run("wrong purpose", func(t *testing.T) {
		_, err := signer.Verify(invite, jwtx.PurposeAccess)
		require.ErrorIs(t, err, jwtx.ErrPurpose)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := jwtx.NewHS256([]byte(strings.Repeat("z", 32)), "pantry", jwtx.WithClock(func() time.Time { return issued }))
		require.NoError(t, err)
		_, err = other.Verify(invite, jwtx.PurposeInvite)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other, err := jwtx.NewHS256(testKey, "elsewhere", jwtx.WithClock(func() time.Time { return issued }))
		require.NoError(t, err)
		_, err = other.Verify(invite, jwtx.PurposeInvite)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := signer.Verify("not-a-token", jwtx.PurposeInvite)
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("tampered", func(t *testing.T) {
		parts := strings.Split(invite, ".")
		tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
		_, err := signer.Verify(tampered, jwtx.PurposeInvite)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})
}
