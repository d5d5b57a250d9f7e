package service_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
	"github.com/aussiebroadwan/pantry/internal/pantry/service"
	"github.com/aussiebroadwan/pantry/pkg/cryptox"
	"github.com/aussiebroadwan/pantry/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestIssue(t *testing.T) {
	e := newEnv(t)
	alice := e.signupAdmin(t, "alice@example.com")

	inv, err := e.invites.Issue(ctx(), alice.User.ID, " bob@example.com ", "")
	require.NoError(t, err)
	require.NotEmpty(t, inv.Token)
	require.Equal(t, "bob@example.com", inv.Invitation.Email)
	require.Equal(t, alice.Family.ID, inv.Invitation.FamilyID)
	require.Equal(t, alice.User.ID, inv.Invitation.InvitedBy)
	require.Equal(t, domain.InvitationPending, inv.Invitation.Status)
	require.WithinDuration(t, time.Now().Add(domain.InvitationTTL), inv.Invitation.ExpiresAt, time.Minute)

	// Only the fingerprint is stored.
	stored, err := e.store.Invitations().GetInvitationByTokenHash(ctx(), cryptox.FingerprintToken(inv.Token))
	require.NoError(t, err)
	require.Equal(t, inv.Invitation.ID, stored.ID)
	require.NotEqual(t, inv.Token, stored.TokenHash)

	claims, err := e.tokens.Verify(inv.Token, jwtx.PurposeInvite)
	require.NoError(t, err)
	require.Equal(t, "bob@example.com", claims.Subject)
}

func TestIssue_Rejections(t *testing.T) {
	e := newEnv(t)
	alice := e.signupAdmin(t, "alice@example.com")
	bob := e.join(t, alice.User.ID, "bob@example.com")
	carol := e.signupAdmin(t, "carol@example.com")
	loner := e.loner(t, "loner@example.com")

	tests := []struct {
		name    string
		actor   string
		email   string
		family  string
		wantErr error
	}{
		{"member cannot invite", bob.User.ID, "dan@example.com", "", domain.ErrForbidden},
		{"foreign family", alice.User.ID, "dan@example.com", carol.Family.ID, domain.ErrForbidden},
		{"no membership", loner, "dan@example.com", "", domain.ErrNoMembership},
		{"missing email", alice.User.ID, "  ", "", domain.ErrValidation},
		{"already registered", alice.User.ID, "carol@example.com", "", domain.ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.invites.Issue(ctx(), tt.actor, tt.email, tt.family)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIssue_ExplicitOwnFamily(t *testing.T) {
	e := newEnv(t)
	alice := e.signupAdmin(t, "alice@example.com")

	inv, err := e.invites.Issue(ctx(), alice.User.ID, "bob@example.com", alice.Family.ID)
	require.NoError(t, err)
	require.Equal(t, alice.Family.ID, inv.Invitation.FamilyID)
}

func TestPreview(t *testing.T) {
	e := newEnv(t)
	alice := e.signupAdmin(t, "alice@example.com")

	inv, err := e.invites.Issue(ctx(), alice.User.ID, "bob@example.com", "")
	require.NoError(t, err)

	p, err := e.invites.Preview(ctx(), inv.Token)
	require.NoError(t, err)
	require.Equal(t, "bob@example.com", p.Email)
	require.Equal(t, alice.Family.ID, p.FamilyID)
	require.Equal(t, "alice's Family", p.FamilyName)

	t.Run("does not consume the invitation", func(t *testing.T) {
		_, err := e.invites.Preview(ctx(), inv.Token)
		require.NoError(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		late := &service.InviteService{Store: e.store, Verifier: verifierAt(t, 25*time.Hour)}
		_, err := late.Preview(ctx(), inv.Token)
		require.ErrorIs(t, err, domain.ErrInvalidInvitation)
	})

	t.Run("garbage and empty", func(t *testing.T) {
		for _, tok := range []string{"", "a.b.c"} {
			_, err := e.invites.Preview(ctx(), tok)
			require.ErrorIs(t, err, domain.ErrInvalidInvitation)
		}
	})

	t.Run("access token is not an invitation", func(t *testing.T) {
		access, err := e.tokens.Sign(jwtx.NewAccessClaims(alice.User.ID, time.Hour, issuer, time.Now()))
		require.NoError(t, err)
		_, err = e.invites.Preview(ctx(), access)
		require.ErrorIs(t, err, domain.ErrInvalidInvitation)
	})

	t.Run("accepted", func(t *testing.T) {
		_, err := e.signup.Signup(ctx(), service.SignupRequest{Email: "bob@example.com", Password: "pw", InviteToken: inv.Token})
		require.NoError(t, err)
		_, err = e.invites.Preview(ctx(), inv.Token)
		require.ErrorIs(t, err, domain.ErrInvalidInvitation)
	})
}

func TestListPending(t *testing.T) {
	e := newEnv(t)
	alice := e.signupAdmin(t, "alice@example.com")

	_, err := e.invites.Issue(ctx(), alice.User.ID, "bob@example.com", "")
	require.NoError(t, err)
	_, err = e.invites.Issue(ctx(), alice.User.ID, "carol@example.com", "")
	require.NoError(t, err)

	pending, err := e.invites.ListPending(ctx(), alice.User.ID)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	dan := e.join(t, alice.User.ID, "dan@example.com")
	_, err = e.invites.ListPending(ctx(), dan.User.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	pending, err = e.invites.ListPending(ctx(), alice.User.ID)
	require.NoError(t, err)
	require.Len(t, pending, 2, "accepted invitations are not pending")
}

func TestHousekeeping(t *testing.T) {
	e := newEnv(t)
	alice := e.signupAdmin(t, "alice@example.com")

	_, err := e.invites.Issue(ctx(), alice.User.ID, "bob@example.com", "")
	require.NoError(t, err)

	stale := domain.Invitation{
		ID:        "stale",
		Email:     "old@example.com",
		TokenHash: "stale-hash",
		FamilyID:  alice.Family.ID,
		InvitedBy: alice.User.ID,
		Status:    domain.InvitationPending,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, e.store.Invitations().CreateInvitation(ctx(), stale))

	hk := service.NewHousekeepingService(e.store, discard(), time.Hour)
	require.Equal(t, int64(1), hk.Cleanup(ctx()))
	require.Equal(t, int64(0), hk.Cleanup(ctx()))

	pending, err := e.invites.ListPending(ctx(), alice.User.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
}

func TestHousekeeping_StartStop(t *testing.T) {
	e := newEnv(t)
	hk := service.NewHousekeepingService(e.store, discard(), 0)
	require.Equal(t, time.Hour, hk.Interval)

	hk.Start()
	hk.Stop()
}
