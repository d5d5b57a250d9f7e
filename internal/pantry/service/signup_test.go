package service_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
	"github.com/aussiebroadwan/pantry/internal/pantry/service"
	"github.com/aussiebroadwan/pantry/internal/pantry/store"
	"github.com/aussiebroadwan/pantry/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestSignup_DefaultFamily(t *testing.T) {
	e := newEnv(t)

	res := e.signupAdmin(t, "alice@example.com")
	require.Equal(t, "alice's Family", res.Family.Name)
	require.Equal(t, domain.RoleAdmin, res.Membership.Role)
	require.Equal(t, res.User.ID, res.Family.CreatedBy)

	fam, err := e.store.Families().GetFamilyByID(ctx(), res.Family.ID)
	require.NoError(t, err)
	require.Equal(t, "alice's Family", fam.Name)
}

func TestSignup_NamedFamily(t *testing.T) {
	e := newEnv(t)

	res, err := e.signup.Signup(ctx(), service.SignupRequest{
		Email: " carol@example.com ", Password: "pw", FamilyName: "  The Carols ",
	})
	require.NoError(t, err)
	require.Equal(t, "carol@example.com", res.User.Email)
	require.Equal(t, "The Carols", res.Family.Name)
	require.Equal(t, domain.RoleAdmin, res.Membership.Role)
}

func TestSignup_Validation(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		name string
		req  service.SignupRequest
	}{
		{"missing email", service.SignupRequest{Password: "pw"}},
		{"blank email", service.SignupRequest{Email: "   ", Password: "pw"}},
		{"missing password", service.SignupRequest{Email: "a@x.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.signup.Signup(ctx(), tt.req)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	e := newEnv(t)
	e.signupAdmin(t, "alice@example.com")

	_, err := e.signup.Signup(ctx(), service.SignupRequest{Email: "alice@example.com", Password: "pw"})
	require.ErrorIs(t, err, domain.ErrConflict)

	// Matching is exact, so a different case is a different account.
	_, err = e.signup.Signup(ctx(), service.SignupRequest{Email: "Alice@example.com", Password: "pw"})
	require.NoError(t, err)
}

func TestSignup_InvitationLifecycle(t *testing.T) {
	e := newEnv(t)
	alice := e.signupAdmin(t, "alice@example.com")

	inv, err := e.invites.Issue(ctx(), alice.User.ID, "bob@example.com", "")
	require.NoError(t, err)

	t.Run("mismatched email fails and leaves no user", func(t *testing.T) {
		_, err := e.signup.Signup(ctx(), service.SignupRequest{
			Email: "mallory@example.com", Password: "pw", InviteToken: inv.Token,
		})
		require.ErrorIs(t, err, domain.ErrInvitationEmailMismatch)
		require.ErrorIs(t, err, domain.ErrValidation)

		_, err = e.store.Users().GetUserByEmail(ctx(), "mallory@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("invitation beats family name", func(t *testing.T) {
		bob, err := e.signup.Signup(ctx(), service.SignupRequest{
			Email: "bob@example.com", Password: "pw", InviteToken: inv.Token, FamilyName: "Bob's Own",
		})
		require.NoError(t, err)
		require.Equal(t, alice.Family.ID, bob.Family.ID)
		require.Equal(t, domain.RoleMember, bob.Membership.Role)

		stored, err := e.store.Invitations().GetInvitationByTokenHash(ctx(), cryptox.FingerprintToken(inv.Token))
		require.NoError(t, err)
		require.Equal(t, domain.InvitationAccepted, stored.Status)
		require.Equal(t, bob.User.ID, stored.AcceptedBy)
	})

	t.Run("token is single use", func(t *testing.T) {
		_, err := e.signup.Signup(ctx(), service.SignupRequest{
			Email: "bob2@example.com", Password: "pw", InviteToken: inv.Token,
		})
		require.ErrorIs(t, err, domain.ErrInvalidInvitation)
	})
}

func TestSignup_InvalidTokens(t *testing.T) {
	e := newEnv(t)
	alice := e.signupAdmin(t, "alice@example.com")

	inv, err := e.invites.Issue(ctx(), alice.User.ID, "bob@example.com", "")
	require.NoError(t, err)

	t.Run("garbage", func(t *testing.T) {
		_, err := e.signup.Signup(ctx(), service.SignupRequest{Email: "bob@example.com", Password: "pw", InviteToken: "nope"})
		require.ErrorIs(t, err, domain.ErrInvalidInvitation)
	})

	t.Run("expired", func(t *testing.T) {
		late := &service.SignupService{Store: e.store, Hasher: e.signup.Hasher, Verifier: verifierAt(t, 25*time.Hour)}
		_, err := late.Signup(ctx(), service.SignupRequest{Email: "bob@example.com", Password: "pw", InviteToken: inv.Token})
		require.ErrorIs(t, err, domain.ErrInvalidInvitation)

		_, err = e.store.Users().GetUserByEmail(ctx(), "bob@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("validly signed but never issued", func(t *testing.T) {
		forged, err := e.invites.Signer.Sign(invClaims("bob@example.com"))
		require.NoError(t, err)
		_, err = e.signup.Signup(ctx(), service.SignupRequest{Email: "bob@example.com", Password: "pw", InviteToken: forged})
		require.ErrorIs(t, err, domain.ErrInvalidInvitation)
	})
}
