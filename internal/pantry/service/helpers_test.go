package service_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
	"github.com/aussiebroadwan/pantry/internal/pantry/service"
	"github.com/aussiebroadwan/pantry/internal/pantry/store/drivers/sqlite"
	"github.com/aussiebroadwan/pantry/pkg/cryptox"
	"github.com/aussiebroadwan/pantry/pkg/jwtx"
	"github.com/aussiebroadwan/pantry/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const issuer = "pantry-test"

var signingKey = []byte(strings.Repeat("k", jwtx.MinKeySize))

type env struct {
	store  *sqlite.Store
	tokens *jwtx.HS256

	membership *service.MembershipService
	signup     *service.SignupService
	invites    *service.InviteService
	sessions   *service.SessionService
	locations  *service.LocationService
	stores     *service.StoreService
	aisles     *service.AisleService
	items      *service.ItemService
	inventory  *service.InventoryService
	shopping   *service.ShoppingListService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	tokens, err := jwtx.NewHS256(signingKey, issuer)
	require.NoError(t, err)

	hasher := cryptox.NewPasswordHasher("test-pepper")

	return &env{
		store:      st,
		tokens:     tokens,
		membership: &service.MembershipService{Store: st},
		signup:     &service.SignupService{Store: st, Hasher: hasher, Verifier: tokens},
		invites:    &service.InviteService{Store: st, Signer: tokens, Verifier: tokens, Issuer: issuer},
		sessions:   &service.SessionService{Store: st, Hasher: hasher, Signer: tokens, Issuer: issuer},
		locations:  &service.LocationService{Store: st},
		stores:     &service.StoreService{Store: st},
		aisles:     &service.AisleService{Store: st},
		items:      &service.ItemService{Store: st},
		inventory:  &service.InventoryService{Store: st},
		shopping:   &service.ShoppingListService{Store: st},
	}
}

func ctx() context.Context {
	return slogx.WithContext(context.Background(), slogx.Discard())
}

// signupAdmin creates a user who administers a new family.
func (e *env) signupAdmin(t *testing.T, email string) service.SignupResult {
	t.Helper()
	res, err := e.signup.Signup(ctx(), service.SignupRequest{Email: email, Password: "secret"})
	require.NoError(t, err)
	return res
}

// join invites email into the admin's family and signs them up with it.
func (e *env) join(t *testing.T, adminID, email string) service.SignupResult {
	t.Helper()
	inv, err := e.invites.Issue(ctx(), adminID, email, "")
	require.NoError(t, err)

	res, err := e.signup.Signup(ctx(), service.SignupRequest{Email: email, Password: "secret", InviteToken: inv.Token})
	require.NoError(t, err)
	return res
}

// loner creates a user with no family membership, which normal signup
// never produces.
func (e *env) loner(t *testing.T, email string) string {
	t.Helper()
	id := "loner-" + email
	require.NoError(t, e.store.Users().CreateUser(ctx(), domain.User{ID: id, Email: email, PasswordHash: "x", Active: true}))
	return id
}

func role(t *testing.T, e *env, userID string) domain.Role {
	t.Helper()
	m, err := e.membership.Resolve(ctx(), userID)
	require.NoError(t, err)
	return m.Role
}

// verifierAt returns a verifier whose clock is shifted by d.
func verifierAt(t *testing.T, d time.Duration) *jwtx.HS256 {
	t.Helper()
	v, err := jwtx.NewHS256(signingKey, issuer, jwtx.WithClock(func() time.Time { return time.Now().Add(d) }))
	require.NoError(t, err)
	return v
}

func invClaims(email string) jwtx.Claims {
	return jwtx.NewInviteClaims(email, domain.InvitationTTL, issuer, time.Now())
}

func discard() *slog.Logger { return slogx.Discard() }
