package service_test

import (
	"testing"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
	"github.com/aussiebroadwan/pantry/internal/pantry/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

// TestHouseholdHandover walks a family from one admin to another.
func TestHouseholdHandover(t *testing.T) {
	e := newEnv(t)

	alice := e.signupAdmin(t, "alice@example.com")
	require.Equal(t, "alice's Family", alice.Family.Name)

	bob := e.join(t, alice.User.ID, "bob@example.com")
	require.Equal(t, alice.Family.ID, bob.Family.ID)
	require.Equal(t, domain.RoleMember, role(t, e, bob.User.ID))

	famID := alice.Family.ID
	require.NoError(t, e.membership.ChangeRole(ctx(), alice.User.ID, bob.User.ID, famID, "admin"))
	require.NoError(t, e.membership.ChangeRole(ctx(), alice.User.ID, alice.User.ID, famID, "member"))

	require.Equal(t, domain.RoleAdmin, role(t, e, bob.User.ID))
	require.Equal(t, domain.RoleMember, role(t, e, alice.User.ID))

	err := e.membership.ChangeRole(ctx(), bob.User.ID, bob.User.ID, famID, "member")
	require.ErrorIs(t, err, domain.ErrLastAdmin)
	require.Equal(t, domain.RoleAdmin, role(t, e, bob.User.ID))

	// Alice is no longer an admin and cannot take the role back.
	err = e.membership.ChangeRole(ctx(), alice.User.ID, alice.User.ID, famID, "admin")
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestChangeRole(t *testing.T) {
	e := newEnv(t)
	alice := e.signupAdmin(t, "alice@example.com")
	bob := e.join(t, alice.User.ID, "bob@example.com")
	other := e.signupAdmin(t, "carol@example.com")
	famID := alice.Family.ID

	tests := []struct {
		name    string
		actor   string
		target  string
		family  string
		role    string
		wantErr error
	}{
		{"unknown role", alice.User.ID, bob.User.ID, famID, "owner", domain.ErrValidation},
		{"role is case sensitive", alice.User.ID, bob.User.ID, famID, "Admin", domain.ErrValidation},
		{"member cannot change roles", bob.User.ID, bob.User.ID, famID, "admin", domain.ErrForbidden},
		{"admin of another family", other.User.ID, bob.User.ID, famID, "admin", domain.ErrForbidden},
		{"admin naming a foreign family", alice.User.ID, other.User.ID, other.Family.ID, "member", domain.ErrForbidden},
		{"target outside the family", alice.User.ID, other.User.ID, famID, "member", domain.ErrNotFound},
		{"sole admin self demotion", alice.User.ID, alice.User.ID, famID, "member", domain.ErrLastAdmin},
		{"same role is a no-op", alice.User.ID, bob.User.ID, famID, "member", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.membership.ChangeRole(ctx(), tt.actor, tt.target, tt.family, tt.role)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	require.Equal(t, domain.RoleAdmin, role(t, e, alice.User.ID))
	require.Equal(t, domain.RoleMember, role(t, e, bob.User.ID))
	require.Equal(t, domain.RoleAdmin, role(t, e, other.User.ID))
}

func TestChangeRole_NoMembership(t *testing.T) {
	e := newEnv(t)
	alice := e.signupAdmin(t, "alice@example.com")
	loner := e.loner(t, "loner@example.com")

	err := e.membership.ChangeRole(ctx(), loner, alice.User.ID, alice.Family.ID, "member")
	require.ErrorIs(t, err, domain.ErrNoMembership)
}

func TestChangeRole_Metrics(t *testing.T) {
	e := newEnv(t)
	reg := prometheus.NewRegistry()
	e.membership.Metrics = service.NewMetrics(reg)

	alice := e.signupAdmin(t, "alice@example.com")
	require.ErrorIs(t,
		e.membership.ChangeRole(ctx(), alice.User.ID, alice.User.ID, alice.Family.ID, "member"),
		domain.ErrLastAdmin,
	)

	n, err := testutil.GatherAndCount(reg, "pantry_role_changes_total")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestOverview(t *testing.T) {
	e := newEnv(t)
	alice := e.signupAdmin(t, "alice@example.com")
	e.join(t, alice.User.ID, "bob@example.com")

	ov, err := e.membership.Overview(ctx(), alice.User.ID)
	require.NoError(t, err)
	require.Equal(t, alice.Family.ID, ov.Family.ID)
	require.Equal(t, domain.RoleAdmin, ov.Role)
	require.Len(t, ov.Members, 2)
	require.Equal(t, "alice@example.com", ov.Members[0].Email)
	require.Equal(t, domain.RoleAdmin, ov.Members[0].Role)
	require.Equal(t, "bob@example.com", ov.Members[1].Email)
	require.Equal(t, domain.RoleMember, ov.Members[1].Role)

	_, err = e.membership.Overview(ctx(), e.loner(t, "x@example.com"))
	require.ErrorIs(t, err, domain.ErrNoMembership)
}
