package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
	"github.com/aussiebroadwan/pantry/internal/pantry/store"
	"github.com/aussiebroadwan/pantry/internal/pantry/store/drivers/sqlite"
	"github.com/aussiebroadwan/pantry/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// seedFamily creates a user and a family with that user as admin.
func seedFamily(t *testing.T, st store.Store, email string) (userID, familyID string) {
	t.Helper()
	ctx := context.Background()

	userID = idx.New().String()
	familyID = idx.New().String()

	require.NoError(t, st.Users().CreateUser(ctx, domain.User{ID: userID, Email: email, PasswordHash: "x", Active: true}))
	require.NoError(t, st.Families().CreateFamily(ctx, domain.Family{ID: familyID, Name: email + "'s Family", CreatedBy: userID}))
	require.NoError(t, st.Members().CreateMember(ctx, domain.Member{
		ID: idx.New().String(), FamilyID: familyID, UserID: userID, Role: domain.RoleAdmin,
	}))
	return userID, familyID
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.ApplyMigrations())

	version, dirty, err := st.MigrationVersion()
	require.NoError(t, err)
	require.False(t, dirty)
	require.EqualValues(t, 1, version)
}

func TestUsers(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	u := domain.User{ID: idx.New().String(), Email: "alice@x.com", PasswordHash: "h", Active: true}
	require.NoError(t, st.Users().CreateUser(ctx, u))

	got, err := st.Users().GetUserByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.True(t, got.Active)
	require.False(t, got.Verified)
	require.False(t, got.CreatedAt.IsZero())

	_, err = st.Users().GetUserByEmail(ctx, "Alice@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	err = st.Users().CreateUser(ctx, domain.User{ID: idx.New().String(), Email: "alice@x.com", PasswordHash: "h"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestMembers(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	alice, fam := seedFamily(t, st, "alice@x.com")

	t.Run("single membership per user", func(t *testing.T) {
		err := st.Members().CreateMember(ctx, domain.Member{
			ID: idx.New().String(), FamilyID: fam, UserID: alice, Role: domain.RoleMember,
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("count admins and update role", func(t *testing.T) {
		bob := idx.New().String()
		require.NoError(t, st.Users().CreateUser(ctx, domain.User{ID: bob, Email: "bob@x.com", PasswordHash: "h"}))
		require.NoError(t, st.Members().CreateMember(ctx, domain.Member{
			ID: idx.New().String(), FamilyID: fam, UserID: bob, Role: domain.RoleMember,
		}))

		n, err := st.Members().CountAdmins(ctx, fam)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		require.NoError(t, st.Members().UpdateMemberRole(ctx, fam, bob, domain.RoleAdmin))
		n, err = st.Members().CountAdmins(ctx, fam)
		require.NoError(t, err)
		require.Equal(t, 2, n)

		err = st.Members().UpdateMemberRole(ctx, "other-family", bob, domain.RoleMember)
		require.ErrorIs(t, err, store.ErrNotFound)

		views, err := st.Members().ListFamilyMembers(ctx, fam)
		require.NoError(t, err)
		require.Len(t, views, 2)
		require.Equal(t, "alice@x.com", views[0].Email)
	})
}

func TestInvitations(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	alice, fam := seedFamily(t, st, "alice@x.com")

	now := time.Now().UTC()
	live := domain.Invitation{
		ID: idx.New().String(), Email: "bob@x.com", TokenHash: "live", FamilyID: fam,
		InvitedBy: alice, ExpiresAt: now.Add(time.Hour),
	}
	stale := domain.Invitation{
		ID: idx.New().String(), Email: "carol@x.com", TokenHash: "stale", FamilyID: fam,
		InvitedBy: alice, ExpiresAt: now.Add(-time.Hour),
	}
	require.NoError(t, st.Invitations().CreateInvitation(ctx, live))
	require.NoError(t, st.Invitations().CreateInvitation(ctx, stale))

	got, err := st.Invitations().GetInvitationByTokenHash(ctx, "live")
	require.NoError(t, err)
	require.Equal(t, domain.InvitationPending, got.Status)
	require.Empty(t, got.AcceptedBy)

	pending, err := st.Invitations().ListPendingInvitations(ctx, fam, now)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, live.ID, pending[0].ID)

	require.NoError(t, st.Invitations().MarkInvitationAccepted(ctx, live.ID, alice))
	require.ErrorIs(t, st.Invitations().MarkInvitationAccepted(ctx, live.ID, alice), store.ErrNotFound)

	got, err = st.Invitations().GetInvitationByTokenHash(ctx, "live")
	require.NoError(t, err)
	require.Equal(t, domain.InvitationAccepted, got.Status)
	require.Equal(t, alice, got.AcceptedBy)

	n, err := st.Invitations().DeleteExpiredInvitations(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = st.Invitations().GetInvitationByTokenHash(ctx, "stale")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestTenantScopedUniqueness(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	_, famA := seedFamily(t, st, "alice@x.com")
	_, famB := seedFamily(t, st, "carol@x.com")

	require.NoError(t, st.Locations().CreateLocation(ctx, domain.Location{ID: idx.New().String(), FamilyID: famA, Name: "Pantry"}))
	require.NoError(t, st.Locations().CreateLocation(ctx, domain.Location{ID: idx.New().String(), FamilyID: famB, Name: "Pantry"}))

	err := st.Locations().CreateLocation(ctx, domain.Location{ID: idx.New().String(), FamilyID: famA, Name: "Pantry"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	a, err := st.Locations().ListLocations(ctx, famA)
	require.NoError(t, err)
	require.Len(t, a, 1)

	_, err = st.Locations().GetLocation(ctx, famB, a[0].ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, st.Locations().DeleteLocation(ctx, famB, a[0].ID), store.ErrNotFound)
}

func TestReferentialRules(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	_, fam := seedFamily(t, st, "alice@x.com")

	storeID := idx.New().String()
	aisleID := idx.New().String()
	itemID := idx.New().String()
	locID := idx.New().String()

	require.NoError(t, st.Stores().CreateStore(ctx, domain.Store{ID: storeID, FamilyID: fam, Name: "Grocer"}))
	require.NoError(t, st.Aisles().CreateAisle(ctx, domain.Aisle{ID: aisleID, FamilyID: fam, Name: "Dairy", StoreID: storeID}))
	require.NoError(t, st.Items().CreateItem(ctx, domain.Item{ID: itemID, FamilyID: fam, Name: "Milk", AisleID: aisleID, StoreID: storeID}))
	require.NoError(t, st.Locations().CreateLocation(ctx, domain.Location{ID: locID, FamilyID: fam, Name: "Fridge"}))
	require.NoError(t, st.Inventory().CreateInventory(ctx, domain.InventoryEntry{
		ID: idx.New().String(), FamilyID: fam, LocationID: locID, ItemID: itemID, Quantity: 2,
	}))
	require.NoError(t, st.ShoppingList().CreateShoppingListEntry(ctx, domain.ShoppingListEntry{
		ID: idx.New().String(), FamilyID: fam, ItemID: itemID, Quantity: 1,
	}))

	t.Run("store references counted", func(t *testing.T) {
		items, aisles, err := st.Stores().CountStoreReferences(ctx, fam, storeID)
		require.NoError(t, err)
		require.Equal(t, 1, items)
		require.Equal(t, 1, aisles)
	})

	t.Run("location delete restricted by inventory", func(t *testing.T) {
		n, err := st.Locations().CountLocationInventory(ctx, fam, locID)
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.ErrorIs(t, st.Locations().DeleteLocation(ctx, fam, locID), store.ErrReferenced)
	})

	t.Run("store delete restricted by aisle and item", func(t *testing.T) {
		require.ErrorIs(t, st.Stores().DeleteStore(ctx, fam, storeID), store.ErrReferenced)

		// The failed delete left the row in place.
		_, err := st.Stores().GetStore(ctx, fam, storeID)
		require.NoError(t, err)
	})

	t.Run("restricted delete inside a transaction", func(t *testing.T) {
		err := st.WithTx(ctx, func(tx store.Tx) error {
			return tx.Locations().DeleteLocation(ctx, fam, locID)
		})
		require.ErrorIs(t, err, store.ErrReferenced)
	})

	t.Run("location listing carries counts", func(t *testing.T) {
		locs, err := st.Locations().ListLocations(ctx, fam)
		require.NoError(t, err)
		require.Len(t, locs, 1)
		require.Equal(t, 1, locs[0].ItemCount)
	})

	t.Run("aisle delete clears item reference", func(t *testing.T) {
		require.NoError(t, st.Aisles().DeleteAisle(ctx, fam, aisleID))
		it, err := st.Items().GetItem(ctx, fam, itemID)
		require.NoError(t, err)
		require.Empty(t, it.AisleID)
		require.Equal(t, storeID, it.StoreID)
	})

	t.Run("item delete cascades", func(t *testing.T) {
		require.NoError(t, st.Items().DeleteItem(ctx, fam, itemID))

		inv, err := st.Inventory().ListInventory(ctx, fam, "")
		require.NoError(t, err)
		require.Empty(t, inv)

		list, err := st.ShoppingList().ListShoppingList(ctx, fam)
		require.NoError(t, err)
		require.Empty(t, list)

		require.NoError(t, st.Locations().DeleteLocation(ctx, fam, locID))
		require.NoError(t, st.Stores().DeleteStore(ctx, fam, storeID))
	})
}

func TestShoppingList(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	_, fam := seedFamily(t, st, "alice@x.com")

	var entryIDs []string
	for _, name := range []string{"Milk", "Eggs", "Bread"} {
		itemID := idx.New().String()
		require.NoError(t, st.Items().CreateItem(ctx, domain.Item{ID: itemID, FamilyID: fam, Name: name}))
		id := idx.New().String()
		require.NoError(t, st.ShoppingList().CreateShoppingListEntry(ctx, domain.ShoppingListEntry{ID: id, FamilyID: fam, ItemID: itemID}))
		entryIDs = append(entryIDs, id)
	}

	list, err := st.ShoppingList().ListShoppingList(ctx, fam)
	require.NoError(t, err)
	require.Equal(t, []string{"Milk", "Eggs", "Bread"}, []string{list[0].ItemName, list[1].ItemName, list[2].ItemName})

	require.NoError(t, st.ShoppingList().SetShoppingListChecked(ctx, fam, entryIDs[0], true))
	n, err := st.ShoppingList().CountUnchecked(ctx, fam)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	removed, err := st.ShoppingList().DeleteCheckedShoppingList(ctx, fam)
	require.NoError(t, err)
	require.EqualValues(t, 1, removed)

	require.ErrorIs(t, st.ShoppingList().SetShoppingListChecked(ctx, "other", entryIDs[1], true), store.ErrNotFound)
}

func TestWithTx(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	t.Run("rollback on error", func(t *testing.T) {
		err := st.WithTx(ctx, func(tx store.Tx) error {
			require.NoError(t, tx.Users().CreateUser(ctx, domain.User{ID: idx.New().String(), Email: "ghost@x.com", PasswordHash: "h"}))
			return sql.ErrConnDone
		})
		require.ErrorIs(t, err, sql.ErrConnDone)

		_, err = st.Users().GetUserByEmail(ctx, "ghost@x.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("commit on success", func(t *testing.T) {
		require.NoError(t, st.WithTx(ctx, func(tx store.Tx) error {
			return tx.Users().CreateUser(ctx, domain.User{ID: idx.New().String(), Email: "real@x.com", PasswordHash: "h"})
		}))

		_, err := st.Users().GetUserByEmail(ctx, "real@x.com")
		require.NoError(t, err)
	})

	t.Run("nested tx rejected", func(t *testing.T) {
		err := st.WithTx(ctx, func(tx store.Tx) error {
			return tx.WithTx(ctx, func(store.Tx) error { return nil })
		})
		require.ErrorIs(t, err, sql.ErrTxDone)
	})
}
