package service_test

import (
	"testing"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
	"github.com/aussiebroadwan/pantry/internal/pantry/service"
	"github.com/stretchr/testify/require"
)

type stocked struct {
	user   string
	fridge domain.Location
	pantry domain.Location
	milk   domain.Item
	eggs   domain.Item
}

func stock(t *testing.T, e *env) stocked {
	t.Helper()
	var s stocked
	var err error

	s.user = e.signupAdmin(t, "alice@example.com").User.ID
	s.fridge, err = e.locations.Create(ctx(), s.user, "Fridge")
	require.NoError(t, err)
	s.pantry, err = e.locations.Create(ctx(), s.user, "Pantry")
	require.NoError(t, err)
	s.milk, err = e.items.Create(ctx(), s.user, service.ItemInput{Name: "Milk", DefaultUnit: "l"})
	require.NoError(t, err)
	s.eggs, err = e.items.Create(ctx(), s.user, service.ItemInput{Name: "Eggs"})
	require.NoError(t, err)
	return s
}

func TestInventory(t *testing.T) {
	e := newEnv(t)
	s := stock(t, e)

	milk, err := e.inventory.Create(ctx(), s.user, s.fridge.ID, s.milk.ID, 2)
	require.NoError(t, err)
	require.Equal(t, "Milk", milk.ItemName)
	require.Equal(t, "Fridge", milk.LocationName)
	require.InDelta(t, 2.0, milk.Quantity, 1e-9)

	_, err = e.inventory.Create(ctx(), s.user, s.fridge.ID, s.milk.ID, 1)
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = e.inventory.Create(ctx(), s.user, s.fridge.ID, s.eggs.ID, -1)
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = e.inventory.Create(ctx(), s.user, s.pantry.ID, s.eggs.ID, 12)
	require.NoError(t, err)

	all, err := e.inventory.List(ctx(), s.user, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, milk.ID, all[0].ID)

	fridgeOnly, err := e.inventory.List(ctx(), s.user, s.fridge.ID)
	require.NoError(t, err)
	require.Len(t, fridgeOnly, 1)

	locs, err := e.locations.List(ctx(), s.user)
	require.NoError(t, err)
	require.Len(t, locs, 2)
	require.Equal(t, 1, locs[0].ItemCount)

	updated, err := e.inventory.UpdateQuantity(ctx(), s.user, milk.ID, 0)
	require.NoError(t, err)
	require.Zero(t, updated.Quantity)

	_, err = e.inventory.UpdateQuantity(ctx(), s.user, milk.ID, -3)
	require.ErrorIs(t, err, domain.ErrValidation)

	require.NoError(t, e.inventory.Delete(ctx(), s.user, milk.ID))
	require.ErrorIs(t, e.inventory.Delete(ctx(), s.user, milk.ID), domain.ErrNotFound)
}

func TestInventory_Restock(t *testing.T) {
	e := newEnv(t)
	s := stock(t, e)

	first, err := e.inventory.Restock(ctx(), s.user, s.fridge.ID, s.milk.ID, 1.5)
	require.NoError(t, err)
	require.InDelta(t, 1.5, first.Quantity, 1e-9)

	second, err := e.inventory.Restock(ctx(), s.user, s.fridge.ID, s.milk.ID, 2)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.InDelta(t, 3.5, second.Quantity, 1e-9)

	_, err = e.inventory.Restock(ctx(), s.user, "missing", s.milk.ID, 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShoppingList(t *testing.T) {
	e := newEnv(t)
	s := stock(t, e)

	entry, created, err := e.shopping.Add(ctx(), s.user, s.milk.ID, 2)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "Milk", entry.ItemName)
	require.False(t, entry.Checked)

	again, created, err := e.shopping.Add(ctx(), s.user, s.milk.ID, 5)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, entry.ID, again.ID)

	_, _, err = e.shopping.Add(ctx(), s.user, s.eggs.ID, 12)
	require.NoError(t, err)

	n, err := e.shopping.CountUnchecked(ctx(), s.user)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	toggled, err := e.shopping.Toggle(ctx(), s.user, entry.ID)
	require.NoError(t, err)
	require.True(t, toggled.Checked)

	n, err = e.shopping.CountUnchecked(ctx(), s.user)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	removed, err := e.shopping.ClearChecked(ctx(), s.user)
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)

	list, err := e.shopping.List(ctx(), s.user)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Eggs", list[0].ItemName)

	_, err = e.shopping.Toggle(ctx(), s.user, entry.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, e.shopping.Delete(ctx(), s.user, list[0].ID))
	require.ErrorIs(t, e.shopping.Delete(ctx(), s.user, list[0].ID), domain.ErrNotFound)
}
