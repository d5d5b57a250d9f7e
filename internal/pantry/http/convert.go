package http

import (
	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
	"github.com/aussiebroadwan/pantry/pkg/pantrysdk"
)

func toLocation(l domain.Location) pantrysdk.Location {
	return pantrysdk.Location{
		ID:        l.ID,
		Name:      l.Name,
		ItemCount: l.ItemCount,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toStore(s domain.Store) pantrysdk.Store {
	return pantrysdk.Store{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}

func toAisle(a domain.Aisle) pantrysdk.Aisle {
	return pantrysdk.Aisle{
		ID:        a.ID,
		Name:      a.Name,
		StoreID:   a.StoreID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toItem(it domain.Item) pantrysdk.Item {
	return pantrysdk.Item{
		ID:          it.ID,
		Name:        it.Name,
		Category:    it.Category,
		DefaultUnit: it.DefaultUnit,
		Notes:       it.Notes,
		AisleID:     it.AisleID,
		StoreID:     it.StoreID,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func toInventoryEntry(e domain.InventoryEntry) pantrysdk.InventoryEntry {
	return pantrysdk.InventoryEntry{
		ID:           e.ID,
		LocationID:   e.LocationID,
		LocationName: e.LocationName,
		ItemID:       e.ItemID,
		ItemName:     e.ItemName,
		Quantity:     e.Quantity,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toShoppingListEntry(e domain.ShoppingListEntry) pantrysdk.ShoppingListEntry {
	return pantrysdk.ShoppingListEntry{
		ID:        e.ID,
		ItemID:    e.ItemID,
		ItemName:  e.ItemName,
		Quantity:  e.Quantity,
		Checked:   e.Checked,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}
