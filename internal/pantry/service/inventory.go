package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
	"github.com/aussiebroadwan/pantry/internal/pantry/store"
	"github.com/aussiebroadwan/pantry/pkg/idx"
	"github.com/aussiebroadwan/pantry/pkg/slogx"
)

type InventoryService struct {
	Store store.Store
}

// List returns the family's inventory by creation time, optionally limited
// to one location.
func (s *InventoryService) List(ctx context.Context, actorID, locationID string) ([]domain.InventoryEntry, error) {
	familyID, ok, err := familyForList(ctx, s.Store, actorID)
	if err != nil || !ok {
		return []domain.InventoryEntry{}, err
	}
	return s.Store.Inventory().ListInventory(ctx, familyID, locationID)
}

func (s *InventoryService) Get(ctx context.Context, actorID, id string) (domain.InventoryEntry, error) {
	familyID, err := familyForTarget(ctx, s.Store, actorID, "inventory entry")
	if err != nil {
		return domain.InventoryEntry{}, err
	}
	e, err := s.Store.Inventory().GetInventory(ctx, familyID, id)
	return e, mapStoreErr(err, "inventory entry")
}

// Create stocks an item at a location. Each (location, item) pair exists at
// most once per family.
func (s *InventoryService) Create(ctx context.Context, actorID, locationID, itemID string, quantity float64) (domain.InventoryEntry, error) {
	if err := domain.CheckQuantity(quantity); err != nil {
		return domain.InventoryEntry{}, err
	}
	familyID, err := familyForCreate(ctx, s.Store, actorID)
	if err != nil {
		return domain.InventoryEntry{}, err
	}

	loc, it, err := s.refs(ctx, s.Store, familyID, locationID, itemID)
	if err != nil {
		return domain.InventoryEntry{}, err
	}

	e := domain.InventoryEntry{
		ID:         idx.New().String(),
		FamilyID:   familyID,
		LocationID: loc.ID,
		ItemID:     it.ID,
		Quantity:   quantity,
	}
	if err := s.Store.Inventory().CreateInventory(ctx, e); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.InventoryEntry{}, fmt.Errorf("%w: %q is already stocked in %q", domain.ErrConflict, it.Name, loc.Name)
		}
		return domain.InventoryEntry{}, mapStoreErr(err, "inventory entry")
	}

	slogx.FromContext(ctx).Info("inventory created",
		slog.String("inventory_id", e.ID),
		slog.String("location_id", loc.ID),
		slog.String("item_id", it.ID),
	)
	return s.Store.Inventory().GetInventory(ctx, familyID, e.ID)
}

func (s *InventoryService) UpdateQuantity(ctx context.Context, actorID, id string, quantity float64) (domain.InventoryEntry, error) {
	if err := domain.CheckQuantity(quantity); err != nil {
		return domain.InventoryEntry{}, err
	}
	familyID, err := familyForTarget(ctx, s.Store, actorID, "inventory entry")
	if err != nil {
		return domain.InventoryEntry{}, err
	}

	if err := s.Store.Inventory().UpdateInventoryQuantity(ctx, familyID, id, quantity); err != nil {
		return domain.InventoryEntry{}, mapStoreErr(err, "inventory entry")
	}
	return s.Store.Inventory().GetInventory(ctx, familyID, id)
}

// Restock adds amount to the item's quantity at the location, creating the
// entry when the item is not stocked there yet.
func (s *InventoryService) Restock(ctx context.Context, actorID, locationID, itemID string, amount float64) (domain.InventoryEntry, error) {
	if err := domain.CheckQuantity(amount); err != nil {
		return domain.InventoryEntry{}, err
	}
	familyID, err := familyForCreate(ctx, s.Store, actorID)
	if err != nil {
		return domain.InventoryEntry{}, err
	}

	var out domain.InventoryEntry
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		loc, it, err := s.refs(ctx, tx, familyID, locationID, itemID)
		if err != nil {
			return err
		}

		existing, err := tx.Inventory().GetInventoryByLocationItem(ctx, familyID, loc.ID, it.ID)
		switch {
		case err == nil:
			if err := tx.Inventory().UpdateInventoryQuantity(ctx, familyID, existing.ID, existing.Quantity+amount); err != nil {
				return err
			}
			out, err = tx.Inventory().GetInventory(ctx, familyID, existing.ID)
			return err
		case errors.Is(err, store.ErrNotFound):
			e := domain.InventoryEntry{
				ID:         idx.New().String(),
				FamilyID:   familyID,
				LocationID: loc.ID,
				ItemID:     it.ID,
				Quantity:   amount,
			}
			if err := tx.Inventory().CreateInventory(ctx, e); err != nil {
				return err
			}
			out, err = tx.Inventory().GetInventory(ctx, familyID, e.ID)
			return err
		default:
			return err
		}
	})
	if err != nil {
		return domain.InventoryEntry{}, mapStoreErr(err, "inventory entry")
	}

	slogx.FromContext(ctx).Info("inventory restocked",
		slog.String("inventory_id", out.ID),
		slog.Float64("quantity", out.Quantity),
	)
	return out, nil
}

func (s *InventoryService) Delete(ctx context.Context, actorID, id string) error {
	familyID, err := familyForTarget(ctx, s.Store, actorID, "inventory entry")
	if err != nil {
		return err
	}
	return mapStoreErr(s.Store.Inventory().DeleteInventory(ctx, familyID, id), "inventory entry")
}

// refs loads the location and item, both of which must belong to familyID.
func (s *InventoryService) refs(ctx context.Context, st store.Store, familyID, locationID, itemID string) (domain.Location, domain.Item, error) {
	loc, err := st.Locations().GetLocation(ctx, familyID, locationID)
	if err != nil {
		return domain.Location{}, domain.Item{}, mapStoreErr(err, "location")
	}
	it, err := st.Items().GetItem(ctx, familyID, itemID)
	if err != nil {
		return domain.Location{}, domain.Item{}, mapStoreErr(err, "item")
	}
	return loc, it, nil
}
