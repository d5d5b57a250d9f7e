package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
	"github.com/aussiebroadwan/pantry/internal/pantry/store"
	"github.com/aussiebroadwan/pantry/pkg/idx"
	"github.com/aussiebroadwan/pantry/pkg/slogx"
)

type ShoppingListService struct {
	Store store.Store
}

func (s *ShoppingListService) List(ctx context.Context, actorID string) ([]domain.ShoppingListEntry, error) {
	familyID, ok, err := familyForList(ctx, s.Store, actorID)
	if err != nil || !ok {
		return []domain.ShoppingListEntry{}, err
	}
	return s.Store.ShoppingList().ListShoppingList(ctx, familyID)
}

// Add puts an item on the list. Adding an item that is already listed
// returns the existing entry with created false.
func (s *ShoppingListService) Add(ctx context.Context, actorID, itemID string, quantity float64) (entry domain.ShoppingListEntry, created bool, err error) {
	if err := domain.CheckQuantity(quantity); err != nil {
		return domain.ShoppingListEntry{}, false, err
	}
	familyID, err := familyForCreate(ctx, s.Store, actorID)
	if err != nil {
		return domain.ShoppingListEntry{}, false, err
	}

	if _, err := s.Store.Items().GetItem(ctx, familyID, itemID); err != nil {
		return domain.ShoppingListEntry{}, false, mapStoreErr(err, "item")
	}

	existing, err := s.Store.ShoppingList().GetShoppingListEntryByItem(ctx, familyID, itemID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.ShoppingListEntry{}, false, err
	}

	e := domain.ShoppingListEntry{
		ID:       idx.New().String(),
		FamilyID: familyID,
		ItemID:   itemID,
		Quantity: quantity,
	}
	if err := s.Store.ShoppingList().CreateShoppingListEntry(ctx, e); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost a race with a concurrent add of the same item.
			existing, err := s.Store.ShoppingList().GetShoppingListEntryByItem(ctx, familyID, itemID)
			return existing, false, err
		}
		return domain.ShoppingListEntry{}, false, mapStoreErr(err, "shopping list entry")
	}

	slogx.FromContext(ctx).Info("shopping list entry added",
		slog.String("entry_id", e.ID),
		slog.String("item_id", itemID),
	)
	entry, err = s.Store.ShoppingList().GetShoppingListEntry(ctx, familyID, e.ID)
	return entry, true, err
}

// Toggle flips the checked flag and returns the updated entry.
func (s *ShoppingListService) Toggle(ctx context.Context, actorID, id string) (domain.ShoppingListEntry, error) {
	familyID, err := familyForTarget(ctx, s.Store, actorID, "shopping list entry")
	if err != nil {
		return domain.ShoppingListEntry{}, err
	}

	var out domain.ShoppingListEntry
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		e, err := tx.ShoppingList().GetShoppingListEntry(ctx, familyID, id)
		if err != nil {
			return err
		}
		if err := tx.ShoppingList().SetShoppingListChecked(ctx, familyID, id, !e.Checked); err != nil {
			return err
		}
		out, err = tx.ShoppingList().GetShoppingListEntry(ctx, familyID, id)
		return err
	})
	if err != nil {
		return domain.ShoppingListEntry{}, mapStoreErr(err, "shopping list entry")
	}
	return out, nil
}

func (s *ShoppingListService) Delete(ctx context.Context, actorID, id string) error {
	familyID, err := familyForTarget(ctx, s.Store, actorID, "shopping list entry")
	if err != nil {
		return err
	}
	return mapStoreErr(s.Store.ShoppingList().DeleteShoppingListEntry(ctx, familyID, id), "shopping list entry")
}

func (s *ShoppingListService) CountUnchecked(ctx context.Context, actorID string) (int, error) {
	familyID, ok, err := familyForList(ctx, s.Store, actorID)
	if err != nil || !ok {
		return 0, err
	}
	return s.Store.ShoppingList().CountUnchecked(ctx, familyID)
}

// ClearChecked removes every checked entry and returns how many went.
func (s *ShoppingListService) ClearChecked(ctx context.Context, actorID string) (int64, error) {
	familyID, ok, err := familyForList(ctx, s.Store, actorID)
	if err != nil || !ok {
		return 0, err
	}

	n, err := s.Store.ShoppingList().DeleteCheckedShoppingList(ctx, familyID)
	if err != nil {
		return 0, err
	}
	slogx.FromContext(ctx).Info("checked shopping list entries cleared", slog.Int64("removed", n))
	return n, nil
}
