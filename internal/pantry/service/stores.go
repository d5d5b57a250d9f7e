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

// StoreService manages the shops a family buys from.
type StoreService struct {
	Store store.Store
}

func (s *StoreService) List(ctx context.Context, actorID string) ([]domain.Store, error) {
	familyID, ok, err := familyForList(ctx, s.Store, actorID)
	if err != nil || !ok {
		return []domain.Store{}, err
	}
	return s.Store.Stores().ListStores(ctx, familyID)
}

func (s *StoreService) Get(ctx context.Context, actorID, id string) (domain.Store, error) {
	familyID, err := familyForTarget(ctx, s.Store, actorID, "store")
	if err != nil {
		return domain.Store{}, err
	}
	st, err := s.Store.Stores().GetStore(ctx, familyID, id)
	return st, mapStoreErr(err, "store")
}

func (s *StoreService) Create(ctx context.Context, actorID, rawName string) (domain.Store, error) {
	name, err := requireName("store", rawName)
	if err != nil {
		return domain.Store{}, err
	}
	familyID, err := familyForCreate(ctx, s.Store, actorID)
	if err != nil {
		return domain.Store{}, err
	}

	st := domain.Store{ID: idx.New().String(), FamilyID: familyID, Name: name}
	if err := s.Store.Stores().CreateStore(ctx, st); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Store{}, conflictName("store", name)
		}
		return domain.Store{}, err
	}

	slogx.FromContext(ctx).Info("store created", slog.String("store_id", st.ID))
	return s.Store.Stores().GetStore(ctx, familyID, st.ID)
}

func (s *StoreService) Rename(ctx context.Context, actorID, id, rawName string) (domain.Store, error) {
	name, err := requireName("store", rawName)
	if err != nil {
		return domain.Store{}, err
	}
	familyID, err := familyForTarget(ctx, s.Store, actorID, "store")
	if err != nil {
		return domain.Store{}, err
	}

	if err := s.Store.Stores().RenameStore(ctx, familyID, id, name); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Store{}, conflictName("store", name)
		}
		return domain.Store{}, mapStoreErr(err, "store")
	}
	return s.Store.Stores().GetStore(ctx, familyID, id)
}

// Delete refuses while items or aisles still point at the store.
func (s *StoreService) Delete(ctx context.Context, actorID, id string) error {
	familyID, err := familyForTarget(ctx, s.Store, actorID, "store")
	if err != nil {
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		st, err := tx.Stores().GetStore(ctx, familyID, id)
		if err != nil {
			return err
		}

		items, aisles, err := tx.Stores().CountStoreReferences(ctx, familyID, id)
		if err != nil {
			return err
		}
		if items > 0 || aisles > 0 {
			var itemPart, aislePart string
			if items > 0 {
				itemPart = pluralize(items, "item", "items")
			}
			if aisles > 0 {
				aislePart = pluralize(aisles, "aisle", "aisles")
			}
			return fmt.Errorf("%w: store %q is used by %s", domain.ErrInUse, st.Name, joinNonEmpty(itemPart, aislePart))
		}

		if err := tx.Stores().DeleteStore(ctx, familyID, id); err != nil {
			if errors.Is(err, store.ErrReferenced) {
				return fmt.Errorf("%w: store %q is still referenced", domain.ErrInUse, st.Name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return mapStoreErr(err, "store")
	}

	slogx.FromContext(ctx).Info("store deleted", slog.String("store_id", id))
	return nil
}
