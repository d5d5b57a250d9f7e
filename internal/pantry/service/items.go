package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
	"github.com/aussiebroadwan/pantry/internal/pantry/store"
	"github.com/aussiebroadwan/pantry/pkg/idx"
	"github.com/aussiebroadwan/pantry/pkg/slogx"
)

type ItemInput struct {
	Name        string
	Category    string
	DefaultUnit string
	Notes       string
	AisleID     string
	StoreID     string
}

// ItemPatch leaves nil fields unchanged. Empty AisleID or StoreID clears the
// reference.
type ItemPatch struct {
	Name        *string
	Category    *string
	DefaultUnit *string
	Notes       *string
	AisleID     *string
	StoreID     *string
}

type ItemService struct {
	Store store.Store
}

func (s *ItemService) List(ctx context.Context, actorID string) ([]domain.Item, error) {
	familyID, ok, err := familyForList(ctx, s.Store, actorID)
	if err != nil || !ok {
		return []domain.Item{}, err
	}
	return s.Store.Items().ListItems(ctx, familyID)
}

func (s *ItemService) Get(ctx context.Context, actorID, id string) (domain.Item, error) {
	familyID, err := familyForTarget(ctx, s.Store, actorID, "item")
	if err != nil {
		return domain.Item{}, err
	}
	it, err := s.Store.Items().GetItem(ctx, familyID, id)
	return it, mapStoreErr(err, "item")
}

func (s *ItemService) Create(ctx context.Context, actorID string, in ItemInput) (domain.Item, error) {
	name, err := requireName("item", in.Name)
	if err != nil {
		return domain.Item{}, err
	}
	familyID, err := familyForCreate(ctx, s.Store, actorID)
	if err != nil {
		return domain.Item{}, err
	}

	it := domain.Item{
		ID:          idx.New().String(),
		FamilyID:    familyID,
		Name:        name,
		Category:    strings.TrimSpace(in.Category),
		DefaultUnit: strings.TrimSpace(in.DefaultUnit),
		Notes:       strings.TrimSpace(in.Notes),
		AisleID:     strings.TrimSpace(in.AisleID),
		StoreID:     strings.TrimSpace(in.StoreID),
	}
	if err := s.checkRefs(ctx, it); err != nil {
		return domain.Item{}, err
	}

	if err := s.Store.Items().CreateItem(ctx, it); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Item{}, conflictName("item", name)
		}
		return domain.Item{}, mapStoreErr(err, "item")
	}

	slogx.FromContext(ctx).Info("item created", slog.String("item_id", it.ID))
	return s.Store.Items().GetItem(ctx, familyID, it.ID)
}

func (s *ItemService) Update(ctx context.Context, actorID, id string, p ItemPatch) (domain.Item, error) {
	familyID, err := familyForTarget(ctx, s.Store, actorID, "item")
	if err != nil {
		return domain.Item{}, err
	}

	it, err := s.Store.Items().GetItem(ctx, familyID, id)
	if err != nil {
		return domain.Item{}, mapStoreErr(err, "item")
	}

	if p.Name != nil {
		if it.Name, err = requireName("item", *p.Name); err != nil {
			return domain.Item{}, err
		}
	}
	setTrimmed(&it.Category, p.Category)
	setTrimmed(&it.DefaultUnit, p.DefaultUnit)
	setTrimmed(&it.Notes, p.Notes)
	setTrimmed(&it.AisleID, p.AisleID)
	setTrimmed(&it.StoreID, p.StoreID)

	if err := s.checkRefs(ctx, it); err != nil {
		return domain.Item{}, err
	}

	if err := s.Store.Items().UpdateItem(ctx, it); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Item{}, conflictName("item", it.Name)
		}
		return domain.Item{}, mapStoreErr(err, "item")
	}
	return s.Store.Items().GetItem(ctx, familyID, id)
}

// Delete also removes the item's inventory and shopping list entries.
func (s *ItemService) Delete(ctx context.Context, actorID, id string) error {
	familyID, err := familyForTarget(ctx, s.Store, actorID, "item")
	if err != nil {
		return err
	}
	if err := s.Store.Items().DeleteItem(ctx, familyID, id); err != nil {
		return mapStoreErr(err, "item")
	}

	slogx.FromContext(ctx).Info("item deleted", slog.String("item_id", id))
	return nil
}

func (s *ItemService) checkRefs(ctx context.Context, it domain.Item) error {
	if err := checkAisleRef(ctx, s.Store, it.FamilyID, it.AisleID); err != nil {
		return err
	}
	return checkStoreRef(ctx, s.Store, it.FamilyID, it.StoreID)
}

func setTrimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
