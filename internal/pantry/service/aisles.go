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

type AisleInput struct {
	Name    string
	StoreID string
}

// AislePatch leaves nil fields unchanged. An empty StoreID detaches the
// aisle from its store.
type AislePatch struct {
	Name    *string
	StoreID *string
}

type AisleService struct {
	Store store.Store
}

func (s *AisleService) List(ctx context.Context, actorID string) ([]domain.Aisle, error) {
	familyID, ok, err := familyForList(ctx, s.Store, actorID)
	if err != nil || !ok {
		return []domain.Aisle{}, err
	}
	return s.Store.Aisles().ListAisles(ctx, familyID)
}

func (s *AisleService) Get(ctx context.Context, actorID, id string) (domain.Aisle, error) {
	familyID, err := familyForTarget(ctx, s.Store, actorID, "aisle")
	if err != nil {
		return domain.Aisle{}, err
	}
	a, err := s.Store.Aisles().GetAisle(ctx, familyID, id)
	return a, mapStoreErr(err, "aisle")
}

func (s *AisleService) Create(ctx context.Context, actorID string, in AisleInput) (domain.Aisle, error) {
	name, err := requireName("aisle", in.Name)
	if err != nil {
		return domain.Aisle{}, err
	}
	familyID, err := familyForCreate(ctx, s.Store, actorID)
	if err != nil {
		return domain.Aisle{}, err
	}

	a := domain.Aisle{
		ID:       idx.New().String(),
		FamilyID: familyID,
		Name:     name,
		StoreID:  strings.TrimSpace(in.StoreID),
	}
	if err := checkStoreRef(ctx, s.Store, familyID, a.StoreID); err != nil {
		return domain.Aisle{}, err
	}

	if err := s.Store.Aisles().CreateAisle(ctx, a); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Aisle{}, conflictName("aisle", name)
		}
		return domain.Aisle{}, mapStoreErr(err, "aisle")
	}

	slogx.FromContext(ctx).Info("aisle created", slog.String("aisle_id", a.ID))
	return s.Store.Aisles().GetAisle(ctx, familyID, a.ID)
}

func (s *AisleService) Update(ctx context.Context, actorID, id string, p AislePatch) (domain.Aisle, error) {
	familyID, err := familyForTarget(ctx, s.Store, actorID, "aisle")
	if err != nil {
		return domain.Aisle{}, err
	}

	a, err := s.Store.Aisles().GetAisle(ctx, familyID, id)
	if err != nil {
		return domain.Aisle{}, mapStoreErr(err, "aisle")
	}

	if p.Name != nil {
		if a.Name, err = requireName("aisle", *p.Name); err != nil {
			return domain.Aisle{}, err
		}
	}
	if p.StoreID != nil {
		a.StoreID = strings.TrimSpace(*p.StoreID)
		if err := checkStoreRef(ctx, s.Store, familyID, a.StoreID); err != nil {
			return domain.Aisle{}, err
		}
	}

	if err := s.Store.Aisles().UpdateAisle(ctx, a); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Aisle{}, conflictName("aisle", a.Name)
		}
		return domain.Aisle{}, mapStoreErr(err, "aisle")
	}
	return s.Store.Aisles().GetAisle(ctx, familyID, id)
}

// Delete detaches the aisle from any items that used it.
func (s *AisleService) Delete(ctx context.Context, actorID, id string) error {
	familyID, err := familyForTarget(ctx, s.Store, actorID, "aisle")
	if err != nil {
		return err
	}
	if err := s.Store.Aisles().DeleteAisle(ctx, familyID, id); err != nil {
		return mapStoreErr(err, "aisle")
	}

	slogx.FromContext(ctx).Info("aisle deleted", slog.String("aisle_id", id))
	return nil
}

// checkStoreRef requires an optional store reference to be in the family.
func checkStoreRef(ctx context.Context, st store.Store, familyID, storeID string) error {
	if storeID == "" {
		return nil
	}
	_, err := st.Stores().GetStore(ctx, familyID, storeID)
	return mapStoreErr(err, "store")
}

func checkAisleRef(ctx context.Context, st store.Store, familyID, aisleID string) error {
	if aisleID == "" {
		return nil
	}
	_, err := st.Aisles().GetAisle(ctx, familyID, aisleID)
	return mapStoreErr(err, "aisle")
}
