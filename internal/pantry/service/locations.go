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

type LocationService struct {
	Store store.Store
}

func (s *LocationService) List(ctx context.Context, actorID string) ([]domain.Location, error) {
	familyID, ok, err := familyForList(ctx, s.Store, actorID)
	if err != nil || !ok {
		return []domain.Location{}, err
	}
	return s.Store.Locations().ListLocations(ctx, familyID)
}

func (s *LocationService) Get(ctx context.Context, actorID, id string) (domain.Location, error) {
	familyID, err := familyForTarget(ctx, s.Store, actorID, "location")
	if err != nil {
		return domain.Location{}, err
	}
	l, err := s.Store.Locations().GetLocation(ctx, familyID, id)
	return l, mapStoreErr(err, "location")
}

func (s *LocationService) Create(ctx context.Context, actorID, rawName string) (domain.Location, error) {
	name, err := requireName("location", rawName)
	if err != nil {
		return domain.Location{}, err
	}
	familyID, err := familyForCreate(ctx, s.Store, actorID)
	if err != nil {
		return domain.Location{}, err
	}

	l := domain.Location{ID: idx.New().String(), FamilyID: familyID, Name: name}
	if err := s.Store.Locations().CreateLocation(ctx, l); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Location{}, conflictName("location", name)
		}
		return domain.Location{}, err
	}

	slogx.FromContext(ctx).Info("location created",
		slog.String("location_id", l.ID),
		slog.String("family_id", familyID),
	)
	return s.Store.Locations().GetLocation(ctx, familyID, l.ID)
}

func (s *LocationService) Rename(ctx context.Context, actorID, id, rawName string) (domain.Location, error) {
	name, err := requireName("location", rawName)
	if err != nil {
		return domain.Location{}, err
	}
	familyID, err := familyForTarget(ctx, s.Store, actorID, "location")
	if err != nil {
		return domain.Location{}, err
	}

	if err := s.Store.Locations().RenameLocation(ctx, familyID, id, name); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Location{}, conflictName("location", name)
		}
		return domain.Location{}, mapStoreErr(err, "location")
	}
	return s.Store.Locations().GetLocation(ctx, familyID, id)
}

// Delete refuses while inventory is stored at the location.
func (s *LocationService) Delete(ctx context.Context, actorID, id string) error {
	familyID, err := familyForTarget(ctx, s.Store, actorID, "location")
	if err != nil {
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		loc, err := tx.Locations().GetLocation(ctx, familyID, id)
		if err != nil {
			return err
		}

		n, err := tx.Locations().CountLocationInventory(ctx, familyID, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: location %q still holds %s", domain.ErrInUse, loc.Name, pluralize(n, "inventory entry", "inventory entries"))
		}

		if err := tx.Locations().DeleteLocation(ctx, familyID, id); err != nil {
			if errors.Is(err, store.ErrReferenced) {
				return fmt.Errorf("%w: location %q still holds inventory", domain.ErrInUse, loc.Name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return mapStoreErr(err, "location")
	}

	slogx.FromContext(ctx).Info("location deleted", slog.String("location_id", id))
	return nil
}
