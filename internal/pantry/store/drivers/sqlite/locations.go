package sqlite

import (
	"context"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
)

type locationsRepo struct {
	db dbtx
}

func (r *locationsRepo) ListLocations(ctx context.Context, familyID string) ([]domain.Location, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT l.id, l.family_id, l.name, l.created_at, l.updated_at, COUNT(i.id)
		FROM locations l
		LEFT JOIN inventory i ON i.location_id = l.id AND i.family_id = l.family_id
		WHERE l.family_id = ?
		GROUP BY l.id
		ORDER BY l.name`, familyID)
	if err != nil {
		return nil, mapErr(err)
	}
	return collect(rows, func(s scanner) (domain.Location, error) {
		var l domain.Location
		err := s.Scan(&l.ID, &l.FamilyID, &l.Name, &l.CreatedAt, &l.UpdatedAt, &l.ItemCount)
		return l, err
	})
}

func (r *locationsRepo) GetLocation(ctx context.Context, familyID, id string) (domain.Location, error) {
	var l domain.Location
	err := r.db.QueryRowContext(ctx,
		`SELECT id, family_id, name, created_at, updated_at FROM locations WHERE id = ? AND family_id = ?`,
		id, familyID,
	).Scan(&l.ID, &l.FamilyID, &l.Name, &l.CreatedAt, &l.UpdatedAt)
	return l, mapErr(err)
}

func (r *locationsRepo) CreateLocation(ctx context.Context, l domain.Location) error {
	at := now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO locations (id, family_id, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		l.ID, l.FamilyID, l.Name, at, at)
	return mapErr(err)
}

func (r *locationsRepo) RenameLocation(ctx context.Context, familyID, id, name string) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE locations SET name = ?, updated_at = ? WHERE id = ? AND family_id = ?`,
		name, now(), id, familyID))
}

func (r *locationsRepo) DeleteLocation(ctx context.Context, familyID, id string) error {
	return expectOne(r.db.ExecContext(ctx,
		`DELETE FROM locations WHERE id = ? AND family_id = ?`, id, familyID))
}

func (r *locationsRepo) CountLocationInventory(ctx context.Context, familyID, id string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM inventory WHERE location_id = ? AND family_id = ?`, id, familyID,
	).Scan(&n)
	return n, mapErr(err)
}
