package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
)

type aislesRepo struct {
	db dbtx
}

const aisleColumns = `id, family_id, name, store_id, created_at, updated_at`

func scanAisle(s scanner) (domain.Aisle, error) {
	var (
		a       domain.Aisle
		storeID sql.NullString
	)
	err := s.Scan(&a.ID, &a.FamilyID, &a.Name, &storeID, &a.CreatedAt, &a.UpdatedAt)
	a.StoreID = fromNullString(storeID)
	return a, err
}

func (r *aislesRepo) ListAisles(ctx context.Context, familyID string) ([]domain.Aisle, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+aisleColumns+` FROM aisles WHERE family_id = ? ORDER BY name`, familyID)
	if err != nil {
		return nil, mapErr(err)
	}
	return collect(rows, scanAisle)
}

func (r *aislesRepo) GetAisle(ctx context.Context, familyID, id string) (domain.Aisle, error) {
	a, err := scanAisle(r.db.QueryRowContext(ctx,
		`SELECT `+aisleColumns+` FROM aisles WHERE id = ? AND family_id = ?`, id, familyID))
	return a, mapErr(err)
}

func (r *aislesRepo) CreateAisle(ctx context.Context, a domain.Aisle) error {
	at := now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO aisles (`+aisleColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.FamilyID, a.Name, nullString(a.StoreID), at, at)
	return mapErr(err)
}

func (r *aislesRepo) UpdateAisle(ctx context.Context, a domain.Aisle) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE aisles SET name = ?, store_id = ?, updated_at = ? WHERE id = ? AND family_id = ?`,
		a.Name, nullString(a.StoreID), now(), a.ID, a.FamilyID))
}

func (r *aislesRepo) DeleteAisle(ctx context.Context, familyID, id string) error {
	return expectOne(r.db.ExecContext(ctx,
		`DELETE FROM aisles WHERE id = ? AND family_id = ?`, id, familyID))
}
