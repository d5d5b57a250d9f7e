package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
)

type itemsRepo struct {
	db dbtx
}

const itemColumns = `id, family_id, name, category, default_unit, notes, aisle_id, store_id, created_at, updated_at`

func scanItem(s scanner) (domain.Item, error) {
	var (
		it               domain.Item
		aisleID, storeID sql.NullString
	)
	err := s.Scan(&it.ID, &it.FamilyID, &it.Name, &it.Category, &it.DefaultUnit, &it.Notes,
		&aisleID, &storeID, &it.CreatedAt, &it.UpdatedAt)
	it.AisleID = fromNullString(aisleID)
	it.StoreID = fromNullString(storeID)
	return it, err
}

func (r *itemsRepo) ListItems(ctx context.Context, familyID string) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE family_id = ? ORDER BY name`, familyID)
	if err != nil {
		return nil, mapErr(err)
	}
	return collect(rows, scanItem)
}

func (r *itemsRepo) GetItem(ctx context.Context, familyID, id string) (domain.Item, error) {
	it, err := scanItem(r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ? AND family_id = ?`, id, familyID))
	return it, mapErr(err)
}

func (r *itemsRepo) CreateItem(ctx context.Context, it domain.Item) error {
	at := now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO items (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.FamilyID, it.Name, it.Category, it.DefaultUnit, it.Notes,
		nullString(it.AisleID), nullString(it.StoreID), at, at)
	return mapErr(err)
}

func (r *itemsRepo) UpdateItem(ctx context.Context, it domain.Item) error {
	return expectOne(r.db.ExecContext(ctx, `
		UPDATE items
		SET name = ?, category = ?, default_unit = ?, notes = ?, aisle_id = ?, store_id = ?, updated_at = ?
		WHERE id = ? AND family_id = ?`,
		it.Name, it.Category, it.DefaultUnit, it.Notes,
		nullString(it.AisleID), nullString(it.StoreID), now(), it.ID, it.FamilyID))
}

func (r *itemsRepo) DeleteItem(ctx context.Context, familyID, id string) error {
	return expectOne(r.db.ExecContext(ctx,
		`DELETE FROM items WHERE id = ? AND family_id = ?`, id, familyID))
}
