package sqlite

import (
	"context"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
)

type storesRepo struct {
	db dbtx
}

const storeColumns = `id, family_id, name, created_at, updated_at`

func scanStore(s scanner) (domain.Store, error) {
	var st domain.Store
	err := s.Scan(&st.ID, &st.FamilyID, &st.Name, &st.CreatedAt, &st.UpdatedAt)
	return st, err
}

func (r *storesRepo) ListStores(ctx context.Context, familyID string) ([]domain.Store, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+storeColumns+` FROM stores WHERE family_id = ? ORDER BY name`, familyID)
	if err != nil {
		return nil, mapErr(err)
	}
	return collect(rows, scanStore)
}

func (r *storesRepo) GetStore(ctx context.Context, familyID, id string) (domain.Store, error) {
	st, err := scanStore(r.db.QueryRowContext(ctx,
		`SELECT `+storeColumns+` FROM stores WHERE id = ? AND family_id = ?`, id, familyID))
	return st, mapErr(err)
}

func (r *storesRepo) CreateStore(ctx context.Context, st domain.Store) error {
	at := now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO stores (`+storeColumns+`) VALUES (?, ?, ?, ?, ?)`,
		st.ID, st.FamilyID, st.Name, at, at)
	return mapErr(err)
}

func (r *storesRepo) RenameStore(ctx context.Context, familyID, id, name string) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE stores SET name = ?, updated_at = ? WHERE id = ? AND family_id = ?`,
		name, now(), id, familyID))
}

func (r *storesRepo) DeleteStore(ctx context.Context, familyID, id string) error {
	return expectOne(r.db.ExecContext(ctx,
		`DELETE FROM stores WHERE id = ? AND family_id = ?`, id, familyID))
}

func (r *storesRepo) CountStoreReferences(ctx context.Context, familyID, id string) (items, aisles int, err error) {
	err = r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM items  WHERE store_id = ?1 AND family_id = ?2),
			(SELECT COUNT(*) FROM aisles WHERE store_id = ?1 AND family_id = ?2)`,
		id, familyID,
	).Scan(&items, &aisles)
	return items, aisles, mapErr(err)
}
