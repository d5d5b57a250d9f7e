package sqlite

import (
	"context"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
)

type shoppingListRepo struct {
	db dbtx
}

const shoppingListSelect = `
	SELECT s.id, s.family_id, s.item_id, it.name, s.quantity, s.checked, s.created_at, s.updated_at
	FROM shopping_list_items s
	JOIN items it ON it.id = s.item_id`

func scanShoppingListEntry(s scanner) (domain.ShoppingListEntry, error) {
	var e domain.ShoppingListEntry
	err := s.Scan(&e.ID, &e.FamilyID, &e.ItemID, &e.ItemName, &e.Quantity, &e.Checked, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *shoppingListRepo) ListShoppingList(ctx context.Context, familyID string) ([]domain.ShoppingListEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		shoppingListSelect+` WHERE s.family_id = ? ORDER BY s.created_at, s.id`, familyID)
	if err != nil {
		return nil, mapErr(err)
	}
	return collect(rows, scanShoppingListEntry)
}

func (r *shoppingListRepo) GetShoppingListEntry(ctx context.Context, familyID, id string) (domain.ShoppingListEntry, error) {
	e, err := scanShoppingListEntry(r.db.QueryRowContext(ctx,
		shoppingListSelect+` WHERE s.id = ? AND s.family_id = ?`, id, familyID))
	return e, mapErr(err)
}

func (r *shoppingListRepo) GetShoppingListEntryByItem(ctx context.Context, familyID, itemID string) (domain.ShoppingListEntry, error) {
	e, err := scanShoppingListEntry(r.db.QueryRowContext(ctx,
		shoppingListSelect+` WHERE s.family_id = ? AND s.item_id = ?`, familyID, itemID))
	return e, mapErr(err)
}

func (r *shoppingListRepo) CreateShoppingListEntry(ctx context.Context, e domain.ShoppingListEntry) error {
	at := now()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO shopping_list_items (id, family_id, item_id, quantity, checked, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.FamilyID, e.ItemID, e.Quantity, e.Checked, at, at)
	return mapErr(err)
}

func (r *shoppingListRepo) SetShoppingListChecked(ctx context.Context, familyID, id string, checked bool) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE shopping_list_items SET checked = ?, updated_at = ? WHERE id = ? AND family_id = ?`,
		checked, now(), id, familyID))
}

func (r *shoppingListRepo) DeleteShoppingListEntry(ctx context.Context, familyID, id string) error {
	return expectOne(r.db.ExecContext(ctx,
		`DELETE FROM shopping_list_items WHERE id = ? AND family_id = ?`, id, familyID))
}

func (r *shoppingListRepo) CountUnchecked(ctx context.Context, familyID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM shopping_list_items WHERE family_id = ? AND checked = 0`, familyID,
	).Scan(&n)
	return n, mapErr(err)
}

func (r *shoppingListRepo) DeleteCheckedShoppingList(ctx context.Context, familyID string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM shopping_list_items WHERE family_id = ? AND checked = 1`, familyID)
	if err != nil {
		return 0, mapErr(err)
	}
	return res.RowsAffected()
}
