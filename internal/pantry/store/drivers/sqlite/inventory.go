package sqlite

import (
	"context"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
)

type inventoryRepo struct {
	db dbtx
}

const inventorySelect = `
	SELECT v.id, v.family_id, v.location_id, v.item_id, v.quantity, it.name, l.name, v.created_at, v.updated_at
	FROM inventory v
	JOIN items it    ON it.id = v.item_id
	JOIN locations l ON l.id = v.location_id`

func scanInventory(s scanner) (domain.InventoryEntry, error) {
	var e domain.InventoryEntry
	err := s.Scan(&e.ID, &e.FamilyID, &e.LocationID, &e.ItemID, &e.Quantity,
		&e.ItemName, &e.LocationName, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *inventoryRepo) ListInventory(ctx context.Context, familyID, locationID string) ([]domain.InventoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, inventorySelect+`
		WHERE v.family_id = ?1 AND (?2 = '' OR v.location_id = ?2)
		ORDER BY v.created_at, v.id`, familyID, locationID)
	if err != nil {
		return nil, mapErr(err)
	}
	return collect(rows, scanInventory)
}

func (r *inventoryRepo) GetInventory(ctx context.Context, familyID, id string) (domain.InventoryEntry, error) {
	e, err := scanInventory(r.db.QueryRowContext(ctx,
		inventorySelect+` WHERE v.id = ? AND v.family_id = ?`, id, familyID))
	return e, mapErr(err)
}

func (r *inventoryRepo) GetInventoryByLocationItem(ctx context.Context, familyID, locationID, itemID string) (domain.InventoryEntry, error) {
	e, err := scanInventory(r.db.QueryRowContext(ctx,
		inventorySelect+` WHERE v.family_id = ? AND v.location_id = ? AND v.item_id = ?`,
		familyID, locationID, itemID))
	return e, mapErr(err)
}

func (r *inventoryRepo) CreateInventory(ctx context.Context, e domain.InventoryEntry) error {
	at := now()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory (id, family_id, location_id, item_id, quantity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.FamilyID, e.LocationID, e.ItemID, e.Quantity, at, at)
	return mapErr(err)
}

func (r *inventoryRepo) UpdateInventoryQuantity(ctx context.Context, familyID, id string, quantity float64) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE inventory SET quantity = ?, updated_at = ? WHERE id = ? AND family_id = ?`,
		quantity, now(), id, familyID))
}

func (r *inventoryRepo) DeleteInventory(ctx context.Context, familyID, id string) error {
	return expectOne(r.db.ExecContext(ctx,
		`DELETE FROM inventory WHERE id = ? AND family_id = ?`, id, familyID))
}
