package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
)

type familiesRepo struct {
	db dbtx
}

func (r *familiesRepo) CreateFamily(ctx context.Context, f domain.Family) error {
	at := now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO families (id, name, created_by, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		f.ID, f.Name, nullString(f.CreatedBy), at, at,
	)
	return mapErr(err)
}

func (r *familiesRepo) GetFamilyByID(ctx context.Context, id string) (domain.Family, error) {
	var (
		f         domain.Family
		createdBy sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_by, created_at, updated_at FROM families WHERE id = ?`, id,
	).Scan(&f.ID, &f.Name, &createdBy, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return domain.Family{}, mapErr(err)
	}
	f.CreatedBy = fromNullString(createdBy)
	return f, nil
}
