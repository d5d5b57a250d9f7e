package sqlite

import (
	"context"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
)

type membersRepo struct {
	db dbtx
}

const memberColumns = `id, family_id, user_id, role, created_at, updated_at`

func scanMember(s scanner) (domain.Member, error) {
	var m domain.Member
	err := s.Scan(&m.ID, &m.FamilyID, &m.UserID, &m.Role, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *membersRepo) CreateMember(ctx context.Context, m domain.Member) error {
	at := now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO family_members (`+memberColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.FamilyID, m.UserID, string(m.Role), at, at,
	)
	return mapErr(err)
}

func (r *membersRepo) GetMemberByUserID(ctx context.Context, userID string) (domain.Member, error) {
	m, err := scanMember(r.db.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM family_members WHERE user_id = ?`, userID))
	return m, mapErr(err)
}

func (r *membersRepo) GetMember(ctx context.Context, familyID, userID string) (domain.Member, error) {
	m, err := scanMember(r.db.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM family_members WHERE family_id = ? AND user_id = ?`,
		familyID, userID))
	return m, mapErr(err)
}

func (r *membersRepo) ListFamilyMembers(ctx context.Context, familyID string) ([]domain.MemberView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.user_id, u.email, m.role, m.created_at
		FROM family_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.family_id = ?
		ORDER BY m.created_at, m.id`, familyID)
	if err != nil {
		return nil, mapErr(err)
	}
	return collect(rows, func(s scanner) (domain.MemberView, error) {
		var v domain.MemberView
		err := s.Scan(&v.UserID, &v.Email, &v.Role, &v.JoinedAt)
		return v, err
	})
}

func (r *membersRepo) CountAdmins(ctx context.Context, familyID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM family_members WHERE family_id = ? AND role = ?`,
		familyID, string(domain.RoleAdmin),
	).Scan(&n)
	return n, mapErr(err)
}

func (r *membersRepo) UpdateMemberRole(ctx context.Context, familyID, userID string, role domain.Role) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE family_members SET role = ?, updated_at = ? WHERE family_id = ? AND user_id = ?`,
		string(role), now(), familyID, userID))
}
