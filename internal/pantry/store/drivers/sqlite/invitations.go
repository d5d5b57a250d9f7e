package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `id, email, token_hash, family_id, invited_by, status, expires_at, accepted_by, created_at, updated_at`

func scanInvitation(s scanner) (domain.Invitation, error) {
	var (
		inv        domain.Invitation
		acceptedBy sql.NullString
	)
	err := s.Scan(&inv.ID, &inv.Email, &inv.TokenHash, &inv.FamilyID, &inv.InvitedBy,
		&inv.Status, &inv.ExpiresAt, &acceptedBy, &inv.CreatedAt, &inv.UpdatedAt)
	inv.AcceptedBy = fromNullString(acceptedBy)
	return inv, err
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	at := now()
	status := inv.Status
	if status == "" {
		status = domain.InvitationPending
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invitations (`+invitationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Email, inv.TokenHash, inv.FamilyID, inv.InvitedBy,
		string(status), ts(inv.ExpiresAt), nullString(inv.AcceptedBy), at, at,
	)
	return mapErr(err)
}

func (r *invitationsRepo) GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error) {
	inv, err := scanInvitation(r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE token_hash = ?`, hash))
	return inv, mapErr(err)
}

func (r *invitationsRepo) MarkInvitationAccepted(ctx context.Context, id, userID string) error {
	return expectOne(r.db.ExecContext(ctx, `
		UPDATE invitations
		SET status = ?, accepted_by = ?, updated_at = ?
		WHERE id = ? AND status = ?`,
		string(domain.InvitationAccepted), userID, now(), id, string(domain.InvitationPending)))
}

func (r *invitationsRepo) ListPendingInvitations(ctx context.Context, familyID string, at time.Time) ([]domain.Invitation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+invitationColumns+`
		FROM invitations
		WHERE family_id = ? AND status = ? AND expires_at > ?
		ORDER BY created_at, id`,
		familyID, string(domain.InvitationPending), ts(at))
	if err != nil {
		return nil, mapErr(err)
	}
	return collect(rows, scanInvitation)
}

func (r *invitationsRepo) DeleteExpiredInvitations(ctx context.Context, at time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM invitations WHERE status = ? AND expires_at <= ?`,
		string(domain.InvitationPending), ts(at))
	if err != nil {
		return 0, mapErr(err)
	}
	return res.RowsAffected()
}
