package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
	"github.com/aussiebroadwan/pantry/internal/pantry/store"
	"github.com/aussiebroadwan/pantry/pkg/cryptox"
	"github.com/aussiebroadwan/pantry/pkg/idx"
	"github.com/aussiebroadwan/pantry/pkg/jwtx"
	"github.com/aussiebroadwan/pantry/pkg/slogx"
)

// IssuedInvitation carries the raw token. It is shown once to the issuing
// admin and only its fingerprint is stored.
type IssuedInvitation struct {
	Invitation domain.Invitation
	Token      string
}

type InviteService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	Metrics  *Metrics
}

// Issue mints an invitation for email into familyID. An empty familyID
// means the actor's own family.
func (s *InviteService) Issue(ctx context.Context, actorID, email, familyID string) (IssuedInvitation, error) {
	log := slogx.FromContext(ctx).With(slog.String("actor_id", actorID))

	// 1. Only an admin of the target family may invite.
	actor, err := resolveMembership(ctx, s.Store, actorID)
	if err != nil {
		return IssuedInvitation{}, err
	}
	if familyID == "" {
		familyID = actor.FamilyID
	}
	if err := domain.AuthorizeFamilyAdmin(actor, familyID); err != nil {
		log.Warn("invitation denied",
			slog.String("family_id", familyID),
			slog.String("actor_role", string(actor.Role)),
		)
		return IssuedInvitation{}, err
	}

	// 2. Validate the invitee.
	email = domain.NormalizeEmail(email)
	if email == "" {
		return IssuedInvitation{}, validation("email is required")
	}
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return IssuedInvitation{}, fmt.Errorf("%w: %s is already registered", domain.ErrConflict, email)
	} else if !errors.Is(err, store.ErrNotFound) {
		return IssuedInvitation{}, err
	}

	// 3. Sign the token; the row keeps only its fingerprint.
	now := time.Now().UTC()
	claims := jwtx.NewInviteClaims(email, domain.InvitationTTL, s.Issuer, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign invitation", slog.Any("error", err))
		return IssuedInvitation{}, err
	}

	inv := domain.Invitation{
		ID:        idx.New().String(),
		Email:     email,
		TokenHash: cryptox.FingerprintToken(token),
		FamilyID:  familyID,
		InvitedBy: actor.UserID,
		Status:    domain.InvitationPending,
		ExpiresAt: claims.ExpiresAt.Time,
		CreatedAt: now,
	}
	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		log.Error("failed to store invitation", slog.Any("error", err))
		return IssuedInvitation{}, err
	}

	s.Metrics.invitationIssued()
	log.Info("invitation issued",
		slog.String("invitation_id", inv.ID),
		slog.String("family_id", familyID),
		slog.Time("expires_at", inv.ExpiresAt),
	)
	return IssuedInvitation{Invitation: inv, Token: token}, nil
}

// Preview describes a pending invitation without consuming it. Every
// failure is reported as domain.ErrInvalidInvitation.
func (s *InviteService) Preview(ctx context.Context, token string) (domain.InvitationPreview, error) {
	log := slogx.FromContext(ctx)

	token = strings.TrimSpace(token)
	if token == "" {
		return domain.InvitationPreview{}, domain.ErrInvalidInvitation
	}

	claims, err := s.Verifier.Verify(token, jwtx.PurposeInvite)
	if err != nil {
		log.Debug("invitation preview rejected", slog.Any("error", err))
		return domain.InvitationPreview{}, domain.ErrInvalidInvitation
	}

	inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.InvitationPreview{}, domain.ErrInvalidInvitation
		}
		return domain.InvitationPreview{}, err
	}
	if !inv.Usable(time.Now()) || inv.Email != claims.Subject {
		return domain.InvitationPreview{}, domain.ErrInvalidInvitation
	}

	fam, err := s.Store.Families().GetFamilyByID(ctx, inv.FamilyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.InvitationPreview{}, domain.ErrInvalidInvitation
		}
		return domain.InvitationPreview{}, err
	}

	return domain.InvitationPreview{
		Email:      inv.Email,
		FamilyID:   fam.ID,
		FamilyName: fam.Name,
		ExpiresAt:  inv.ExpiresAt,
	}, nil
}

// ListPending returns the unexpired pending invitations of the actor's
// family. Admin only.
func (s *InviteService) ListPending(ctx context.Context, actorID string) ([]domain.Invitation, error) {
	actor, err := resolveMembership(ctx, s.Store, actorID)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeFamilyAdmin(actor, actor.FamilyID); err != nil {
		return nil, err
	}
	return s.Store.Invitations().ListPendingInvitations(ctx, actor.FamilyID, time.Now())
}
