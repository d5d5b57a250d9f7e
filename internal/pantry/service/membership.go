package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
	"github.com/aussiebroadwan/pantry/internal/pantry/store"
	"github.com/aussiebroadwan/pantry/pkg/slogx"
)

type MembershipService struct {
	Store   store.Store
	Metrics *Metrics
}

// Resolve returns the actor's family and role, or domain.ErrNoMembership.
func (s *MembershipService) Resolve(ctx context.Context, actorID string) (domain.Membership, error) {
	return resolveMembership(ctx, s.Store, actorID)
}

// ChangeRole sets the role of targetUserID within familyID. Only admins of
// that family may do it and the family always keeps at least one admin.
func (s *MembershipService) ChangeRole(
	ctx context.Context,
	actorID string,
	targetUserID string,
	familyID string,
	rawRole string,
) error {
	log := slogx.FromContext(ctx).With(
		slog.String("actor_id", actorID),
		slog.String("target_user_id", targetUserID),
		slog.String("family_id", familyID),
	)

	// 1. Validate the requested role.
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return err
	}

	// 2. Actor must administer the family named in the request.
	actor, err := resolveMembership(ctx, s.Store, actorID)
	if err != nil {
		return err
	}
	if err := domain.AuthorizeFamilyAdmin(actor, familyID); err != nil {
		log.Warn("role change denied", slog.String("actor_role", string(actor.Role)))
		s.Metrics.roleChange("forbidden")
		return err
	}

	// 3. Count and update atomically so two concurrent demotions cannot
	// both see two admins.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		target, err := tx.Members().GetMember(ctx, familyID, targetUserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: user is not a member of this family", domain.ErrNotFound)
			}
			return err
		}

		if target.Role == role {
			return nil
		}

		admins, err := tx.Members().CountAdmins(ctx, familyID)
		if err != nil {
			return err
		}
		if err := domain.CheckRoleChange(target.Role, role, admins); err != nil {
			return err
		}

		return tx.Members().UpdateMemberRole(ctx, familyID, targetUserID, role)
	})
	if err != nil {
		if errors.Is(err, domain.ErrLastAdmin) {
			log.Warn("role change would remove last admin")
			s.Metrics.roleChange("last_admin")
		}
		return err
	}

	s.Metrics.roleChange("ok")
	log.Info("member role changed", slog.String("role", string(role)))
	return nil
}

// Overview returns the actor's family with every member and their role.
func (s *MembershipService) Overview(ctx context.Context, actorID string) (domain.FamilyOverview, error) {
	m, err := resolveMembership(ctx, s.Store, actorID)
	if err != nil {
		return domain.FamilyOverview{}, err
	}

	fam, err := s.Store.Families().GetFamilyByID(ctx, m.FamilyID)
	if err != nil {
		return domain.FamilyOverview{}, mapStoreErr(err, "family")
	}

	members, err := s.Store.Members().ListFamilyMembers(ctx, m.FamilyID)
	if err != nil {
		return domain.FamilyOverview{}, err
	}

	return domain.FamilyOverview{Family: fam, Role: m.Role, Members: members}, nil
}
