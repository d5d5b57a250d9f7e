package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
	"github.com/aussiebroadwan/pantry/internal/pantry/store"
	"github.com/aussiebroadwan/pantry/pkg/slogx"
)

// resolveMembership is the single source of the family filter used by every
// tenant scoped operation.
func resolveMembership(ctx context.Context, st store.Store, actorID string) (domain.Membership, error) {
	if actorID == "" {
		return domain.Membership{}, domain.ErrNoMembership
	}

	m, err := st.Members().GetMemberByUserID(ctx, actorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Membership{}, domain.ErrNoMembership
		}
		return domain.Membership{}, err
	}
	return domain.Membership{UserID: m.UserID, FamilyID: m.FamilyID, Role: m.Role}, nil
}

// familyForList resolves the family for listings. ok is false when the
// actor has no family, in which case the caller returns an empty list.
func familyForList(ctx context.Context, st store.Store, actorID string) (familyID string, ok bool, err error) {
	m, err := resolveMembership(ctx, st, actorID)
	if errors.Is(err, domain.ErrNoMembership) {
		slogx.FromContext(ctx).Debug("list without family", slog.String("actor_id", actorID))
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return m.FamilyID, true, nil
}

// familyForTarget resolves the family for id addressed operations. Without a
// family nothing is addressable, so the target reads as missing.
func familyForTarget(ctx context.Context, st store.Store, actorID, what string) (string, error) {
	m, err := resolveMembership(ctx, st, actorID)
	if errors.Is(err, domain.ErrNoMembership) {
		return "", notFound(what)
	}
	if err != nil {
		return "", err
	}
	return m.FamilyID, nil
}

// familyForCreate resolves the family new rows are stamped with.
func familyForCreate(ctx context.Context, st store.Store, actorID string) (string, error) {
	m, err := resolveMembership(ctx, st, actorID)
	if err != nil {
		return "", err
	}
	return m.FamilyID, nil
}

func notFound(what string) error {
	return fmt.Errorf("%w: %s not found", domain.ErrNotFound, what)
}

func validation(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrValidation}, args...)...)
}

func conflictName(kind, name string) error {
	return fmt.Errorf("%w: %s %q already exists", domain.ErrConflict, kind, name)
}

// mapStoreErr converts store sentinels for a single named target.
func mapStoreErr(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return notFound(what)
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: %s already exists", domain.ErrConflict, what)
	case errors.Is(err, store.ErrReferenced):
		return fmt.Errorf("%w: %s is referenced by other records", domain.ErrInUse, what)
	default:
		return err
	}
}

// requireName normalises a resource name and rejects blanks.
func requireName(kind, raw string) (string, error) {
	name := domain.NormalizeName(raw)
	if name == "" {
		return "", validation("%s name is required", kind)
	}
	return name, nil
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " and ")
}
