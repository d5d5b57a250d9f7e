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

type SignupRequest struct {
	Email       string
	Password    string
	FamilyName  string
	InviteToken string
}

type SignupResult struct {
	User       domain.User
	Family     domain.Family
	Membership domain.Membership
}

type SignupService struct {
	Store    store.Store
	Hasher   *cryptox.PasswordHasher
	Verifier jwtx.Verifier
	Metrics  *Metrics
}

// Signup registers a user and gives them a family. An invitation token
// joins the inviting family as a member and takes precedence over a family
// name; otherwise a new family is created with the user as admin. All rows
// are written in one transaction.
func (s *SignupService) Signup(ctx context.Context, req SignupRequest) (SignupResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	email := domain.NormalizeEmail(req.Email)
	if email == "" {
		return SignupResult{}, validation("email is required")
	}
	if req.Password == "" {
		return SignupResult{}, validation("password is required")
	}

	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		log.Warn("signup with registered email")
		return SignupResult{}, fmt.Errorf("%w: email already registered", domain.ErrConflict)
	} else if !errors.Is(err, store.ErrNotFound) {
		return SignupResult{}, err
	}

	// 2. Check the invitation signature before touching the database.
	inviteToken := strings.TrimSpace(req.InviteToken)
	if inviteToken != "" {
		if _, err := s.Verifier.Verify(inviteToken, jwtx.PurposeInvite); err != nil {
			log.Warn("signup with invalid invitation token", slog.Any("error", err))
			return SignupResult{}, domain.ErrInvalidInvitation
		}
	}

	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return SignupResult{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		Active:       true,
	}

	var (
		res  SignupResult
		path string
	)

	// 3. User, family and membership commit together or not at all.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return fmt.Errorf("%w: email already registered", domain.ErrConflict)
			}
			return err
		}

		var (
			fam  domain.Family
			role domain.Role
			err  error
		)
		switch {
		case inviteToken != "":
			fam, err = acceptInvitation(ctx, tx, inviteToken, user)
			role, path = domain.RoleMember, "invitation"
		default:
			name := strings.TrimSpace(req.FamilyName)
			path = "named"
			if name == "" {
				name, path = domain.DefaultFamilyName(email), "default"
			}
			fam, err = createFamily(ctx, tx, name, user.ID)
			role = domain.RoleAdmin
		}
		if err != nil {
			return err
		}

		member := domain.Member{
			ID:       idx.New().String(),
			FamilyID: fam.ID,
			UserID:   user.ID,
			Role:     role,
		}
		if err := tx.Members().CreateMember(ctx, member); err != nil {
			return err
		}

		res = SignupResult{
			User:       user,
			Family:     fam,
			Membership: domain.Membership{UserID: user.ID, FamilyID: fam.ID, Role: role},
		}
		return nil
	})
	if err != nil {
		if !isDomainErr(err) {
			log.Error("signup failed", slog.Any("error", err))
		}
		return SignupResult{}, err
	}

	if path == "invitation" {
		s.Metrics.invitationAccepted()
	}
	s.Metrics.signup(path)

	log.Info("user signed up",
		slog.String("user_id", res.User.ID),
		slog.String("family_id", res.Family.ID),
		slog.String("role", string(res.Membership.Role)),
		slog.String("family", path),
	)
	return res, nil
}

// acceptInvitation consumes a pending invitation for user and returns the
// family it grants. Any lookup failure is reported as an invalid invitation
// so callers cannot probe which tokens exist.
func acceptInvitation(ctx context.Context, tx store.Tx, token string, user domain.User) (domain.Family, error) {
	inv, err := tx.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Family{}, domain.ErrInvalidInvitation
		}
		return domain.Family{}, err
	}
	if !inv.Usable(time.Now()) {
		return domain.Family{}, domain.ErrInvalidInvitation
	}
	if inv.Email != user.Email {
		return domain.Family{}, domain.ErrInvitationEmailMismatch
	}

	fam, err := tx.Families().GetFamilyByID(ctx, inv.FamilyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Family{}, domain.ErrInvalidInvitation
		}
		return domain.Family{}, err
	}

	if err := tx.Invitations().MarkInvitationAccepted(ctx, inv.ID, user.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Family{}, domain.ErrInvalidInvitation
		}
		return domain.Family{}, err
	}
	return fam, nil
}

func createFamily(ctx context.Context, tx store.Tx, name, createdBy string) (domain.Family, error) {
	fam := domain.Family{
		ID:        idx.New().String(),
		Name:      name,
		CreatedBy: createdBy,
	}
	if err := tx.Families().CreateFamily(ctx, fam); err != nil {
		return domain.Family{}, err
	}
	return fam, nil
}

// isDomainErr reports whether err is an expected outcome rather than a fault.
func isDomainErr(err error) bool {
	for _, target := range []error{
		domain.ErrValidation,
		domain.ErrConflict,
		domain.ErrInUse,
		domain.ErrForbidden,
		domain.ErrNotFound,
		domain.ErrLastAdmin,
		domain.ErrInvalidInvitation,
		domain.ErrNoMembership,
		domain.ErrInvalidCredentials,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
