package domain

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// ParseRole accepts exactly "admin" or "member".
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: role must be %q or %q", ErrValidation, RoleAdmin, RoleMember)
	}
	return r, nil
}

type Family struct {
	ID        string
	Name      string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Member is a row of family_members. A user has at most one.
type Member struct {
	ID        string
	FamilyID  string
	UserID    string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Membership is the resolved tenancy context of an actor.
type Membership struct {
	UserID   string
	FamilyID string
	Role     Role
}

func (m Membership) IsAdmin() bool { return m.Role == RoleAdmin }

// MemberView is a member joined with the user's email, for display.
type MemberView struct {
	UserID   string
	Email    string
	Role     Role
	JoinedAt time.Time
}

// FamilyOverview is what a member sees of their own family.
type FamilyOverview struct {
	Family  Family
	Role    Role
	Members []MemberView
}
