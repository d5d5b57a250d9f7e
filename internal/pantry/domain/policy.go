package domain

import "fmt"

// Authorization rules. They are pure so every mutation path can share them
// and tests can exercise them without a store.

// AuthorizeFamilyAdmin allows the action only when the actor is an admin of
// familyID. A familyID other than the actor's own is always forbidden.
func AuthorizeFamilyAdmin(actor Membership, familyID string) error {
	if familyID != actor.FamilyID {
		return fmt.Errorf("%w: not a member of this family", ErrForbidden)
	}
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: only family admins may do this", ErrForbidden)
	}
	return nil
}

// CheckRoleChange enforces the last-admin invariant. Any change that turns
// an admin into a member is rejected while the family has at most one admin,
// whether the target is the actor or someone else.
func CheckRoleChange(current, next Role, adminCount int) error {
	if current == RoleAdmin && next != RoleAdmin && adminCount <= 1 {
		return ErrLastAdmin
	}
	return nil
}

// CheckQuantity rejects negative amounts.
func CheckQuantity(q float64) error {
	if q < 0 {
		return fmt.Errorf("%w: quantity must be non-negative", ErrValidation)
	}
	return nil
}
