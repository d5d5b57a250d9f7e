package domain

import (
	"errors"
	"fmt"
)

// Error kinds shared by every service. Callers wrap them with context via
// fmt.Errorf("%w: ...") and the transport maps them with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
	ErrInUse              = errors.New("resource in use")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrLastAdmin          = errors.New("family must retain at least one admin")
	ErrInvalidInvitation  = errors.New("invalid or expired invitation")
	ErrNoMembership       = errors.New("user does not belong to a family")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrInvitationEmailMismatch = fmt.Errorf("%w: invitation was issued for a different email", ErrValidation)
)
