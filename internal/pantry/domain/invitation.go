package domain

import "time"

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
)

// InvitationTTL bounds both the token and the stored row.
const InvitationTTL = 24 * time.Hour

type Invitation struct {
	ID         string
	Email      string
	TokenHash  string
	FamilyID   string
	InvitedBy  string
	Status     InvitationStatus
	ExpiresAt  time.Time
	AcceptedBy string // empty until accepted
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Usable reports whether the invitation can still be accepted at now.
func (i Invitation) Usable(now time.Time) bool {
	return i.Status == InvitationPending && now.Before(i.ExpiresAt)
}

// InvitationPreview is the read-only view shown before signup.
type InvitationPreview struct {
	Email      string
	FamilyID   string
	FamilyName string
	ExpiresAt  time.Time
}
