package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is the tenant root: every other entity hangs off exactly one
// account and is only visible to it.
type Account struct {
	ID          uuid.UUID
	ExternalID  string
	Email       string
	Name        string
	Role        AccountRole
	Preferences []byte // free-form JSON blob, stored as jsonb
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MentorProfile extends an account with mentoring metadata (1:1, role=mentor).
type MentorProfile struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	Specialization  string
	ExperienceYears int
	ReviewStatus    ReviewStatus
	Rating          float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
