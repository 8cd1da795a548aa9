package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a primary user of the reminder app: the person taking
// the medications. The caretaker email is the secondary recipient that
// receives adherence notifications on their behalf.
type Profile struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	FullName       string    `json:"full_name" db:"full_name"`
	CaretakerEmail string    `json:"caretaker_email" db:"caretaker_email"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// DisplayName returns the full name when set, falling back to the email.
func (p Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Email
}
