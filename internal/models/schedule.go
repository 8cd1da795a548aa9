package models

import "github.com/google/uuid"

// MedicationSchedule is the flat, pre-joined projection the candidate query
// returns for one medication on the target date: the medication, its owning
// user and the caretaker to notify. It only exists for the duration of one
// check run.
type MedicationSchedule struct {
	MedicationID   uuid.UUID `json:"medication_id"`
	MedicationName string    `json:"medication_name"`
	Dosage         string    `json:"medication_dosage"`
	ScheduledTime  string    `json:"medication_time"` // "HH:MM", 24-hour wall clock
	UserID         uuid.UUID `json:"user_id"`
	UserEmail      string    `json:"user_email"`
	UserFullName   string    `json:"user_full_name"`
	CaretakerEmail string    `json:"caretaker_email"` // empty means no one to notify
}

// UserDisplayName returns the user's full name when set, falling back to
// their email address.
func (s MedicationSchedule) UserDisplayName() string {
	if s.UserFullName != "" {
		return s.UserFullName
	}
	return s.UserEmail
}
