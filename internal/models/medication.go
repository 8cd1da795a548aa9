package models

import (
	"time"

	"github.com/google/uuid"
)

// Medication is a scheduled daily dose owned by a user.
// Time is a wall-clock time-of-day string ("HH:MM", 24-hour).
type Medication struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Dosage    string    `json:"dosage" db:"dosage"`
	Time      string    `json:"time" db:"time"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// MedicationLog records that a dose was taken on a given date.
// Date is "YYYY-MM-DD"; one log per (medication, date) marks the dose taken
// and removes it from that day's candidate set.
type MedicationLog struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	MedicationID uuid.UUID `json:"medication_id" db:"medication_id"`
	TakenAt      time.Time `json:"taken_at" db:"taken_at"`
	Date         string    `json:"date" db:"date"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
