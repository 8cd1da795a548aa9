package check

import (
	"github.com/google/uuid"

	"github.com/MGmadhavan/medication-reminder-app/internal/models"
)

// Dose is one line item of a caretaker notification.
type Dose struct {
	Name   string
	Dosage string
	Time   string
}

// Batch is the set of matched medications for a single user, merged into one
// notification for their caretaker. Built fresh on every run; never persisted.
type Batch struct {
	UserID         uuid.UUID
	UserEmail      string
	UserFullName   string
	CaretakerEmail string
	Medications    []Dose
}

// UserDisplayName returns the user's full name when set, falling back to
// their email address.
func (b Batch) UserDisplayName() string {
	if b.UserFullName != "" {
		return b.UserFullName
	}
	return b.UserEmail
}

// GroupByUser merges a flat sequence of matched records into one batch per
// user, so a caretaker receives a single combined email instead of one per
// medication. Batch order follows first appearance of each user and
// medications keep their input order within a batch. Users without a
// caretaker email still form a batch; the dispatcher skips them.
func GroupByUser(records []models.MedicationSchedule) []Batch {
	index := make(map[uuid.UUID]int, len(records))
	var batches []Batch

	for _, rec := range records {
		i, ok := index[rec.UserID]
		if !ok {
			i = len(batches)
			index[rec.UserID] = i
			batches = append(batches, Batch{
				UserID:         rec.UserID,
				UserEmail:      rec.UserEmail,
				UserFullName:   rec.UserFullName,
				CaretakerEmail: rec.CaretakerEmail,
			})
		}
		batches[i].Medications = append(batches[i].Medications, Dose{
			Name:   rec.MedicationName,
			Dosage: rec.Dosage,
			Time:   rec.ScheduledTime,
		})
	}

	return batches
}
