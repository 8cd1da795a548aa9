package check

import (
	"testing"

	"github.com/google/uuid"

	"github.com/MGmadhavan/medication-reminder-app/internal/models"
)

func TestGroupByUser_MergesSameUser(t *testing.T) {
	userID := uuid.New()
	records := []models.MedicationSchedule{
		{
			MedicationID:   uuid.New(),
			MedicationName: "Aspirin",
			Dosage:         "100mg",
			ScheduledTime:  "08:00",
			UserID:         userID,
			UserEmail:      "anna@example.com",
			UserFullName:   "Anna Smith",
			CaretakerEmail: "caretaker@example.com",
		},
		{
			MedicationID:   uuid.New(),
			MedicationName: "Metformin",
			Dosage:         "500mg",
			ScheduledTime:  "08:00",
			UserID:         userID,
			UserEmail:      "anna@example.com",
			UserFullName:   "Anna Smith",
			CaretakerEmail: "caretaker@example.com",
		},
	}

	batches := GroupByUser(records)

	if len(batches) != 1 {
		t.Fatalf("got %d batches, want 1", len(batches))
	}
	b := batches[0]
	if b.UserID != userID {
		t.Errorf("batch user = %s, want %s", b.UserID, userID)
	}
	if len(b.Medications) != 2 {
		t.Fatalf("got %d medications, want 2", len(b.Medications))
	}
	if b.Medications[0].Name != "Aspirin" || b.Medications[1].Name != "Metformin" {
		t.Errorf("medications out of input order: %+v", b.Medications)
	}
}

func TestGroupByUser_PreservesFirstSeenOrder(t *testing.T) {
	u1, u2 := uuid.New(), uuid.New()
	records := []models.MedicationSchedule{
		{UserID: u1, MedicationName: "A", ScheduledTime: "08:00"},
		{UserID: u2, MedicationName: "B", ScheduledTime: "09:00"},
		{UserID: u1, MedicationName: "C", ScheduledTime: "10:00"},
	}

	batches := GroupByUser(records)

	if len(batches) != 2 {
		t.Fatalf("got %d batches, want 2", len(batches))
	}
	if batches[0].UserID != u1 || batches[1].UserID != u2 {
		t.Errorf("batches not in first-seen order")
	}
	if len(batches[0].Medications) != 2 {
		t.Errorf("first batch has %d medications, want 2", len(batches[0].Medications))
	}
}

func TestGroupByUser_KeepsUsersWithoutCaretaker(t *testing.T) {
	records := []models.MedicationSchedule{
		{UserID: uuid.New(), MedicationName: "A", CaretakerEmail: ""},
	}

	batches := GroupByUser(records)

	if len(batches) != 1 {
		t.Fatalf("got %d batches, want 1", len(batches))
	}
	if batches[0].CaretakerEmail != "" {
		t.Errorf("caretaker email = %q, want empty", batches[0].CaretakerEmail)
	}
}

func TestGroupByUser_Empty(t *testing.T) {
	if batches := GroupByUser(nil); len(batches) != 0 {
		t.Errorf("got %d batches for empty input, want 0", len(batches))
	}
}

func TestBatch_UserDisplayName(t *testing.T) {
	b := Batch{UserEmail: "anna@example.com"}
	if got := b.UserDisplayName(); got != "anna@example.com" {
		t.Errorf("display name = %q, want email fallback", got)
	}
	b.UserFullName = "Anna Smith"
	if got := b.UserDisplayName(); got != "Anna Smith" {
		t.Errorf("display name = %q, want full name", got)
	}
}
