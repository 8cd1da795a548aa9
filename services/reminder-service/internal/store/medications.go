package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MGmadhavan/medication-reminder-app/internal/models"
)

// ListMedications returns a user's medications ordered by scheduled time.
func (s *Store) ListMedications(ctx context.Context, userID uuid.UUID) ([]models.Medication, error) {
	query := `
		SELECT id, user_id, name, dosage, time, created_at, updated_at
		FROM medications
		WHERE user_id = $1
		ORDER BY time, created_at`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	defer rows.Close()

	var meds []models.Medication
	for rows.Next() {
		var m models.Medication
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Time, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan medication row: %w", err)
		}
		meds = append(meds, m)
	}

	return meds, rows.Err()
}

// CreateMedication inserts a medication for a user and returns the stored row.
func (s *Store) CreateMedication(ctx context.Context, userID uuid.UUID, name, dosage, timeStr string) (models.Medication, error) {
	query := `
		INSERT INTO medications (id, user_id, name, dosage, time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, dosage, time, created_at, updated_at`

	var m models.Medication
	err := s.pool.QueryRow(ctx, query, uuid.New(), userID, name, dosage, timeStr).Scan(
		&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Time, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return models.Medication{}, fmt.Errorf("failed to create medication: %w", err)
	}
	return m, nil
}

// DeleteMedication removes a medication and its adherence logs.
func (s *Store) DeleteMedication(ctx context.Context, medicationID uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM medications WHERE id = $1`, medicationID)
	if err != nil {
		return fmt.Errorf("failed to delete medication: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkTaken records that a medication was taken on the given date
// ("YYYY-MM-DD"). Marking twice for the same date is a no-op: the unique
// (medication_id, date) constraint keeps one log per dose per day.
func (s *Store) MarkTaken(ctx context.Context, userID, medicationID uuid.UUID, date string) (models.MedicationLog, error) {
	query := `
		INSERT INTO medication_logs (id, user_id, medication_id, date, taken_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (medication_id, date) DO UPDATE SET medication_id = EXCLUDED.medication_id
		RETURNING id, user_id, medication_id, taken_at, date, created_at`

	var l models.MedicationLog
	err := s.pool.QueryRow(ctx, query, uuid.New(), userID, medicationID, date).Scan(
		&l.ID, &l.UserID, &l.MedicationID, &l.TakenAt, &l.Date, &l.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.MedicationLog{}, ErrNotFound
	}
	if err != nil {
		return models.MedicationLog{}, fmt.Errorf("failed to mark medication taken: %w", err)
	}
	return l, nil
}

// LogsForDate returns a user's adherence logs for the given date.
func (s *Store) LogsForDate(ctx context.Context, userID uuid.UUID, date string) ([]models.MedicationLog, error) {
	query := `
		SELECT id, user_id, medication_id, taken_at, date, created_at
		FROM medication_logs
		WHERE user_id = $1 AND date = $2
		ORDER BY taken_at`

	rows, err := s.pool.Query(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list medication logs: %w", err)
	}
	defer rows.Close()

	var logs []models.MedicationLog
	for rows.Next() {
		var l models.MedicationLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.MedicationID, &l.TakenAt, &l.Date, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan log row: %w", err)
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}
