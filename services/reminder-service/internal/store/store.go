// Package store owns all SQL against the reminder database: the pre-joined
// candidate query the check pipeline consumes, and the medication, log and
// profile operations behind the REST API.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MGmadhavan/medication-reminder-app/internal/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Store is the Postgres-backed repository for the reminder service.
type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// FetchDueCandidates returns the flat medication/user/caretaker projection
// for the target date ("YYYY-MM-DD"). Medications already logged as taken
// for that date are excluded: the taken log is the only thing that stops
// repeat missed alerts, so the filter has to live here, before
// classification. Rows are ordered by scheduled time for stable grouping.
func (s *Store) FetchDueCandidates(ctx context.Context, targetDate string) ([]models.MedicationSchedule, error) {
	query := `
		SELECT m.id, m.name, m.dosage, m.time,
		       p.id, p.email, COALESCE(p.full_name, ''), COALESCE(p.caretaker_email, '')
		FROM medications m
		JOIN profiles p ON p.id = m.user_id
		WHERE NOT EXISTS (
			SELECT 1 FROM medication_logs l
			WHERE l.medication_id = m.id AND l.date = $1
		)
		ORDER BY m.time, m.created_at`

	rows, err := s.pool.Query(ctx, query, targetDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query due candidates: %w", err)
	}
	defer rows.Close()

	var candidates []models.MedicationSchedule
	for rows.Next() {
		var c models.MedicationSchedule
		if err := rows.Scan(
			&c.MedicationID,
			&c.MedicationName,
			&c.Dosage,
			&c.ScheduledTime,
			&c.UserID,
			&c.UserEmail,
			&c.UserFullName,
			&c.CaretakerEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}
		candidates = append(candidates, c)
	}

	return candidates, rows.Err()
}

// GetProfile returns a user profile by ID.
func (s *Store) GetProfile(ctx context.Context, userID uuid.UUID) (models.Profile, error) {
	query := `
		SELECT id, email, COALESCE(full_name, ''), COALESCE(caretaker_email, ''),
		       created_at, updated_at
		FROM profiles WHERE id = $1`

	var p models.Profile
	err := s.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.Email, &p.FullName, &p.CaretakerEmail, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Profile{}, ErrNotFound
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// UpsertProfile inserts a profile or updates its display name and caretaker
// email if the user already exists.
func (s *Store) UpsertProfile(ctx context.Context, p models.Profile) error {
	query := `
		INSERT INTO profiles (id, email, full_name, caretaker_email)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		ON CONFLICT (id) DO UPDATE SET
			full_name       = EXCLUDED.full_name,
			caretaker_email = EXCLUDED.caretaker_email,
			updated_at      = now()`

	_, err := s.pool.Exec(ctx, query, p.ID, p.Email, p.FullName, p.CaretakerEmail)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
