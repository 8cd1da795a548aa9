package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MGmadhavan/medication-reminder-app/services/reminder-service/internal/db"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Setup database and create test data",
	Long:  "Creates database tables and inserts a test profile with medications for development/testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := db.Init(ctx); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		fmt.Println("Running migrations...")
		migrationSQL := `
			-- Profiles: primary users plus the caretaker to notify.
			CREATE TABLE IF NOT EXISTS profiles (
			    id UUID PRIMARY KEY,
			    email VARCHAR(255) NOT NULL UNIQUE,
			    full_name VARCHAR(255),
			    caretaker_email VARCHAR(255),
			    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
			    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
			);

			-- Medications: one daily scheduled dose per row.
			-- time is a 24-hour "HH:MM" wall-clock string.
			CREATE TABLE IF NOT EXISTS medications (
			    id UUID PRIMARY KEY,
			    user_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			    name VARCHAR(255) NOT NULL,
			    dosage VARCHAR(255) NOT NULL,
			    time VARCHAR(5) NOT NULL,
			    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
			    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
			);

			CREATE INDEX IF NOT EXISTS idx_medications_user_id ON medications(user_id);

			-- Adherence logs: one row per (medication, date) marks the dose
			-- taken and excludes it from that day's check candidates.
			-- date is "YYYY-MM-DD".
			CREATE TABLE IF NOT EXISTS medication_logs (
			    id UUID PRIMARY KEY,
			    user_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			    medication_id UUID NOT NULL REFERENCES medications(id) ON DELETE CASCADE,
			    taken_at TIMESTAMP WITH TIME ZONE NOT NULL,
			    date VARCHAR(10) NOT NULL,
			    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
			    UNIQUE (medication_id, date)
			);

			CREATE INDEX IF NOT EXISTS idx_medication_logs_user_date ON medication_logs(user_id, date);
			CREATE INDEX IF NOT EXISTS idx_medication_logs_med_date ON medication_logs(medication_id, date);
		`

		if _, err := db.Pool.Exec(ctx, migrationSQL); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		fmt.Println("Inserting test data...")
		testUserID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
		insertProfileSQL := `
			INSERT INTO profiles (id, email, full_name, caretaker_email)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET
				full_name = EXCLUDED.full_name,
				caretaker_email = EXCLUDED.caretaker_email`

		if _, err := db.Pool.Exec(ctx, insertProfileSQL,
			testUserID, "test.user@example.com", "Test User", "caretaker@example.com"); err != nil {
			return fmt.Errorf("failed to insert test profile: %w", err)
		}

		insertMedicationSQL := `
			INSERT INTO medications (id, user_id, name, dosage, time)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING`

		seed := []struct {
			id     uuid.UUID
			name   string
			dosage string
			time   string
		}{
			{uuid.MustParse("00000000-0000-0000-0000-000000000101"), "Aspirin", "100mg", "08:00"},
			{uuid.MustParse("00000000-0000-0000-0000-000000000102"), "Metformin", "500mg", "20:00"},
		}
		for _, m := range seed {
			if _, err := db.Pool.Exec(ctx, insertMedicationSQL, m.id, testUserID, m.name, m.dosage, m.time); err != nil {
				return fmt.Errorf("failed to insert test medication: %w", err)
			}
		}

		fmt.Printf("✓ Database setup complete. Test user: %s (Test User)\n", testUserID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
