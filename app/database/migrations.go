package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist and applies
// incremental updates. Safe to run on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			full_name TEXT NOT NULL,
			registration_number TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL DEFAULT '',
			mobile TEXT NOT NULL DEFAULT '',
			branch TEXT NOT NULL DEFAULT '',
			course TEXT NOT NULL DEFAULT '',
			current_semester INT NOT NULL DEFAULT 1,
			admission_year INT NOT NULL DEFAULT 0,
			sem_fees NUMERIC(12,2),
			password TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			method VARCHAR(20) NOT NULL,
			amount NUMERIC(12,2),
			date TIMESTAMPTZ NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			challan_number TEXT,
			registration_no TEXT,
			student_name TEXT,
			utr_number TEXT,
			from_bank TEXT,
			to_bank TEXT,
			transaction_id TEXT,
			upi_id TEXT,
			merchant_name TEXT,
			notified BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_student ON payments(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_status_notified ON payments(status, notified)`,

		`CREATE TABLE IF NOT EXISTS student_fee_status (
			student_id UUID PRIMARY KEY REFERENCES students(id),
			full_name TEXT NOT NULL,
			registration_number TEXT NOT NULL,
			branch TEXT NOT NULL DEFAULT '',
			course TEXT NOT NULL DEFAULT '',
			current_semester INT NOT NULL DEFAULT 1,
			sem_fees NUMERIC(12,2) NOT NULL DEFAULT 0,
			total_paid NUMERIC(12,2) NOT NULL DEFAULT 0,
			total_due NUMERIC(12,2) NOT NULL DEFAULT 0,
			payments JSONB NOT NULL DEFAULT '[]',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS notifications (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			type VARCHAR(20) NOT NULL DEFAULT 'info',
			title TEXT NOT NULL,
			message TEXT NOT NULL,
			read BOOLEAN NOT NULL DEFAULT FALSE,
			date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_student ON notifications(student_id)`,

		`CREATE TABLE IF NOT EXISTS banks (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			bank_name TEXT NOT NULL,
			account_number TEXT NOT NULL,
			ifsc_code TEXT NOT NULL,
			branch TEXT NOT NULL,
			account_holder_name TEXT NOT NULL,
			upi_id TEXT NOT NULL DEFAULT '',
			upi_qr_data TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS fee_structures (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			tuition_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			exam_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			other_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			insurance_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			total NUMERIC(12,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS deadlines (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			due_date TIMESTAMPTZ NOT NULL,
			description TEXT NOT NULL DEFAULT 'Fee payment deadline',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS scholarships (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			student_name TEXT NOT NULL,
			registration_number TEXT NOT NULL,
			sem TEXT NOT NULL DEFAULT '',
			bank_name TEXT NOT NULL DEFAULT '',
			account_number TEXT NOT NULL DEFAULT '',
			ifsc_code TEXT NOT NULL DEFAULT '',
			branch TEXT NOT NULL DEFAULT '',
			amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			concession_percentage NUMERIC(5,2) NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			applied_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scholarships_student ON scholarships(student_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
