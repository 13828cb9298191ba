package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"
)

// UpsertFeeStatus writes the full aggregate for a student: insert if absent,
// overwrite every column if present. This is the single write path to the
// materialized view; partial updates are not supported.
func UpsertFeeStatus(db *sql.DB, fs *models.FeeStatus) error {
	snapshot, err := json.Marshal(fs.Payments)
	if err != nil {
		return fmt.Errorf("failed to encode payment snapshot: %v", err)
	}

	query := `INSERT INTO student_fee_status (student_id, full_name, registration_number,
	            branch, course, current_semester, sem_fees, total_paid, total_due,
	            payments, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	          ON CONFLICT (student_id) DO UPDATE SET
	            full_name = EXCLUDED.full_name,
	            registration_number = EXCLUDED.registration_number,
	            branch = EXCLUDED.branch,
	            course = EXCLUDED.course,
	            current_semester = EXCLUDED.current_semester,
	            sem_fees = EXCLUDED.sem_fees,
	            total_paid = EXCLUDED.total_paid,
	            total_due = EXCLUDED.total_due,
	            payments = EXCLUDED.payments,
	            updated_at = NOW()`

	_, err = db.Exec(query,
		fs.StudentID, fs.FullName, fs.RegistrationNumber,
		fs.Branch, fs.Course, fs.CurrentSemester, fs.SemFees,
		fs.TotalPaid, fs.TotalDue, snapshot,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert fee status: %v", err)
	}
	return nil
}

// GetFeeStatusByStudent reads the aggregate for one student. Callers must
// treat the result as eventually consistent.
func GetFeeStatusByStudent(db *sql.DB, studentID string) (*models.FeeStatus, error) {
	query := `SELECT student_id, full_name, registration_number, branch, course,
	            current_semester, sem_fees, total_paid, total_due, payments, updated_at
	          FROM student_fee_status WHERE student_id = $1`

	fs := &models.FeeStatus{}
	var snapshot []byte
	err := db.QueryRow(query, studentID).Scan(
		&fs.StudentID, &fs.FullName, &fs.RegistrationNumber, &fs.Branch, &fs.Course,
		&fs.CurrentSemester, &fs.SemFees, &fs.TotalPaid, &fs.TotalDue,
		&snapshot, &fs.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(snapshot, &fs.Payments); err != nil {
		return nil, fmt.Errorf("failed to decode payment snapshot: %v", err)
	}
	return fs, nil
}
