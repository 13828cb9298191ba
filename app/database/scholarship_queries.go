package database

import (
	"database/sql"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"
)

const scholarshipColumns = `id, student_id, student_name, registration_number, sem,
	bank_name, account_number, ifsc_code, branch, amount, concession_percentage,
	status, applied_date, created_at, updated_at`

func scanScholarship(row interface{ Scan(...interface{}) error }) (*models.Scholarship, error) {
	s := &models.Scholarship{}
	var status string
	err := row.Scan(
		&s.ID, &s.StudentID, &s.StudentName, &s.RegistrationNumber, &s.Semester,
		&s.BankName, &s.AccountNumber, &s.IFSCCode, &s.Branch,
		&s.Amount, &s.ConcessionPercentage,
		&status, &s.AppliedDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Status = models.ScholarshipStatus(status)
	return s, nil
}

// CreateScholarship records a new scholarship application with pending status.
func CreateScholarship(db *sql.DB, s *models.Scholarship) error {
	query := `INSERT INTO scholarships (student_id, student_name, registration_number,
	            sem, bank_name, account_number, ifsc_code, branch, amount, concession_percentage)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id, status, applied_date, created_at, updated_at`

	var status string
	err := db.QueryRow(query,
		s.StudentID, s.StudentName, s.RegistrationNumber, s.Semester,
		s.BankName, s.AccountNumber, s.IFSCCode, s.Branch,
		s.Amount, s.ConcessionPercentage,
	).Scan(&s.ID, &status, &s.AppliedDate, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return err
	}
	s.Status = models.ScholarshipStatus(status)
	return nil
}

// GetScholarshipsByStudent retrieves a student's applications, newest first.
func GetScholarshipsByStudent(db *sql.DB, studentID string) ([]*models.Scholarship, error) {
	query := `SELECT ` + scholarshipColumns + ` FROM scholarships
	          WHERE student_id = $1
	          ORDER BY applied_date DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scholarships []*models.Scholarship
	for rows.Next() {
		s, err := scanScholarship(rows)
		if err != nil {
			return nil, err
		}
		scholarships = append(scholarships, s)
	}
	return scholarships, rows.Err()
}

// UpdateScholarshipStatus moves an application to a new review state.
func UpdateScholarshipStatus(db *sql.DB, id string, status models.ScholarshipStatus) (*models.Scholarship, error) {
	query := `UPDATE scholarships SET status = $2, updated_at = NOW()
	          WHERE id = $1
	          RETURNING ` + scholarshipColumns
	return scanScholarship(db.QueryRow(query, id, string(status)))
}

// DeleteScholarship removes an application. Returns sql.ErrNoRows if nothing
// matched.
func DeleteScholarship(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM scholarships WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
