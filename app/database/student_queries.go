package database

import (
	"database/sql"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"
)

const studentColumns = `id, full_name, registration_number, email, mobile, branch, course,
	current_semester, admission_year, COALESCE(sem_fees, 0), password, created_at, updated_at`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.FullName, &s.RegistrationNumber, &s.Email, &s.Mobile,
		&s.Branch, &s.Course, &s.CurrentSemester, &s.AdmissionYear,
		&s.SemFees, &s.Password, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetAllStudents retrieves every student, ordered by registration number.
func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY registration_number`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentByID retrieves a single student by id.
func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	return scanStudent(db.QueryRow(query, id))
}

// GetStudentByRegistrationNumber retrieves a single student by their
// registration number.
func GetStudentByRegistrationNumber(db *sql.DB, regNo string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE registration_number = $1`
	return scanStudent(db.QueryRow(query, regNo))
}

// UpdateStudentProfile updates the student-editable profile fields. The
// registration number and fee plan are deliberately not part of this path.
func UpdateStudentProfile(db *sql.DB, id, fullName, email, mobile string) (*models.Student, error) {
	query := `UPDATE students
	          SET full_name = COALESCE(NULLIF($2, ''), full_name),
	              email = COALESCE(NULLIF($3, ''), email),
	              mobile = COALESCE(NULLIF($4, ''), mobile),
	              updated_at = NOW()
	          WHERE id = $1
	          RETURNING ` + studentColumns

	return scanStudent(db.QueryRow(query, id, fullName, email, mobile))
}

// CreateStudent inserts a new student record. Used by admin tooling and seeds.
func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (full_name, registration_number, email, mobile, branch,
	            course, current_semester, admission_year, sem_fees, password)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		s.FullName, s.RegistrationNumber, s.Email, s.Mobile, s.Branch,
		s.Course, s.CurrentSemester, s.AdmissionYear, s.SemFees, s.Password,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}
