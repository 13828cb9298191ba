package models

import "time"

// Student represents an enrolled student and their per-semester fee plan.
// RegistrationNumber is unique and immutable; SemFees is the fee-plan amount
// for the current semester and is only ever changed by admin tooling.
type Student struct {
	ID                 string    `json:"id"`
	FullName           string    `json:"full_name"`
	RegistrationNumber string    `json:"registration_number"`
	Email              string    `json:"email"`
	Mobile             string    `json:"mobile"`
	Branch             string    `json:"branch"`
	Course             string    `json:"course"`
	CurrentSemester    int       `json:"current_semester"`
	AdmissionYear      int       `json:"admission_year"`
	SemFees            float64   `json:"sem_fees"`
	Password           string    `json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
