package models

import "time"

// FeeStatus is the per-student materialized view of payment totals. It is
// recomputed wholesale by the reconciliation engine and must never be
// patched field by field; readers treat it as eventually consistent.
type FeeStatus struct {
	StudentID          string           `json:"student_id"`
	FullName           string           `json:"full_name"`
	RegistrationNumber string           `json:"registration_number"`
	Branch             string           `json:"branch"`
	Course             string           `json:"course"`
	CurrentSemester    int              `json:"current_semester"`
	SemFees            float64          `json:"sem_fees"`
	TotalPaid          float64          `json:"total_paid"`
	TotalDue           float64          `json:"total_due"`
	Payments           []PaymentSummary `json:"payments"`
	UpdatedAt          time.Time        `json:"updated_at"`
}
