package models

import "time"

// Scholarship is a student's scholarship/concession application together with
// the disbursement bank details they provided.
type Scholarship struct {
	ID                   string            `json:"id"`
	StudentID            string            `json:"student_id"`
	StudentName          string            `json:"student_name"`
	RegistrationNumber   string            `json:"registration_number"`
	Semester             string            `json:"sem"`
	BankName             string            `json:"bank_name"`
	AccountNumber        string            `json:"account_number"`
	IFSCCode             string            `json:"ifsc_code"`
	Branch               string            `json:"branch"`
	Amount               float64           `json:"amount"`
	ConcessionPercentage float64           `json:"concession_percentage"`
	Status               ScholarshipStatus `json:"status"`
	AppliedDate          time.Time         `json:"applied_date"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}
