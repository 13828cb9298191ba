package models

import "time"

// Bank holds the institution's collection account details shown to students.
// The application keeps a single row and overwrites it on update.
type Bank struct {
	ID                string    `json:"id"`
	BankName          string    `json:"bank_name"`
	AccountNumber     string    `json:"account_number"`
	IFSCCode          string    `json:"ifsc_code"`
	Branch            string    `json:"branch"`
	AccountHolderName string    `json:"account_holder_name"`
	UPIID             string    `json:"upi_id"`
	UPIQRData         string    `json:"upi_qr_data"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// FeeStructure is the published breakdown of semester fees. Single row,
// overwritten on update.
type FeeStructure struct {
	ID           string    `json:"id"`
	TuitionFee   float64   `json:"tuition_fee"`
	ExamFee      float64   `json:"exam_fee"`
	OtherFee     float64   `json:"other_fee"`
	InsuranceFee float64   `json:"insurance_fee"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Deadline is a fee payment deadline; the most recently created one drives
// the dynamic reminder notification.
type Deadline struct {
	ID          string    `json:"id"`
	DueDate     time.Time `json:"due_date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
