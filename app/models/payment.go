package models

import "time"

// Payment represents one fee payment submitted by a student. Method-specific
// correlation fields are nil for methods they do not apply to: challan/payer
// details for cash, UTR and bank names for bank transfers, transaction id,
// UPI id and merchant for UPI.
type Payment struct {
	ID             string        `json:"id"`
	StudentID      string        `json:"student_id"`
	Method         PaymentMethod `json:"method"`
	Amount         float64       `json:"amount"`
	Date           time.Time     `json:"date"`
	Status         PaymentStatus `json:"status"`
	ChallanNumber  *string       `json:"challan_number,omitempty"`
	RegistrationNo *string       `json:"registration_no,omitempty"`
	StudentName    *string       `json:"student_name,omitempty"`
	UTRNumber      *string       `json:"utr_number,omitempty"`
	FromBank       *string       `json:"from_bank,omitempty"`
	ToBank         *string       `json:"to_bank,omitempty"`
	TransactionID  *string       `json:"transaction_id,omitempty"`
	UPIID          *string       `json:"upi_id,omitempty"`
	MerchantName   *string       `json:"merchant_name,omitempty"`
	Notified       bool          `json:"notified"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// PayerName returns the best available display name for the payer.
func (p *Payment) PayerName() string {
	if p.StudentName != nil && *p.StudentName != "" {
		return *p.StudentName
	}
	if p.RegistrationNo != nil && *p.RegistrationNo != "" {
		return *p.RegistrationNo
	}
	return p.StudentID
}

// PaymentSummary is the snapshot form of a paid record stored inside the
// fee-status aggregate.
type PaymentSummary struct {
	ID     string        `json:"id"`
	Amount float64       `json:"amount"`
	Date   time.Time     `json:"date"`
	Method PaymentMethod `json:"method"`
	Status PaymentStatus `json:"status"`
}
