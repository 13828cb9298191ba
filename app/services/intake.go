package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"
	"github.com/google/uuid"
)

var (
	ErrInvalidMethod          = errors.New("invalid payment method")
	ErrDuplicateUTR           = errors.New("duplicate UTR number")
	ErrDuplicateTransactionID = errors.New("duplicate transaction ID")
)

// PaymentIntakeStore is the submission path's view of the payment store.
type PaymentIntakeStore interface {
	UTRExists(utr string) (bool, error)
	TransactionIDExists(txnID string) (bool, error)
	InsertPayment(p *models.Payment) error
}

// PaymentSubmission carries a student's payment form. Method-specific fields
// outside the chosen method are ignored.
type PaymentSubmission struct {
	Method         models.PaymentMethod `json:"method" validate:"required,oneof=cash bank_transfer upi"`
	Amount         float64              `json:"amount" validate:"required,gt=0"`
	Date           time.Time            `json:"date" validate:"required"`
	ChallanNumber  string               `json:"challan_number"`
	RegistrationNo string               `json:"registration_no"`
	StudentName    string               `json:"student_name"`
	UTRNumber      string               `json:"utr_number"`
	FromBank       string               `json:"from_bank"`
	ToBank         string               `json:"to_bank"`
	TransactionID  string               `json:"transaction_id"`
	UPIID          string               `json:"upi_id"`
	MerchantName   string               `json:"merchant_name"`
}

// PaymentIntake accepts payment submissions: it enforces global uniqueness of
// UTR numbers and UPI transaction ids before anything is persisted, scopes
// correlation fields to the chosen method, and stores the record as pending.
type PaymentIntake struct {
	store PaymentIntakeStore
}

func NewPaymentIntake(store PaymentIntakeStore) *PaymentIntake {
	return &PaymentIntake{store: store}
}

// Submit validates and persists one payment submission for a student.
func (in *PaymentIntake) Submit(studentID string, sub *PaymentSubmission) (*models.Payment, error) {
	if !sub.Method.IsValid() {
		return nil, ErrInvalidMethod
	}

	if sub.UTRNumber != "" {
		exists, err := in.store.UTRExists(sub.UTRNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to check UTR number: %v", err)
		}
		if exists {
			return nil, ErrDuplicateUTR
		}
	}

	if sub.TransactionID != "" {
		exists, err := in.store.TransactionIDExists(sub.TransactionID)
		if err != nil {
			return nil, fmt.Errorf("failed to check transaction ID: %v", err)
		}
		if exists {
			return nil, ErrDuplicateTransactionID
		}
	}

	payment := &models.Payment{
		ID:        uuid.NewString(),
		StudentID: studentID,
		Method:    sub.Method,
		Amount:    sub.Amount,
		Date:      sub.Date,
		Status:    models.PaymentPending,
	}

	switch sub.Method {
	case models.MethodCash:
		payment.ChallanNumber = optional(sub.ChallanNumber)
		payment.RegistrationNo = optional(sub.RegistrationNo)
		payment.StudentName = optional(sub.StudentName)
	case models.MethodBankTransfer:
		payment.UTRNumber = optional(sub.UTRNumber)
		payment.FromBank = optional(sub.FromBank)
		payment.ToBank = optional(sub.ToBank)
	case models.MethodUPI:
		payment.TransactionID = optional(sub.TransactionID)
		payment.UPIID = optional(sub.UPIID)
		payment.MerchantName = optional(sub.MerchantName)
	}

	if err := in.store.InsertPayment(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
