package database

import (
	"database/sql"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"
)

// Stores adapts the query functions in this package to the narrow interfaces
// the background services are built against.
type Stores struct {
	DB *sql.DB
}

func NewStores(db *sql.DB) *Stores {
	return &Stores{DB: db}
}

func (s *Stores) ListStudents() ([]*models.Student, error) {
	return GetAllStudents(s.DB)
}

func (s *Stores) ListPaidPayments(studentID string) ([]*models.Payment, error) {
	return GetPaidPaymentsByStudent(s.DB, studentID)
}

func (s *Stores) ListUnnotifiedPaid() ([]*models.Payment, error) {
	return GetUnnotifiedPaidPayments(s.DB)
}

func (s *Stores) MarkNotified(paymentID string) error {
	return MarkPaymentNotified(s.DB, paymentID)
}

func (s *Stores) UpsertFeeStatus(fs *models.FeeStatus) error {
	return UpsertFeeStatus(s.DB, fs)
}

func (s *Stores) InsertPayment(p *models.Payment) error {
	return CreatePayment(s.DB, p)
}

func (s *Stores) UTRExists(utr string) (bool, error) {
	return PaymentExistsWithUTR(s.DB, utr)
}

func (s *Stores) TransactionIDExists(txnID string) (bool, error) {
	return PaymentExistsWithTransactionID(s.DB, txnID)
}
