package database

import (
	"database/sql"
	"fmt"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"
)

const paymentColumns = `id, student_id, method, COALESCE(amount, 0), date, status,
	challan_number, registration_no, student_name, utr_number, from_bank, to_bank,
	transaction_id, upi_id, merchant_name, notified, created_at, updated_at`

func scanPayment(row interface{ Scan(...interface{}) error }) (*models.Payment, error) {
	p := &models.Payment{}
	var method, status string
	err := row.Scan(
		&p.ID, &p.StudentID, &method, &p.Amount, &p.Date, &status,
		&p.ChallanNumber, &p.RegistrationNo, &p.StudentName,
		&p.UTRNumber, &p.FromBank, &p.ToBank,
		&p.TransactionID, &p.UPIID, &p.MerchantName,
		&p.Notified, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Method = models.PaymentMethod(method)
	p.Status = models.PaymentStatus(status)
	return p, nil
}

func queryPayments(db *sql.DB, query string, args ...interface{}) ([]*models.Payment, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// CreatePayment inserts a new payment record. The caller assigns the id;
// submissions always arrive as pending.
func CreatePayment(db *sql.DB, p *models.Payment) error {
	query := `INSERT INTO payments (id, student_id, method, amount, date, status,
	            challan_number, registration_no, student_name, utr_number, from_bank,
	            to_bank, transaction_id, upi_id, merchant_name)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	          RETURNING notified, created_at, updated_at`

	err := db.QueryRow(query,
		p.ID, p.StudentID, string(p.Method), p.Amount, p.Date, string(p.Status),
		p.ChallanNumber, p.RegistrationNo, p.StudentName, p.UTRNumber, p.FromBank,
		p.ToBank, p.TransactionID, p.UPIID, p.MerchantName,
	).Scan(&p.Notified, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %v", err)
	}
	return nil
}

// GetPaymentsByStudent retrieves all of a student's payments, newest first.
func GetPaymentsByStudent(db *sql.DB, studentID string) ([]*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
	          WHERE student_id = $1
	          ORDER BY created_at DESC`
	return queryPayments(db, query, studentID)
}

// GetPaidPaymentsByStudent retrieves a student's verified payments ordered by
// payment date, newest first. This is the reconciliation engine's read path.
func GetPaidPaymentsByStudent(db *sql.DB, studentID string) ([]*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
	          WHERE student_id = $1 AND status = 'paid'
	          ORDER BY date DESC`
	return queryPayments(db, query, studentID)
}

// GetUnnotifiedPaidPayments retrieves payments that have been verified but not
// yet announced on the live channel.
func GetUnnotifiedPaidPayments(db *sql.DB) ([]*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
	          WHERE status = 'paid' AND notified = FALSE
	          ORDER BY updated_at`
	return queryPayments(db, query)
}

// MarkPaymentNotified flips the one-way notified flag on a payment record.
func MarkPaymentNotified(db *sql.DB, paymentID string) error {
	_, err := db.Exec(
		`UPDATE payments SET notified = TRUE, updated_at = NOW() WHERE id = $1`,
		paymentID,
	)
	return err
}

// PaymentExistsWithUTR reports whether any payment already carries the given
// UTR number.
func PaymentExistsWithUTR(db *sql.DB, utr string) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM payments WHERE utr_number = $1)`, utr,
	).Scan(&exists)
	return exists, err
}

// PaymentExistsWithTransactionID reports whether any payment already carries
// the given UPI transaction id.
func PaymentExistsWithTransactionID(db *sql.DB, txnID string) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM payments WHERE transaction_id = $1)`, txnID,
	).Scan(&exists)
	return exists, err
}
