package services

import (
	"errors"
	"testing"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"
)

func upiSubmission(txnID string) *PaymentSubmission {
	return &PaymentSubmission{
		Method:        models.MethodUPI,
		Amount:        25000,
		Date:          day(1),
		TransactionID: txnID,
		UPIID:         "asha@upi",
		MerchantName:  "College Fees",
	}
}

func TestIntakeStoresSubmissionAsPending(t *testing.T) {
	store := newMockStore()
	in := NewPaymentIntake(store)

	payment, err := in.Submit("s1", upiSubmission("UPI123456789"))
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if payment.Status != models.PaymentPending {
		t.Errorf("status = %s, want pending", payment.Status)
	}
	if payment.StudentID != "s1" {
		t.Errorf("student id = %s, want s1", payment.StudentID)
	}
	if payment.TransactionID == nil || *payment.TransactionID != "UPI123456789" {
		t.Error("transaction id not stored")
	}
}

func TestIntakeRejectsDuplicateTransactionID(t *testing.T) {
	store := newMockStore()
	in := NewPaymentIntake(store)

	if _, err := in.Submit("s1", upiSubmission("UPI123456789")); err != nil {
		t.Fatalf("first Submit returned error: %v", err)
	}

	_, err := in.Submit("s2", upiSubmission("UPI123456789"))
	if !errors.Is(err, ErrDuplicateTransactionID) {
		t.Fatalf("err = %v, want ErrDuplicateTransactionID", err)
	}

	// First record unchanged, cardinality stays 1.
	if len(store.payments) != 1 {
		t.Errorf("store holds %d payments, want 1", len(store.payments))
	}
	if store.payments[0].StudentID != "s1" {
		t.Error("first record was modified by the rejected submission")
	}
}

func TestIntakeRejectsDuplicateUTR(t *testing.T) {
	store := newMockStore()
	in := NewPaymentIntake(store)

	sub := &PaymentSubmission{
		Method:    models.MethodBankTransfer,
		Amount:    30000,
		Date:      day(2),
		UTRNumber: "UTR0001",
		FromBank:  "SBI",
		ToBank:    "HDFC",
	}
	if _, err := in.Submit("s1", sub); err != nil {
		t.Fatalf("first Submit returned error: %v", err)
	}

	if _, err := in.Submit("s2", sub); !errors.Is(err, ErrDuplicateUTR) {
		t.Fatalf("err = %v, want ErrDuplicateUTR", err)
	}
	if len(store.payments) != 1 {
		t.Errorf("store holds %d payments, want 1", len(store.payments))
	}
}

func TestIntakeScopesFieldsToMethod(t *testing.T) {
	store := newMockStore()
	in := NewPaymentIntake(store)

	// A cash submission carrying stray UPI fields must not store them.
	sub := &PaymentSubmission{
		Method:        models.MethodCash,
		Amount:        10000,
		Date:          day(3),
		ChallanNumber: "CH-42",
		StudentName:   "Asha Rao",
		TransactionID: "UPI-STRAY",
		UTRNumber:     "UTR-STRAY",
	}
	payment, err := in.Submit("s1", sub)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if payment.ChallanNumber == nil || *payment.ChallanNumber != "CH-42" {
		t.Error("challan number not stored for cash payment")
	}
	if payment.TransactionID != nil || payment.UTRNumber != nil {
		t.Error("non-cash correlation fields leaked into a cash payment")
	}
}

func TestIntakeRejectsUnknownMethod(t *testing.T) {
	store := newMockStore()
	in := NewPaymentIntake(store)

	_, err := in.Submit("s1", &PaymentSubmission{Method: "cheque", Amount: 100, Date: day(1)})
	if !errors.Is(err, ErrInvalidMethod) {
		t.Fatalf("err = %v, want ErrInvalidMethod", err)
	}
	if len(store.payments) != 0 {
		t.Error("nothing should be persisted for an invalid method")
	}
}
