package services

import (
	"fmt"
	"log"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"
)

// StudentDirectory is the reconciliation engine's read path into the student
// record store.
type StudentDirectory interface {
	ListStudents() ([]*models.Student, error)
}

// PaymentReader lists a student's verified payments, ordered by date
// descending.
type PaymentReader interface {
	ListPaidPayments(studentID string) ([]*models.Payment, error)
}

// FeeStatusWriter upserts a student's full aggregate document.
type FeeStatusWriter interface {
	UpsertFeeStatus(fs *models.FeeStatus) error
}

// Reconciler recomputes every student's fee-status aggregate from the source
// of truth. It only ever writes the aggregate store; student and payment
// records are never mutated.
type Reconciler struct {
	students StudentDirectory
	payments PaymentReader
	statuses FeeStatusWriter
}

func NewReconciler(students StudentDirectory, payments PaymentReader, statuses FeeStatusWriter) *Reconciler {
	return &Reconciler{
		students: students,
		payments: payments,
		statuses: statuses,
	}
}

// Run performs one full reconciliation pass. A failure to list students ends
// the run; a failure on a single student is logged and the pass continues.
// Re-running with unchanged inputs produces identical aggregates.
func (r *Reconciler) Run() error {
	students, err := r.students.ListStudents()
	if err != nil {
		return fmt.Errorf("failed to list students: %v", err)
	}

	updated := 0
	for _, student := range students {
		if err := r.reconcileStudent(student); err != nil {
			log.Printf("Failed to reconcile fee status for %s: %v", student.RegistrationNumber, err)
			continue
		}
		updated++
	}

	log.Printf("Fee reconciliation completed: %d/%d students updated", updated, len(students))
	return nil
}

func (r *Reconciler) reconcileStudent(student *models.Student) error {
	payments, err := r.payments.ListPaidPayments(student.ID)
	if err != nil {
		return err
	}
	return r.statuses.UpsertFeeStatus(BuildFeeStatus(student, payments))
}

// BuildFeeStatus computes the aggregate document for one student from their
// verified payments. Payments are expected ordered by date descending; the
// snapshot preserves that order. A missing fee plan counts as zero and the
// due amount is clamped at zero on overpayment.
func BuildFeeStatus(student *models.Student, paid []*models.Payment) *models.FeeStatus {
	totalPaid := 0.0
	history := make([]models.PaymentSummary, 0, len(paid))
	for _, p := range paid {
		totalPaid += p.Amount
		history = append(history, models.PaymentSummary{
			ID:     p.ID,
			Amount: p.Amount,
			Date:   p.Date,
			Method: p.Method,
			Status: p.Status,
		})
	}

	totalDue := student.SemFees - totalPaid
	if totalDue < 0 {
		totalDue = 0
	}

	return &models.FeeStatus{
		StudentID:          student.ID,
		FullName:           student.FullName,
		RegistrationNumber: student.RegistrationNumber,
		Branch:             student.Branch,
		Course:             student.Course,
		CurrentSemester:    student.CurrentSemester,
		SemFees:            student.SemFees,
		TotalPaid:          totalPaid,
		TotalDue:           totalDue,
		Payments:           history,
	}
}
