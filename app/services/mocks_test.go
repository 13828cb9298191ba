package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"
)

var (
	errMockStudents = errors.New("mock student store error")
	errMockPayments = errors.New("mock payment store error")
	errMockUpsert   = errors.New("mock upsert error")
)

// mockStore implements the service store interfaces over in-memory slices.
type mockStore struct {
	mu sync.Mutex

	students []*models.Student
	payments []*models.Payment
	statuses map[string]*models.FeeStatus

	listStudentsErr   error
	listPaidErr       map[string]error
	upsertErr         map[string]error
	listUnnotifiedErr error
	markNotifiedErr   map[string]error

	upsertCalls []string
	markedIDs   []string
}

func newMockStore() *mockStore {
	return &mockStore{
		statuses:        make(map[string]*models.FeeStatus),
		listPaidErr:     make(map[string]error),
		upsertErr:       make(map[string]error),
		markNotifiedErr: make(map[string]error),
	}
}

func (m *mockStore) ListStudents() ([]*models.Student, error) {
	if m.listStudentsErr != nil {
		return nil, m.listStudentsErr
	}
	return m.students, nil
}

func (m *mockStore) ListPaidPayments(studentID string) ([]*models.Payment, error) {
	if err := m.listPaidErr[studentID]; err != nil {
		return nil, err
	}
	var paid []*models.Payment
	for _, p := range m.payments {
		if p.StudentID == studentID && p.Status == models.PaymentPaid {
			paid = append(paid, p)
		}
	}
	return paid, nil
}

func (m *mockStore) UpsertFeeStatus(fs *models.FeeStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.upsertErr[fs.StudentID]; err != nil {
		return err
	}
	m.statuses[fs.StudentID] = fs
	m.upsertCalls = append(m.upsertCalls, fs.StudentID)
	return nil
}

func (m *mockStore) ListUnnotifiedPaid() ([]*models.Payment, error) {
	if m.listUnnotifiedErr != nil {
		return nil, m.listUnnotifiedErr
	}
	var due []*models.Payment
	for _, p := range m.payments {
		if p.Status == models.PaymentPaid && !p.Notified {
			due = append(due, p)
		}
	}
	return due, nil
}

func (m *mockStore) MarkNotified(paymentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.markNotifiedErr[paymentID]; err != nil {
		return err
	}
	for _, p := range m.payments {
		if p.ID == paymentID {
			p.Notified = true
			m.markedIDs = append(m.markedIDs, paymentID)
			return nil
		}
	}
	return fmt.Errorf("payment %s not found", paymentID)
}

func (m *mockStore) UTRExists(utr string) (bool, error) {
	for _, p := range m.payments {
		if p.UTRNumber != nil && *p.UTRNumber == utr {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStore) TransactionIDExists(txnID string) (bool, error) {
	for _, p := range m.payments {
		if p.TransactionID != nil && *p.TransactionID == txnID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStore) InsertPayment(p *models.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments = append(m.payments, p)
	return nil
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingPublisher) Publish(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}
