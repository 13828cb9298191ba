package services

import (
	"strings"
	"testing"
	"time"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"
)

func strptr(s string) *string { return &s }

func TestWatcherNotifiesVerifiedPaymentOnce(t *testing.T) {
	store := newMockStore()
	store.payments = []*models.Payment{
		{
			ID:          "p1",
			StudentID:   "s1",
			Amount:      25000,
			Status:      models.PaymentPaid,
			StudentName: strptr("Asha Rao"),
		},
	}
	pub := &recordingPublisher{}

	w := NewWatcher(store, pub)
	if err := w.Poll(); err != nil {
		t.Fatalf("Poll returned error: %v", err)
	}

	if len(pub.events) != 1 {
		t.Fatalf("published %d events, want 1", len(pub.events))
	}
	ev := pub.events[0]
	if ev.Type != "success" || ev.Title != "Payment Verified" {
		t.Errorf("unexpected event header: %+v", ev)
	}
	if !strings.Contains(ev.Message, "25000") || !strings.Contains(ev.Message, "Asha Rao") {
		t.Errorf("message must reference amount and payer name, got %q", ev.Message)
	}
	if !store.payments[0].Notified {
		t.Error("payment was not marked notified")
	}

	// A second poll finds nothing to announce.
	if err := w.Poll(); err != nil {
		t.Fatalf("second Poll returned error: %v", err)
	}
	if len(pub.events) != 1 {
		t.Errorf("published %d events after second poll, want still 1", len(pub.events))
	}
}

func TestWatcherIgnoresPendingPayments(t *testing.T) {
	store := newMockStore()
	store.payments = []*models.Payment{
		{ID: "p1", StudentID: "s1", Amount: 17000, Status: models.PaymentPending},
		{ID: "p2", StudentID: "s1", Amount: 9000, Status: models.PaymentFailed},
		{ID: "p3", StudentID: "s1", Amount: 5000, Status: models.PaymentProcessing},
	}
	pub := &recordingPublisher{}

	w := NewWatcher(store, pub)
	for i := 0; i < 3; i++ {
		if err := w.Poll(); err != nil {
			t.Fatalf("Poll returned error: %v", err)
		}
	}

	if len(pub.events) != 0 {
		t.Errorf("published %d events, want 0", len(pub.events))
	}
	for _, p := range store.payments {
		if p.Notified {
			t.Errorf("payment %s should not be touched", p.ID)
		}
	}
}

func TestWatcherEventDateIsEmissionTime(t *testing.T) {
	store := newMockStore()
	store.payments = []*models.Payment{
		{ID: "p1", StudentID: "s1", Amount: 100, Status: models.PaymentPaid, Date: day(1)},
	}
	pub := &recordingPublisher{}

	emitted := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	w := NewWatcher(store, pub)
	w.now = func() time.Time { return emitted }

	if err := w.Poll(); err != nil {
		t.Fatalf("Poll returned error: %v", err)
	}
	if !pub.events[0].Date.Equal(emitted) {
		t.Errorf("event date = %v, want emission time %v, not payment date", pub.events[0].Date, emitted)
	}
}

func TestWatcherPublishesBeforeMarking(t *testing.T) {
	store := newMockStore()
	store.payments = []*models.Payment{
		{ID: "p1", StudentID: "s1", Amount: 100, Status: models.PaymentPaid},
	}
	store.markNotifiedErr["p1"] = errMockPayments
	pub := &recordingPublisher{}

	w := NewWatcher(store, pub)
	if err := w.Poll(); err != nil {
		t.Fatalf("Poll returned error: %v", err)
	}

	// Mark failed, but the event must already be out: losing the event is
	// worse than a duplicate on the next poll.
	if len(pub.events) != 1 {
		t.Fatalf("published %d events, want 1 despite mark failure", len(pub.events))
	}
	if store.payments[0].Notified {
		t.Error("payment should remain unnotified after mark failure")
	}
}

func TestWatcherOneRecordFailureDoesNotBlockOthers(t *testing.T) {
	store := newMockStore()
	store.payments = []*models.Payment{
		{ID: "p1", StudentID: "s1", Amount: 100, Status: models.PaymentPaid},
		{ID: "p2", StudentID: "s2", Amount: 200, Status: models.PaymentPaid},
	}
	store.markNotifiedErr["p1"] = errMockPayments
	pub := &recordingPublisher{}

	w := NewWatcher(store, pub)
	if err := w.Poll(); err != nil {
		t.Fatalf("Poll returned error: %v", err)
	}

	if len(pub.events) != 2 {
		t.Errorf("published %d events, want 2", len(pub.events))
	}
	if !store.payments[1].Notified {
		t.Error("second payment should be marked despite first record's failure")
	}
}

func TestWatcherQueryFailureEndsPass(t *testing.T) {
	store := newMockStore()
	store.listUnnotifiedErr = errMockPayments
	pub := &recordingPublisher{}

	w := NewWatcher(store, pub)
	if err := w.Poll(); err == nil {
		t.Fatal("Poll should fail when the query fails")
	}
	if len(pub.events) != 0 {
		t.Errorf("published %d events, want 0", len(pub.events))
	}
}
