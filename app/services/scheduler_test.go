package services

import (
	"testing"
	"time"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"
)

func TestNewSchedulerRejectsMalformedCron(t *testing.T) {
	store := newMockStore()
	r := NewReconciler(store, store, store)
	w := NewWatcher(store, &recordingPublisher{})

	// Six-field expressions are not a standard cron spec.
	if _, err := NewScheduler(r, w, "0 0 * * * *", time.Second); err == nil {
		t.Error("six-field cron expression should be rejected")
	}
	if _, err := NewScheduler(r, w, "not-a-cron", time.Second); err == nil {
		t.Error("garbage cron expression should be rejected")
	}
	if _, err := NewScheduler(r, w, "0 * * * *", 0); err == nil {
		t.Error("zero watcher interval should be rejected")
	}
}

func TestSchedulerRunsWatcherOnInterval(t *testing.T) {
	store := newMockStore()
	store.payments = []*models.Payment{
		{ID: "p1", StudentID: "s1", Amount: 100, Status: models.PaymentPaid},
	}
	pub := &recordingPublisher{}

	r := NewReconciler(store, store, store)
	w := NewWatcher(store, pub)

	s, err := NewScheduler(r, w, "0 * * * *", 10*time.Millisecond)
	if err != nil {
		t.Fatalf("NewScheduler returned error: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		store.mu.Lock()
		marked := len(store.markedIDs)
		store.mu.Unlock()
		if marked == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("watcher never processed the verified payment")
		case <-time.After(10 * time.Millisecond):
		}
	}

	s.Stop()

	pub.mu.Lock()
	defer pub.mu.Unlock()
	if len(pub.events) != 1 {
		t.Errorf("published %d events, want exactly 1", len(pub.events))
	}
}
