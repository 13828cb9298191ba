package services

import (
	"fmt"
	"log"
	"time"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"
)

// PaymentWatchStore is the watcher's view of the payment record store.
type PaymentWatchStore interface {
	ListUnnotifiedPaid() ([]*models.Payment, error)
	MarkNotified(paymentID string) error
}

// EventPublisher delivers a live event to all current subscribers.
type EventPublisher interface {
	Publish(ev Event)
}

// Watcher detects payment records that have been verified but not yet
// announced, publishes a live event for each, and flips their notified flag.
// Publishing happens before the flag is persisted: a crash in between causes
// a duplicate event on the next poll, which subscribers tolerate, whereas the
// reverse order could drop the event entirely.
type Watcher struct {
	payments PaymentWatchStore
	events   EventPublisher
	now      func() time.Time
}

func NewWatcher(payments PaymentWatchStore, events EventPublisher) *Watcher {
	return &Watcher{
		payments: payments,
		events:   events,
		now:      time.Now,
	}
}

// Poll runs one watch pass. A query failure ends the pass; a mark failure on
// one record is logged and the remaining records are still processed.
func (w *Watcher) Poll() error {
	payments, err := w.payments.ListUnnotifiedPaid()
	if err != nil {
		return fmt.Errorf("failed to list verified payments: %v", err)
	}

	for _, payment := range payments {
		w.events.Publish(Event{
			Type:    "success",
			Title:   "Payment Verified",
			Message: fmt.Sprintf("Payment of ₹%.0f by %s has been verified.", payment.Amount, payment.PayerName()),
			Date:    w.now(),
		})

		if err := w.payments.MarkNotified(payment.ID); err != nil {
			log.Printf("Failed to mark payment %s notified: %v", payment.ID, err)
		}
	}

	return nil
}
