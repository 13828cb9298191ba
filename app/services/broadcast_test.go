package services

import (
	"testing"
	"time"
)

func TestBroadcastDeliversToAllSubscribers(t *testing.T) {
	hub := NewBroadcast()
	defer hub.Close()

	a := hub.Subscribe()
	b := hub.Subscribe()

	hub.Publish(Event{Type: "success", Title: "Payment Verified"})

	for _, ch := range []chan Event{a, b} {
		select {
		case ev := <-ch:
			if ev.Title != "Payment Verified" {
				t.Errorf("unexpected event: %+v", ev)
			}
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestBroadcastUnsubscribeStopsDelivery(t *testing.T) {
	hub := NewBroadcast()
	defer hub.Close()

	ch := hub.Subscribe()
	hub.Unsubscribe(ch)

	if _, open := <-ch; open {
		t.Error("channel should be closed after unsubscribe")
	}

	// Publishing after unsubscribe must not panic.
	hub.Publish(Event{Type: "success"})
}

func TestBroadcastSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := NewBroadcast()
	defer hub.Close()

	ch := hub.Subscribe()

	// Overflow the subscriber buffer; Publish must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish(Event{Type: "success"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}

	// The subscriber still holds up to its buffer of events.
	if len(ch) == 0 {
		t.Error("subscriber should have buffered events")
	}
}

func TestBroadcastSubscribeAfterCloseReturnsClosedChannel(t *testing.T) {
	hub := NewBroadcast()
	hub.Close()

	ch := hub.Subscribe()
	if _, open := <-ch; open {
		t.Error("subscription after close should yield a closed channel")
	}
}
