package models

import "time"

// Notification is a persisted per-student notification. Dynamic notifications
// (fee-due warnings, deadline reminders, payment-verified events) are
// synthesized at read or publish time and never stored; they carry Dynamic=true
// and a synthetic ID so the client can render them alongside stored ones.
type Notification struct {
	ID        string           `json:"id"`
	StudentID string           `json:"student_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	Date      time.Time        `json:"date"`
	Dynamic   bool             `json:"dynamic,omitempty"`
}
