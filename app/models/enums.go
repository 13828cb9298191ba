package models

// PaymentMethod defines how a student paid a fee installment.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodUPI          PaymentMethod = "upi"
)

// IsValid reports whether the method is one of the accepted values.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodBankTransfer, MethodUPI:
		return true
	}
	return false
}

// PaymentStatus defines the verification state of a payment record.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentPaid       PaymentStatus = "paid"
	PaymentFailed     PaymentStatus = "failed"
)

// NotificationType defines the category of a notification.
type NotificationType string

const (
	NotifySuccess  NotificationType = "success"
	NotifyWarning  NotificationType = "warning"
	NotifyReminder NotificationType = "reminder"
	NotifyInfo     NotificationType = "info"
)

// ScholarshipStatus defines the review state of a scholarship application.
type ScholarshipStatus string

const (
	ScholarshipPending  ScholarshipStatus = "pending"
	ScholarshipApproved ScholarshipStatus = "approved"
	ScholarshipRejected ScholarshipStatus = "rejected"
)
