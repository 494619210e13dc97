package models

import "time"

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Participant is a user's registration for one numbered edition. Payment
// settlement is driven by an external callback, so rows start pending.
type Participant struct {
	ID            int           `json:"id"`
	UserID        int           `json:"user_id"`
	Edition       int           `json:"edition"`
	FeePaid       int           `json:"fee_paid"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	TransactionID *string       `json:"transaction_id,omitempty"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}
