package models

import "time"

const (
	InvoiceDraft     = "draft"
	InvoiceSent      = "sent"
	InvoicePending   = "pending"
	InvoicePartial   = "partial"
	InvoicePaid      = "paid"
	InvoiceAdvance   = "advance"
	InvoiceCancelled = "cancelled"
)

var InvoiceStatuses = []string{
	InvoiceDraft, InvoiceSent, InvoicePending, InvoicePartial,
	InvoicePaid, InvoiceAdvance, InvoiceCancelled,
}

type Invoice struct {
	InvoiceID   string    `json:"invoice_id" bson:"invoice_id"`
	BookingID   string    `json:"booking_id" bson:"booking_id"`
	Amount      float64   `json:"amount" bson:"amount"`
	InvoiceDate time.Time `json:"invoice_date" bson:"invoice_date"`
	Status      string    `json:"status" bson:"status"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
	PaymentAdvance   = "advance"
)

var PaymentStatuses = []string{
	PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded, PaymentAdvance,
}

var PaymentMethods = []string{"credit_card", "debit_card", "bank_transfer", "cash", "other"}

type Payment struct {
	PaymentID     string    `json:"payment_id" bson:"payment_id"`
	BookingID     string    `json:"booking_id" bson:"booking_id"`
	Amount        float64   `json:"amount" bson:"amount"`
	PaymentDate   time.Time `json:"payment_date" bson:"payment_date"`
	PaymentMethod string    `json:"payment_method" bson:"payment_method"`
	TransactionID string    `json:"transaction_id,omitempty" bson:"transaction_id,omitempty"`
	Status        string    `json:"status" bson:"status"`
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
