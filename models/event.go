package models

// Event is a domain notification published on the redis event channel and
// consumed by the single notifier worker.
type Event struct {
	Name       string  `json:"name"`
	EntityID   string  `json:"entity_id"`
	BookingID  string  `json:"booking_id,omitempty"`
	Recipient  string  `json:"recipient,omitempty"`
	Amount     float64 `json:"amount,omitempty"`
	Status     string  `json:"status,omitempty"`
	OccurredAt int64   `json:"occurred_at"`
}

const (
	EventInvoiceSent      = "invoice-sent"
	EventInvoicePaid      = "invoice-paid"
	EventInvoiceCancelled = "invoice-cancelled"
	EventTravelStatus     = "travel-status-changed"
)
