package payments

import (
	"testing"

	"ziyarah/models"
)

func TestReconciledStatus(t *testing.T) {
	cases := []struct {
		name    string
		sum     float64
		amount  float64
		current string
		want    string
	}{
		{"full payment", 1000, 1000, models.InvoiceSent, models.InvoicePaid},
		{"overpayment", 1200, 1000, models.InvoiceSent, models.InvoicePaid},
		{"split payments partial", 400, 1000, models.InvoiceSent, models.InvoicePartial},
		{"nothing completed", 0, 1000, models.InvoiceSent, models.InvoicePending},
		{"refund edit drops below full", 600, 1000, models.InvoicePaid, models.InvoicePartial},
		{"refund edit drops to zero", 0, 1000, models.InvoicePaid, models.InvoicePending},
		{"cancelled invoice untouched", 1000, 1000, models.InvoiceCancelled, models.InvoiceCancelled},
		{"draft invoice untouched", 1000, 1000, models.InvoiceDraft, models.InvoiceDraft},
		{"zero amount invoice never paid", 0, 0, models.InvoiceSent, models.InvoicePending},
	}
	for _, tc := range cases {
		if got := ReconciledStatus(tc.sum, tc.amount, tc.current); got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}
