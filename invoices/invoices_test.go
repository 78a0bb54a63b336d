package invoices

import (
	"testing"

	"ziyarah/models"
)

func TestEventForStatus(t *testing.T) {
	cases := map[string]string{
		models.InvoiceSent:      models.EventInvoiceSent,
		models.InvoicePaid:      models.EventInvoicePaid,
		models.InvoiceCancelled: models.EventInvoiceCancelled,
		models.InvoicePartial:   "",
		models.InvoicePending:   "",
		models.InvoiceDraft:     "",
		models.InvoiceAdvance:   "",
	}
	for status, want := range cases {
		if got := eventForStatus(status); got != want {
			t.Errorf("%s: expected %q, got %q", status, want, got)
		}
	}
}
