package payments

import (
	"context"

	"ziyarah/db"
	"ziyarah/models"
	"ziyarah/mq"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReconciledStatus derives the invoice status from the completed payment sum.
// Cancelled and draft invoices are left alone; otherwise the sum decides
// between paid, partial, and pending.
func ReconciledStatus(completedSum, invoiceAmount float64, current string) string {
	if current == models.InvoiceCancelled || current == models.InvoiceDraft {
		return current
	}
	switch {
	case completedSum >= invoiceAmount && invoiceAmount > 0:
		return models.InvoicePaid
	case completedSum > 0:
		return models.InvoicePartial
	default:
		return models.InvoicePending
	}
}

// ReconcileInvoice re-reads every completed payment for the booking and
// updates the invoice status inside one transaction. Emits invoice-paid when
// the reconciliation flips the invoice to paid.
func ReconcileInvoice(ctx context.Context, bookingID string) error {
	session, err := db.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	var paidEvent *models.Event
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var inv models.Invoice
		if err := db.InvoicesCollection.FindOne(sc, bson.M{"booking_id": bookingID}).Decode(&inv); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, nil // booking predates invoicing; nothing to reconcile
			}
			return nil, err
		}

		cur, err := db.PaymentsCollection.Find(sc, bson.M{
			"booking_id": bookingID,
			"status":     models.PaymentCompleted,
		})
		if err != nil {
			return nil, err
		}
		defer cur.Close(sc)

		var sum float64
		for cur.Next(sc) {
			var p models.Payment
			if err := cur.Decode(&p); err == nil {
				sum += p.Amount
			}
		}

		next := ReconciledStatus(sum, inv.Amount, inv.Status)
		if next == inv.Status {
			return nil, nil
		}

		if _, err := db.InvoicesCollection.UpdateOne(sc,
			bson.M{"invoice_id": inv.InvoiceID},
			bson.M{"$set": bson.M{"status": next}}); err != nil {
			return nil, err
		}

		if next == models.InvoicePaid {
			paidEvent = &models.Event{
				EntityID:  inv.InvoiceID,
				BookingID: bookingID,
				Recipient: customerEmail(sc, bookingID),
				Amount:    inv.Amount,
				Status:    next,
			}
		}
		return nil, nil
	})
	if err != nil {
		return err
	}

	if paidEvent != nil {
		mq.Emit(models.EventInvoicePaid, *paidEvent)
	}
	return nil
}

func customerEmail(ctx context.Context, bookingID string) string {
	var booking models.Booking
	if err := db.BookingsCollection.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&booking); err != nil {
		return ""
	}
	var customer models.Customer
	if err := db.CustomersCollection.FindOne(ctx, bson.M{"customer_id": booking.CustomerID}).Decode(&customer); err != nil {
		return ""
	}
	return customer.Email
}
