package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"ziyarah/mailer"
	"ziyarah/models"
	"ziyarah/rdx"
)

const eventChannel = "crm-events"

// Emit publishes a domain event to the redis channel. Delivery side effects
// (email) happen only in the notifier worker, so an invoice status change
// fires at most one notification no matter how many code paths persist it.
func Emit(name string, event models.Event) {
	event.Name = name
	event.OccurredAt = time.Now().Unix()

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] failed to marshal event %s: %v", name, err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), eventChannel, data).Err(); err != nil {
		log.Printf("[Emit] failed to publish %s: %v", name, err)
	}
}

// StartNotifierWorker consumes domain events and sends the corresponding
// customer emails. It is the only place mail is sent for invoice lifecycle
// changes.
func StartNotifierWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, eventChannel)
	ch := sub.Channel()

	log.Println("[Notifier] listening for domain events")

	for msg := range ch {
		var event models.Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[Notifier] bad event payload: %v", err)
			continue
		}
		handleEvent(event)
	}
}

func handleEvent(event models.Event) {
	if event.Recipient == "" {
		return
	}

	var subject, body string
	switch event.Name {
	case models.EventInvoiceSent:
		portal := os.Getenv("PAYMENT_PORTAL_URL")
		subject = "Your invoice is ready"
		body = fmt.Sprintf(
			"Your invoice %s for booking %s has been issued.\nAmount due: %.2f\nPay online: %s",
			event.EntityID, event.BookingID, event.Amount, portal)
	case models.EventInvoicePaid:
		subject = "Payment received"
		body = fmt.Sprintf(
			"We have received full payment for invoice %s (booking %s). Thank you.",
			event.EntityID, event.BookingID)
	case models.EventInvoiceCancelled:
		subject = "Invoice cancelled"
		body = fmt.Sprintf(
			"Invoice %s for booking %s has been cancelled. Contact us for details.",
			event.EntityID, event.BookingID)
	default:
		return
	}

	if err := mailer.Send(event.Recipient, subject, body); err != nil {
		log.Printf("[Notifier] email for %s failed: %v", event.Name, err)
	}
}
