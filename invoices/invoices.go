package invoices

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"ziyarah/bookings"
	"ziyarah/db"
	"ziyarah/middleware"
	"ziyarah/models"
	"ziyarah/mq"
	"ziyarah/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func ListInvoices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	filter := bson.M{}

	if middleware.RoleNameFromContext(ctx) == models.RoleSalesAgent {
		customerIDs, err := bookings.AgentCustomerIDs(ctx, middleware.StaffIDFromContext(ctx))
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}
		bookingIDs, err := bookingIDsForCustomers(r, customerIDs)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}
		filter["booking_id"] = bson.M{"$in": bookingIDs}
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	cur, err := db.InvoicesCollection.Find(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(ctx)

	result := []models.Invoice{}
	for cur.Next(ctx) {
		var inv models.Invoice
		if err := cur.Decode(&inv); err == nil {
			result = append(result, inv)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

func bookingIDsForCustomers(r *http.Request, customerIDs []string) ([]string, error) {
	ctx := r.Context()
	cur, err := db.BookingsCollection.Find(ctx, bson.M{"customer_id": bookings.AgentScope(customerIDs)})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	ids := []string{}
	for cur.Next(ctx) {
		var b models.Booking
		if err := cur.Decode(&b); err == nil {
			ids = append(ids, b.BookingID)
		}
	}
	return ids, nil
}

func GetInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var inv models.Invoice
	err := db.InvoicesCollection.FindOne(r.Context(), bson.M{"invoice_id": ps.ByName("invoiceid")}).Decode(&inv)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Invoice not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, inv)
}

// UpdateStatus sets the invoice status directly. Transitions to sent, paid,
// or cancelled each emit exactly one domain event; the notifier worker owns
// the email side effect.
func UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	status := strings.ToLower(input.Status)
	if !utils.Contains(models.InvoiceStatuses, status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid invoice status")
		return
	}

	var inv models.Invoice
	err := db.InvoicesCollection.FindOne(ctx, bson.M{"invoice_id": ps.ByName("invoiceid")}).Decode(&inv)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Invoice not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	_, err = db.InvoicesCollection.UpdateOne(ctx,
		bson.M{"invoice_id": inv.InvoiceID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	if event := eventForStatus(status); event != "" {
		mq.Emit(event, models.Event{
			EntityID:  inv.InvoiceID,
			BookingID: inv.BookingID,
			Recipient: customerEmailForBooking(r, inv.BookingID),
			Amount:    inv.Amount,
			Status:    status,
		})
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{"status": status}, "Invoice status updated", nil)
}

func eventForStatus(status string) string {
	switch status {
	case models.InvoiceSent:
		return models.EventInvoiceSent
	case models.InvoicePaid:
		return models.EventInvoicePaid
	case models.InvoiceCancelled:
		return models.EventInvoiceCancelled
	}
	return ""
}

func customerEmailForBooking(r *http.Request, bookingID string) string {
	ctx := r.Context()

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
