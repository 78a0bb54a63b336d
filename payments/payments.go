package payments

import (
	"encoding/json"
	"net/http"
	"time"

	"ziyarah/db"
	"ziyarah/models"
	"ziyarah/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func CreatePayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		BookingID     string  `json:"booking_id"`
		Amount        float64 `json:"amount"`
		PaymentDate   string  `json:"payment_date"`
		PaymentMethod string  `json:"payment_method"`
		TransactionID string  `json:"transaction_id"`
		Status        string  `json:"status"`
		Notes         string  `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.BookingID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "booking_id is required")
		return
	}
	if input.Amount < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount cannot be negative")
		return
	}
	if !utils.Contains(models.PaymentMethods, input.PaymentMethod) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment method")
		return
	}
	if input.Status == "" {
		input.Status = models.PaymentPending
	}
	if !utils.Contains(models.PaymentStatuses, input.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment status")
		return
	}

	ctx := r.Context()
	if err := db.BookingsCollection.FindOne(ctx, bson.M{"booking_id": input.BookingID}).Err(); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	paymentDate := time.Now()
	if input.PaymentDate != "" {
		if parsed, err := time.Parse("2006-01-02", input.PaymentDate); err == nil {
			paymentDate = parsed
		}
	}
	if input.TransactionID == "" {
		input.TransactionID = uuid.NewString()
	}

	now := time.Now()
	payment := models.Payment{
		PaymentID:     "pm" + utils.GenerateRandomString(10),
		BookingID:     input.BookingID,
		Amount:        input.Amount,
		PaymentDate:   paymentDate,
		PaymentMethod: input.PaymentMethod,
		TransactionID: input.TransactionID,
		Status:        input.Status,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := db.PaymentsCollection.InsertOne(ctx, payment); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	if err := ReconcileInvoice(ctx, payment.BookingID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Payment recorded but reconciliation failed")
		return
	}
	utils.SendResponse(w, http.StatusCreated, payment, "Payment recorded", nil)
}

func ListPayments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if bookingID := r.URL.Query().Get("booking_id"); bookingID != "" {
		filter["booking_id"] = bookingID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	cur, err := db.PaymentsCollection.Find(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(r.Context())

	result := []models.Payment{}
	for cur.Next(r.Context()) {
		var p models.Payment
		if err := cur.Decode(&p); err == nil {
			result = append(result, p)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

func UpdatePayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Amount *float64 `json:"amount"`
		Status *string  `json:"status"`
		Notes  *string  `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	set := bson.M{"updated_at": time.Now()}
	if input.Amount != nil {
		if *input.Amount < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Amount cannot be negative")
			return
		}
		set["amount"] = *input.Amount
	}
	if input.Status != nil {
		if !utils.Contains(models.PaymentStatuses, *input.Status) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment status")
			return
		}
		set["status"] = *input.Status
	}
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}

	ctx := r.Context()

	var payment models.Payment
	err := db.PaymentsCollection.FindOneAndUpdate(ctx,
		bson.M{"payment_id": ps.ByName("paymentid")}, bson.M{"$set": set}).Decode(&payment)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Payment not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := ReconcileInvoice(ctx, payment.BookingID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Payment updated but reconciliation failed")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Payment updated", nil)
}

// PaymentSummary reports the invoice amount, the completed total, and the
// outstanding balance for a booking.
func PaymentSummary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	bookingID := ps.ByName("bookingid")

	var inv models.Invoice
	err := db.InvoicesCollection.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&inv)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "No invoice for booking")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	cur, err := db.PaymentsCollection.Find(ctx, bson.M{"booking_id": bookingID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(ctx)

	pays := []models.Payment{}
	var completed float64
	for cur.Next(ctx) {
		var p models.Payment
		if err := cur.Decode(&p); err == nil {
			pays = append(pays, p)
			if p.Status == models.PaymentCompleted {
				completed += p.Amount
			}
		}
	}

	balance := inv.Amount - completed
	if balance < 0 {
		balance = 0
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"invoice_id":     inv.InvoiceID,
		"invoice_amount": inv.Amount,
		"invoice_status": inv.Status,
		"paid_total":     completed,
		"balance":        balance,
		"payments":       pays,
	})
}
