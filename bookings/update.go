package bookings

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"ziyarah/db"
	"ziyarah/middleware"
	"ziyarah/models"
	"ziyarah/mq"
	"ziyarah/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func loadBookingChecked(w http.ResponseWriter, r *http.Request, bookingID string) (*models.Booking, bool) {
	ctx := r.Context()

	var booking models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return nil, false
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}

	if middleware.RoleNameFromContext(ctx) == models.RoleSalesAgent &&
		!ownsBooking(ctx, middleware.StaffIDFromContext(ctx), booking) {
		utils.RespondWithError(w, http.StatusForbidden, "Not your booking")
		return nil, false
	}
	return &booking, true
}

// UpdateBooking edits mutable booking fields. The Operation Team may only
// touch guide, transport, and status; Admin and the owning Sales Agent may
// also move dates and traveler count.
func UpdateBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, ok := loadBookingChecked(w, r, ps.ByName("bookingid"))
	if !ok {
		return
	}

	var input struct {
		GuideID         *string `json:"guide_id"`
		TransportID     *string `json:"transport_id"`
		Status          *string `json:"status"`
		TravelStartDate *string `json:"travel_start_date"`
		TravelEndDate   *string `json:"travel_end_date"`
		NumTravelers    *int    `json:"num_travelers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx := r.Context()
	set := bson.M{"updated_at": time.Now()}

	if input.GuideID != nil {
		var g models.Guide
		if err := db.GuidesCollection.FindOne(ctx, bson.M{"guide_id": *input.GuideID}).Decode(&g); err != nil || !g.IsActive {
			utils.RespondWithError(w, http.StatusBadRequest, "Guide not found or inactive")
			return
		}
		set["guide_id"] = *input.GuideID
	}
	if input.TransportID != nil {
		var t models.Transport
		if err := db.TransportsCollection.FindOne(ctx, bson.M{"transport_id": *input.TransportID}).Decode(&t); err != nil || !t.IsActive {
			utils.RespondWithError(w, http.StatusBadRequest, "Transport not found or inactive")
			return
		}
		set["transport_id"] = *input.TransportID
	}
	if input.Status != nil {
		status := strings.ToLower(*input.Status)
		if !utils.Contains(models.BookingStatuses, status) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking status")
			return
		}
		set["status"] = status
	}

	operationOnly := middleware.RoleNameFromContext(ctx) == models.RoleOperation
	if !operationOnly {
		if input.TravelStartDate != nil {
			set["travel_start_date"] = *input.TravelStartDate
		}
		if input.TravelEndDate != nil {
			set["travel_end_date"] = *input.TravelEndDate
		}
		if input.NumTravelers != nil {
			if *input.NumTravelers < 1 {
				utils.RespondWithError(w, http.StatusBadRequest, "num_travelers must be at least 1")
				return
			}
			set["num_travelers"] = *input.NumTravelers
		}
	}

	_, err := db.BookingsCollection.UpdateOne(ctx,
		bson.M{"booking_id": booking.BookingID}, bson.M{"$set": set})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Booking updated", nil)
}

func UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, ok := loadBookingChecked(w, r, ps.ByName("bookingid"))
	if !ok {
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	status := strings.ToLower(input.Status)
	if !utils.Contains(models.BookingStatuses, status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking status")
		return
	}

	_, err := db.BookingsCollection.UpdateOne(r.Context(),
		bson.M{"booking_id": booking.BookingID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	utils.SendResponse(w, http.StatusOK, map[string]string{"status": status}, "Status updated", nil)
}

// travelStatusUpdate returns the fields to persist for a travel-progress
// change. A cancelled travel status forces the booking status to cancelled.
func travelStatusUpdate(travelStatus string) (bson.M, bool) {
	matched := ""
	for _, ts := range models.TravelStatuses {
		if strings.EqualFold(ts, travelStatus) {
			matched = ts
			break
		}
	}
	if matched == "" {
		return nil, false
	}

	set := bson.M{"travel_status": matched, "updated_at": time.Now()}
	if strings.EqualFold(matched, "Cancelled") {
		set["status"] = models.BookingCancelled
	}
	return set, true
}

func UpdateTravelStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("bookingid")

	var input struct {
		TravelStatus string `json:"travel_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	set, ok := travelStatusUpdate(input.TravelStatus)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid travel status")
		return
	}

	res, err := db.BookingsCollection.UpdateOne(r.Context(),
		bson.M{"booking_id": bookingID}, bson.M{"$set": set})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	BroadcastTravelStatus(bookingID, set["travel_status"].(string))
	mq.Emit(models.EventTravelStatus, models.Event{
		EntityID: bookingID,
		Status:   set["travel_status"].(string),
	})
	utils.SendResponse(w, http.StatusOK, map[string]any{"travel_status": set["travel_status"]}, "Travel status updated", nil)
}

// AssignGuide attaches an active guide to the booking. Assignment checks
// existence and active flag only; date overlaps are not checked.
func AssignGuide(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("bookingid")
	ctx := r.Context()

	if err := db.BookingsCollection.FindOne(ctx, bson.M{"booking_id": bookingID}).Err(); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	var input struct {
		GuideID string `json:"guide_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.GuideID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "guide_id is required")
		return
	}

	var g models.Guide
	if err := db.GuidesCollection.FindOne(ctx, bson.M{"guide_id": input.GuideID}).Decode(&g); err != nil || !g.IsActive {
		utils.RespondWithError(w, http.StatusBadRequest, "Guide not found or inactive")
		return
	}

	_, err := db.BookingsCollection.UpdateOne(ctx,
		bson.M{"booking_id": bookingID},
		bson.M{"$set": bson.M{"guide_id": g.GuideID, "updated_at": time.Now()}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Guide assigned", nil)
}

func AssignTransport(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("bookingid")
	ctx := r.Context()

	if err := db.BookingsCollection.FindOne(ctx, bson.M{"booking_id": bookingID}).Err(); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	var input struct {
		TransportID string `json:"transport_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.TransportID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "transport_id is required")
		return
	}

	var t models.Transport
	if err := db.TransportsCollection.FindOne(ctx, bson.M{"transport_id": input.TransportID}).Decode(&t); err != nil || !t.IsActive {
		utils.RespondWithError(w, http.StatusBadRequest, "Transport not found or inactive")
		return
	}

	_, err := db.BookingsCollection.UpdateOne(ctx,
		bson.M{"booking_id": bookingID},
		bson.M{"$set": bson.M{"transport_id": t.TransportID, "updated_at": time.Now()}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Transport assigned", nil)
}
