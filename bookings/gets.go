package bookings

import (
	"context"
	"net/http"

	"ziyarah/db"
	"ziyarah/middleware"
	"ziyarah/models"
	"ziyarah/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// leadIDsOf collects the IDs from an agent's lead documents.
func leadIDsOf(leads []models.Lead) []string {
	ids := []string{}
	for _, l := range leads {
		if l.LeadID != "" {
			ids = append(ids, l.LeadID)
		}
	}
	return ids
}

// customersOfLeads is the customers filter covering the given leads. Nil on
// an empty set: an agent with no leads owns no customers, so there is
// nothing to query.
func customersOfLeads(leadIDs []string) bson.M {
	if len(leadIDs) == 0 {
		return nil
	}
	return bson.M{"lead_id": bson.M{"$in": leadIDs}}
}

// AgentScope is the customer_id constraint limiting bookings to the agent's
// own customers. An empty set matches nothing.
func AgentScope(customerIDs []string) bson.M {
	if customerIDs == nil {
		customerIDs = []string{}
	}
	return bson.M{"$in": customerIDs}
}

// AgentCustomerIDs resolves the customers a sales agent owns through the
// lead chain: agent's leads, then customers referencing those leads. Three
// sequential reads, consistent with whatever exists at query time.
func AgentCustomerIDs(ctx context.Context, staffID string) ([]string, error) {
	leadCur, err := db.LeadsCollection.Find(ctx, bson.M{"staff_id": staffID})
	if err != nil {
		return nil, err
	}
	defer leadCur.Close(ctx)

	leads := []models.Lead{}
	for leadCur.Next(ctx) {
		var l models.Lead
		if err := leadCur.Decode(&l); err == nil {
			leads = append(leads, l)
		}
	}

	custFilter := customersOfLeads(leadIDsOf(leads))
	if custFilter == nil {
		return []string{}, nil
	}

	custCur, err := db.CustomersCollection.Find(ctx, custFilter)
	if err != nil {
		return nil, err
	}
	defer custCur.Close(ctx)

	customerIDs := []string{}
	for custCur.Next(ctx) {
		var c models.Customer
		if err := custCur.Decode(&c); err == nil {
			customerIDs = append(customerIDs, c.CustomerID)
		}
	}
	return customerIDs, nil
}

// ownsBooking reports whether the booking's customer traces back to the
// given sales agent.
func ownsBooking(ctx context.Context, staffID string, booking models.Booking) bool {
	ids, err := AgentCustomerIDs(ctx, staffID)
	if err != nil {
		return false
	}
	return utils.Contains(ids, booking.CustomerID)
}

func ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	filter := bson.M{}

	if middleware.RoleNameFromContext(ctx) == models.RoleSalesAgent {
		ids, err := AgentCustomerIDs(ctx, middleware.StaffIDFromContext(ctx))
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}
		filter["customer_id"] = AgentScope(ids)
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	cur, err := db.BookingsCollection.Find(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(ctx)

	result := []models.Booking{}
	for cur.Next(ctx) {
		var b models.Booking
		if err := cur.Decode(&b); err == nil {
			result = append(result, b)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

func GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var booking models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"booking_id": ps.ByName("bookingid")}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	if middleware.RoleNameFromContext(ctx) == models.RoleSalesAgent &&
		!ownsBooking(ctx, middleware.StaffIDFromContext(ctx), booking) {
		utils.RespondWithError(w, http.StatusForbidden, "Not your booking")
		return
	}

	services := []models.BookingService{}
	svcCur, err := db.BookingServicesCollection.Find(ctx, bson.M{"booking_id": booking.BookingID})
	if err == nil {
		defer svcCur.Close(ctx)
		for svcCur.Next(ctx) {
			var s models.BookingService
			if err := svcCur.Decode(&s); err == nil {
				services = append(services, s)
			}
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"booking":  booking,
		"services": services,
	})
}
