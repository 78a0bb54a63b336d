package leads

import (
	"encoding/json"
	"net/http"
	"time"

	"ziyarah/db"
	"ziyarah/middleware"
	"ziyarah/models"
	"ziyarah/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func CreateLead(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var lead models.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if lead.Name == "" || lead.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and email are required")
		return
	}
	if lead.Source == "" {
		lead.Source = "other"
	}
	if !utils.Contains(models.LeadSources, lead.Source) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid lead source")
		return
	}

	now := time.Now()
	lead.LeadID = "ld" + utils.GenerateRandomString(10)
	lead.Status = "new"
	lead.StaffID = middleware.StaffIDFromContext(r.Context())
	lead.CustomerID = ""
	lead.CreatedAt = now
	lead.UpdatedAt = now

	if _, err := db.LeadsCollection.InsertOne(r.Context(), lead); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create lead")
		return
	}
	utils.SendResponse(w, http.StatusCreated, lead, "Lead created", nil)
}

func ListLeads(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	// Sales agents only see their own pipeline.
	if middleware.RoleNameFromContext(r.Context()) == models.RoleSalesAgent {
		filter["staff_id"] = middleware.StaffIDFromContext(r.Context())
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	cur, err := db.LeadsCollection.Find(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(r.Context())

	leads := []models.Lead{}
	for cur.Next(r.Context()) {
		var l models.Lead
		if err := cur.Decode(&l); err == nil {
			leads = append(leads, l)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, leads)
}

func GetLead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var lead models.Lead
	err := db.LeadsCollection.FindOne(r.Context(), bson.M{"lead_id": ps.ByName("leadid")}).Decode(&lead)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Lead not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if middleware.RoleNameFromContext(r.Context()) == models.RoleSalesAgent &&
		lead.StaffID != middleware.StaffIDFromContext(r.Context()) {
		utils.RespondWithError(w, http.StatusForbidden, "Not your lead")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, lead)
}

func UpdateLead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Name   *string `json:"name"`
		Email  *string `json:"email"`
		Phone  *string `json:"phone"`
		Source *string `json:"source"`
		Status *string `json:"status"`
		Notes  *string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	set := bson.M{"updated_at": time.Now()}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.Phone != nil {
		set["phone"] = *input.Phone
	}
	if input.Source != nil {
		if !utils.Contains(models.LeadSources, *input.Source) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid lead source")
			return
		}
		set["source"] = *input.Source
	}
	if input.Status != nil {
		if !utils.Contains(models.LeadStatuses, *input.Status) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid lead status")
			return
		}
		set["status"] = *input.Status
	}
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}

	res, err := db.LeadsCollection.UpdateOne(r.Context(),
		bson.M{"lead_id": ps.ByName("leadid")}, bson.M{"$set": set})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Lead not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Lead updated", nil)
}

// MergeCustomerFields copies non-empty lead contact details onto an existing
// customer during conversion. Existing customer values win only when the
// lead's are blank.
func MergeCustomerFields(customer *models.Customer, lead models.Lead) {
	if lead.Name != "" {
		customer.Name = lead.Name
	}
	if lead.Phone != "" {
		customer.Phone = lead.Phone
	}
	if customer.LeadID == "" {
		customer.LeadID = lead.LeadID
	}
	customer.UpdatedAt = time.Now()
}

// ConvertLead turns a lead into a customer: reuse the customer matching the
// lead's email, otherwise create one. A converted lead cannot be converted
// again.
func ConvertLead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var lead models.Lead
	err := db.LeadsCollection.FindOne(ctx, bson.M{"lead_id": ps.ByName("leadid")}).Decode(&lead)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Lead not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if middleware.RoleNameFromContext(ctx) == models.RoleSalesAgent &&
		lead.StaffID != middleware.StaffIDFromContext(ctx) {
		utils.RespondWithError(w, http.StatusForbidden, "Not your lead")
		return
	}
	if lead.Status == "converted" {
		utils.RespondWithError(w, http.StatusConflict, "Lead already converted")
		return
	}

	var customer models.Customer
	err = db.CustomersCollection.FindOne(ctx, bson.M{"email": lead.Email}).Decode(&customer)
	switch {
	case err == mongo.ErrNoDocuments:
		now := time.Now()
		customer = models.Customer{
			CustomerID: "cu" + utils.GenerateRandomString(10),
			Name:       lead.Name,
			Email:      lead.Email,
			Phone:      lead.Phone,
			LeadID:     lead.LeadID,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if _, err := db.CustomersCollection.InsertOne(ctx, customer); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create customer")
			return
		}
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	default:
		MergeCustomerFields(&customer, lead)
		_, err = db.CustomersCollection.UpdateOne(ctx,
			bson.M{"customer_id": customer.CustomerID},
			bson.M{"$set": bson.M{
				"name":       customer.Name,
				"phone":      customer.Phone,
				"lead_id":    customer.LeadID,
				"updated_at": customer.UpdatedAt,
			}})
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update customer")
			return
		}
	}

	_, err = db.LeadsCollection.UpdateOne(ctx,
		bson.M{"lead_id": lead.LeadID},
		bson.M{"$set": bson.M{
			"status":      "converted",
			"customer_id": customer.CustomerID,
			"updated_at":  time.Now(),
		}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to mark lead converted")
		return
	}

	utils.SendResponse(w, http.StatusOK, customer, "Lead converted", nil)
}
