package customers

import (
	"encoding/json"
	"net/http"
	"time"

	"ziyarah/db"
	"ziyarah/models"
	"ziyarah/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func CreateCustomer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var customer models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if customer.Name == "" || customer.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	count, err := db.CustomersCollection.CountDocuments(r.Context(), bson.M{"email": customer.Email})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if count > 0 {
		utils.RespondWithError(w, http.StatusConflict, "A customer with this email already exists")
		return
	}

	now := time.Now()
	customer.CustomerID = "cu" + utils.GenerateRandomString(10)
	customer.CreatedAt = now
	customer.UpdatedAt = now

	if _, err := db.CustomersCollection.InsertOne(r.Context(), customer); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create customer")
		return
	}
	utils.SendResponse(w, http.StatusCreated, customer, "Customer created", nil)
}

func ListCustomers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if q := r.URL.Query().Get("email"); q != "" {
		filter["email"] = q
	}

	cur, err := db.CustomersCollection.Find(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(r.Context())

	customers := []models.Customer{}
	for cur.Next(r.Context()) {
		var c models.Customer
		if err := cur.Decode(&c); err == nil {
			customers = append(customers, c)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, customers)
}

func GetCustomer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var c models.Customer
	err := db.CustomersCollection.FindOne(r.Context(), bson.M{"customer_id": ps.ByName("customerid")}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Customer not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, c)
}

func UpdateCustomer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Name         *string `json:"name"`
		Phone        *string `json:"phone"`
		Address      *string `json:"address"`
		Nationality  *string `json:"nationality"`
		IsVIP        *bool   `json:"is_vip"`
		SpecialNotes *string `json:"special_notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	set := bson.M{"updated_at": time.Now()}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Phone != nil {
		set["phone"] = *input.Phone
	}
	if input.Address != nil {
		set["address"] = *input.Address
	}
	if input.Nationality != nil {
		set["nationality"] = *input.Nationality
	}
	if input.IsVIP != nil {
		set["is_vip"] = *input.IsVIP
	}
	if input.SpecialNotes != nil {
		set["special_notes"] = *input.SpecialNotes
	}

	res, err := db.CustomersCollection.UpdateOne(r.Context(),
		bson.M{"customer_id": ps.ByName("customerid")}, bson.M{"$set": set})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Customer not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Customer updated", nil)
}
