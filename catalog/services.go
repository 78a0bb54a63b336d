package catalog

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"ziyarah/db"
	"ziyarah/models"
	"ziyarah/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func CreateService(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var svc models.OptionalService
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if svc.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if svc.Price < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Price cannot be negative")
		return
	}

	now := time.Now()
	svc.ServiceID = "sv" + utils.GenerateRandomString(10)
	svc.NameLower = strings.ToLower(svc.Name)
	svc.IsActive = true
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if _, err := db.ServicesCollection.InsertOne(r.Context(), svc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "A service with this name already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create service")
		return
	}
	utils.SendResponse(w, http.StatusCreated, svc, "Service created", nil)
}

func ListServices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if r.URL.Query().Get("active") == "true" {
		filter["is_active"] = true
	}

	cur, err := db.ServicesCollection.Find(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(r.Context())

	services := []models.OptionalService{}
	for cur.Next(r.Context()) {
		var s models.OptionalService
		if err := cur.Decode(&s); err == nil {
			services = append(services, s)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, services)
}

func UpdateService(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		IsActive    *bool    `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	set := bson.M{"updated_at": time.Now()}
	if input.Name != nil {
		set["name"] = *input.Name
		set["name_lower"] = strings.ToLower(*input.Name)
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Price cannot be negative")
			return
		}
		set["price"] = *input.Price
	}
	if input.IsActive != nil {
		set["is_active"] = *input.IsActive
	}

	res, err := db.ServicesCollection.UpdateOne(r.Context(),
		bson.M{"service_id": ps.ByName("serviceid")}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "A service with this name already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Service not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Service updated", nil)
}

// DeleteService removes a catalog service. Services referenced by historical
// bookings are deactivated instead so price_applied rows keep a valid parent.
func DeleteService(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	serviceID := ps.ByName("serviceid")

	refs, err := db.BookingServicesCollection.CountDocuments(r.Context(), bson.M{"service_id": serviceID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	if refs > 0 {
		res, err := db.ServicesCollection.UpdateOne(r.Context(),
			bson.M{"service_id": serviceID},
			bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now()}})
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}
		if res.MatchedCount == 0 {
			utils.RespondWithError(w, http.StatusNotFound, "Service not found")
			return
		}
		utils.SendResponse(w, http.StatusOK, nil, "Service deactivated (referenced by bookings)", nil)
		return
	}

	res, err := db.ServicesCollection.DeleteOne(r.Context(), bson.M{"service_id": serviceID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Service not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Service deleted", nil)
}
