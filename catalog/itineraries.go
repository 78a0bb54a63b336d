package catalog

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

func AddItineraryDay(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	packageID := ps.ByName("packageid")
	if err := db.PackagesCollection.FindOne(r.Context(), bson.M{"package_id": packageID}).Err(); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Package not found")
		return
	}

	var day models.PackageItinerary
	if err := json.NewDecoder(r.Body).Decode(&day); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if day.DayNumber < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Day number must be at least 1")
		return
	}
	if day.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}

	now := time.Now()
	day.ItineraryID = "it" + utils.GenerateRandomString(10)
	day.PackageID = packageID
	day.CreatedAt = now
	day.UpdatedAt = now

	if _, err := db.ItinerariesCollection.InsertOne(r.Context(), day); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "Day number already exists for this package")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add itinerary day")
		return
	}
	utils.SendResponse(w, http.StatusCreated, day, "Itinerary day added", nil)
}

func ListItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	opts := options.Find().SetSort(bson.M{"day_number": 1})
	cur, err := db.ItinerariesCollection.Find(r.Context(),
		bson.M{"package_id": ps.ByName("packageid")}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(r.Context())

	days := []models.PackageItinerary{}
	for cur.Next(r.Context()) {
		var d models.PackageItinerary
		if err := cur.Decode(&d); err == nil {
			days = append(days, d)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, days)
}

func UpdateItineraryDay(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Title          *string `json:"title"`
		Description    *string `json:"description"`
		Accommodation  *string `json:"accommodation"`
		Meals          *string `json:"meals"`
		TransportNotes *string `json:"transport_notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	set := bson.M{"updated_at": time.Now()}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Accommodation != nil {
		set["accommodation"] = *input.Accommodation
	}
	if input.Meals != nil {
		set["meals"] = *input.Meals
	}
	if input.TransportNotes != nil {
		set["transport_notes"] = *input.TransportNotes
	}

	res, err := db.ItinerariesCollection.UpdateOne(r.Context(),
		bson.M{"itinerary_id": ps.ByName("itineraryid"), "package_id": ps.ByName("packageid")},
		bson.M{"$set": set})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary day not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Itinerary day updated", nil)
}

func DeleteItineraryDay(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	res, err := db.ItinerariesCollection.DeleteOne(r.Context(),
		bson.M{"itinerary_id": ps.ByName("itineraryid"), "package_id": ps.ByName("packageid")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary day not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Itinerary day removed", nil)
}
