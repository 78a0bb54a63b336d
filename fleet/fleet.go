package fleet

import (
	"encoding/json"
	"net/http"
	"time"

	"ziyarah/db"
	"ziyarah/models"
	"ziyarah/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func CreateGuide(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var guide models.Guide
	if err := json.NewDecoder(r.Body).Decode(&guide); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if guide.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	now := time.Now()
	guide.GuideID = "gd" + utils.GenerateRandomString(10)
	guide.IsActive = true
	guide.CreatedAt = now
	guide.UpdatedAt = now

	if _, err := db.GuidesCollection.InsertOne(r.Context(), guide); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create guide")
		return
	}
	utils.SendResponse(w, http.StatusCreated, guide, "Guide created", nil)
}

func ListGuides(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if r.URL.Query().Get("active") == "true" {
		filter["is_active"] = true
	}

	cur, err := db.GuidesCollection.Find(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(r.Context())

	guides := []models.Guide{}
	for cur.Next(r.Context()) {
		var g models.Guide
		if err := cur.Decode(&g); err == nil {
			guides = append(guides, g)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, guides)
}

func SetGuideStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		IsActive *bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.IsActive == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "is_active is required")
		return
	}

	res, err := db.GuidesCollection.UpdateOne(r.Context(),
		bson.M{"guide_id": ps.ByName("guideid")},
		bson.M{"$set": bson.M{"is_active": *input.IsActive, "updated_at": time.Now()}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Guide not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Guide status updated", nil)
}

func CreateTransport(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var transport models.Transport
	if err := json.NewDecoder(r.Body).Decode(&transport); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if transport.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	now := time.Now()
	transport.TransportID = "tr" + utils.GenerateRandomString(10)
	transport.IsActive = true
	transport.CreatedAt = now
	transport.UpdatedAt = now

	if _, err := db.TransportsCollection.InsertOne(r.Context(), transport); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create transport")
		return
	}
	utils.SendResponse(w, http.StatusCreated, transport, "Transport created", nil)
}

func ListTransports(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if r.URL.Query().Get("active") == "true" {
		filter["is_active"] = true
	}

	cur, err := db.TransportsCollection.Find(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(r.Context())

	transports := []models.Transport{}
	for cur.Next(r.Context()) {
		var t models.Transport
		if err := cur.Decode(&t); err == nil {
			transports = append(transports, t)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, transports)
}

func SetTransportStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		IsActive *bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.IsActive == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "is_active is required")
		return
	}

	res, err := db.TransportsCollection.UpdateOne(r.Context(),
		bson.M{"transport_id": ps.ByName("transportid")},
		bson.M{"$set": bson.M{"is_active": *input.IsActive, "updated_at": time.Now()}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Transport not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Transport status updated", nil)
}
