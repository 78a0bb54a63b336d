package commlogs

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
)

func CreateLog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var entry models.CommunicationLog
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if entry.LeadID == "" && entry.CustomerID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "A lead or customer reference is required")
		return
	}
	if !utils.Contains(models.CommLogTypes, entry.Type) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid log type")
		return
	}
	if entry.Content == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Content is required")
		return
	}

	entry.LogID = "cl" + utils.GenerateRandomString(10)
	entry.StaffID = middleware.StaffIDFromContext(r.Context())
	if entry.LogDate.IsZero() {
		entry.LogDate = time.Now()
	}

	if _, err := db.CommLogsCollection.InsertOne(r.Context(), entry); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create log")
		return
	}
	utils.SendResponse(w, http.StatusCreated, entry, "Log created", nil)
}

func ListLogs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if leadID := r.URL.Query().Get("lead_id"); leadID != "" {
		filter["lead_id"] = leadID
	}
	if customerID := r.URL.Query().Get("customer_id"); customerID != "" {
		filter["customer_id"] = customerID
	}
	if middleware.RoleNameFromContext(r.Context()) == models.RoleSalesAgent {
		filter["staff_id"] = middleware.StaffIDFromContext(r.Context())
	}

	cur, err := db.CommLogsCollection.Find(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(r.Context())

	logs := []models.CommunicationLog{}
	for cur.Next(r.Context()) {
		var l models.CommunicationLog
		if err := cur.Decode(&l); err == nil {
			logs = append(logs, l)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, logs)
}

func UpdateLog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Type    *string `json:"type"`
		Content *string `json:"content"`
		Status  *string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	set := bson.M{}
	if input.Type != nil {
		if !utils.Contains(models.CommLogTypes, *input.Type) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid log type")
			return
		}
		set["type"] = *input.Type
	}
	if input.Content != nil {
		set["content"] = *input.Content
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}
	if len(set) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	res, err := db.CommLogsCollection.UpdateOne(r.Context(),
		bson.M{"log_id": ps.ByName("logid")}, bson.M{"$set": set})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Log not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Log updated", nil)
}

func DeleteLog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	res, err := db.CommLogsCollection.DeleteOne(r.Context(), bson.M{"log_id": ps.ByName("logid")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Log not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Log deleted", nil)
}
