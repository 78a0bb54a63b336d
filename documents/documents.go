package documents

import (
	"net/http"
	"time"

	"ziyarah/db"
	"ziyarah/filemgr"
	"ziyarah/models"
	"ziyarah/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UploadDocument stores one traveler identity document against a booking.
// document_type must be one of the declared enum values; free-text types
// from upload metadata are rejected.
func UploadDocument(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("bookingid")
	ctx := r.Context()

	if err := db.BookingsCollection.FindOne(ctx, bson.M{"booking_id": bookingID}).Err(); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	if err := r.ParseMultipartForm(filemgr.MaxUploadSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	travelerName := r.FormValue("traveler_name")
	docType := r.FormValue("document_type")
	customerID := r.FormValue("customer_id")
	isMain := r.FormValue("is_main_customer") == "true"

	if travelerName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "traveler_name is required")
		return
	}
	if !utils.Contains(models.DocumentTypes, docType) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid document type")
		return
	}
	if customerID != "" {
		if err := db.CustomersCollection.FindOne(ctx, bson.M{"customer_id": customerID}).Err(); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown customer")
			return
		}
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Document file is required")
		return
	}
	defer file.Close()

	path, err := filemgr.SaveUpload(file, header, filemgr.CatDocument)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	thumbPath, err := filemgr.SaveThumbnail(path)
	if err != nil {
		thumbPath = "" // thumbnail failure is not fatal
	}

	doc := models.Document{
		DocumentID:     "dc" + utils.GenerateRandomString(10),
		CustomerID:     customerID,
		BookingID:      bookingID,
		TravelerName:   travelerName,
		DocumentType:   docType,
		FilePath:       path,
		ThumbPath:      thumbPath,
		UploadDate:     time.Now(),
		IsMainCustomer: isMain,
	}

	if _, err := db.DocumentsCollection.InsertOne(ctx, doc); err != nil {
		filemgr.Remove(path, thumbPath)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save document")
		return
	}
	utils.SendResponse(w, http.StatusCreated, doc, "Document uploaded", nil)
}

func ListDocuments(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	cur, err := db.DocumentsCollection.Find(r.Context(), bson.M{"booking_id": ps.ByName("bookingid")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(r.Context())

	docs := []models.Document{}
	for cur.Next(r.Context()) {
		var d models.Document
		if err := cur.Decode(&d); err == nil {
			docs = append(docs, d)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, docs)
}

func DeleteDocument(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var doc models.Document
	err := db.DocumentsCollection.FindOneAndDelete(r.Context(),
		bson.M{"document_id": ps.ByName("documentid")}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Document not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	filemgr.Remove(doc.FilePath, doc.ThumbPath)
	utils.SendResponse(w, http.StatusOK, nil, "Document deleted", nil)
}
