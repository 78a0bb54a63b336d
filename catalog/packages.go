package catalog

import (
	"encoding/json"
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

func CreatePackage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var pkg models.Package
	if err := json.NewDecoder(r.Body).Decode(&pkg); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if pkg.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if pkg.BasePrice < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Base price cannot be negative")
		return
	}
	if pkg.DurationDays < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Duration must be at least one day")
		return
	}

	now := time.Now()
	pkg.PackageID = "pk" + utils.GenerateRandomString(10)
	pkg.IsActive = true
	pkg.BrochurePath = ""
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	if _, err := db.PackagesCollection.InsertOne(r.Context(), pkg); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create package")
		return
	}
	utils.SendResponse(w, http.StatusCreated, pkg, "Package created", nil)
}

func ListPackages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if r.URL.Query().Get("active") == "true" {
		filter["is_active"] = true
	}

	cur, err := db.PackagesCollection.Find(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(r.Context())

	pkgs := []models.Package{}
	for cur.Next(r.Context()) {
		var p models.Package
		if err := cur.Decode(&p); err == nil {
			pkgs = append(pkgs, p)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, pkgs)
}

func GetPackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var p models.Package
	err := db.PackagesCollection.FindOne(r.Context(), bson.M{"package_id": ps.ByName("packageid")}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Package not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

func UpdatePackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Title        *string  `json:"title"`
		Description  *string  `json:"description"`
		BasePrice    *float64 `json:"base_price"`
		DurationDays *int     `json:"duration_days"`
		Inclusions   *string  `json:"inclusions"`
		Exclusions   *string  `json:"exclusions"`
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
	if input.BasePrice != nil {
		if *input.BasePrice < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Base price cannot be negative")
			return
		}
		set["base_price"] = *input.BasePrice
	}
	if input.DurationDays != nil {
		if *input.DurationDays < 1 {
			utils.RespondWithError(w, http.StatusBadRequest, "Duration must be at least one day")
			return
		}
		set["duration_days"] = *input.DurationDays
	}
	if input.Inclusions != nil {
		set["inclusions"] = *input.Inclusions
	}
	if input.Exclusions != nil {
		set["exclusions"] = *input.Exclusions
	}

	res, err := db.PackagesCollection.UpdateOne(r.Context(),
		bson.M{"package_id": ps.ByName("packageid")}, bson.M{"$set": set})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Package not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Package updated", nil)
}

// SetPackageStatus activates or deactivates a package. Inactive packages
// cannot be booked.
func SetPackageStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		IsActive *bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.IsActive == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "is_active is required")
		return
	}

	res, err := db.PackagesCollection.UpdateOne(r.Context(),
		bson.M{"package_id": ps.ByName("packageid")},
		bson.M{"$set": bson.M{"is_active": *input.IsActive, "updated_at": time.Now()}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Package not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Package status updated", nil)
}

// UploadBrochure stores a PDF/image brochure for the package.
func UploadBrochure(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	packageID := ps.ByName("packageid")
	if err := db.PackagesCollection.FindOne(r.Context(), bson.M{"package_id": packageID}).Err(); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Package not found")
		return
	}

	if err := r.ParseMultipartForm(filemgr.MaxUploadSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("brochure")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Brochure file is required")
		return
	}
	defer file.Close()

	path, err := filemgr.SaveUpload(file, header, filemgr.CatBrochure)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err = db.PackagesCollection.UpdateOne(r.Context(),
		bson.M{"package_id": packageID},
		bson.M{"$set": bson.M{"brochure_path": path, "updated_at": time.Now()}})
	if err != nil {
		filemgr.Remove(path, "")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save brochure")
		return
	}
	utils.SendResponse(w, http.StatusOK, map[string]string{"brochure_path": path}, "Brochure uploaded", nil)
}
