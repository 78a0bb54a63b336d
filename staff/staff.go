package staff

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"ziyarah/db"
	"ziyarah/models"
	"ziyarah/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

func CreateStaff(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
		RoleID   string `json:"role_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Name == "" || input.Email == "" || input.Username == "" || input.Password == "" || input.RoleID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	var role models.Role
	if err := db.RolesCollection.FindOne(r.Context(), bson.M{"role_id": input.RoleID}).Decode(&role); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown role")
		return
	}

	count, err := db.StaffCollection.CountDocuments(r.Context(), bson.M{
		"$or": []bson.M{{"email": input.Email}, {"username": input.Username}},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if count > 0 {
		utils.RespondWithError(w, http.StatusConflict, "Email or username already in use")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not process password")
		return
	}

	now := time.Now()
	member := models.Staff{
		StaffID:   "st" + utils.GenerateRandomString(10),
		Name:      input.Name,
		Email:     input.Email,
		Username:  input.Username,
		Password:  string(hashed),
		IsActive:  true,
		RoleID:    input.RoleID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := db.StaffCollection.InsertOne(r.Context(), member); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create staff")
		return
	}

	member.Password = ""
	utils.SendResponse(w, http.StatusCreated, member, "Staff created", nil)
}

func ListStaff(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cur, err := db.StaffCollection.Find(r.Context(), bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(r.Context())

	members := []models.Staff{}
	for cur.Next(r.Context()) {
		var m models.Staff
		if err := cur.Decode(&m); err == nil {
			m.Password = ""
			members = append(members, m)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, members)
}

func GetStaff(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var m models.Staff
	err := db.StaffCollection.FindOne(r.Context(), bson.M{"staff_id": ps.ByName("staffid")}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Staff not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	m.Password = ""
	utils.RespondWithJSON(w, http.StatusOK, m)
}

func UpdateStaff(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
		RoleID   *string `json:"role_id"`
		IsActive *bool   `json:"is_active"`
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
	if input.Password != nil && *input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Could not process password")
			return
		}
		set["password"] = string(hashed)
	}
	if input.RoleID != nil {
		if err := db.RolesCollection.FindOne(r.Context(), bson.M{"role_id": *input.RoleID}).Err(); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown role")
			return
		}
		set["role_id"] = *input.RoleID
	}
	if input.IsActive != nil {
		set["is_active"] = *input.IsActive
	}

	res, err := db.StaffCollection.UpdateOne(r.Context(),
		bson.M{"staff_id": ps.ByName("staffid")}, bson.M{"$set": set})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Staff not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Staff updated", nil)
}

// EnsureDefaultRoles seeds the closed role set with its default capability
// flags when the roles collection is empty.
func EnsureDefaultRoles(ctx context.Context) error {
	count, err := db.RolesCollection.CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return err
	}

	now := time.Now()
	defaults := []interface{}{
		models.Role{
			RoleID: "rl" + utils.GenerateRandomString(8), RoleName: models.RoleAdmin,
			ManageUsers: true, ManageLeads: true, ManageBookings: true,
			ManagePackages: true, ManagePayments: true, GenerateReports: true,
			AssignGuides: true, UpdateTravelProgress: true, ManageInvoices: true,
			CreatedAt: now, UpdatedAt: now,
		},
		models.Role{
			RoleID: "rl" + utils.GenerateRandomString(8), RoleName: models.RoleSalesAgent,
			ManageLeads: true, ManageBookings: true,
			CreatedAt: now, UpdatedAt: now,
		},
		models.Role{
			RoleID: "rl" + utils.GenerateRandomString(8), RoleName: models.RoleOperation,
			ManageBookings: true, ManagePackages: true, AssignGuides: true,
			UpdateTravelProgress: true, ManageInvoices: true, GenerateReports: true,
			CreatedAt: now, UpdatedAt: now,
		},
		models.Role{
			RoleID: "rl" + utils.GenerateRandomString(8), RoleName: models.RoleAccountant,
			ManagePayments: true, ManageInvoices: true, GenerateReports: true,
			CreatedAt: now, UpdatedAt: now,
		},
	}
	_, err = db.RolesCollection.InsertMany(ctx, defaults)
	return err
}

func ListRoles(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cur, err := db.RolesCollection.Find(r.Context(), bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(r.Context())

	roles := []models.Role{}
	for cur.Next(r.Context()) {
		var role models.Role
		if err := cur.Decode(&role); err == nil {
			roles = append(roles, role)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, roles)
}

// UpdateRole edits capability flags only; role names are a closed set.
func UpdateRole(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var flags map[string]bool
	if err := json.NewDecoder(r.Body).Decode(&flags); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	set := bson.M{"updated_at": time.Now()}
	for _, cap := range []string{
		models.CapManageUsers, models.CapManageLeads, models.CapManageBookings,
		models.CapManagePackages, models.CapManagePayments, models.CapGenerateReports,
		models.CapAssignGuides, models.CapUpdateTravelProgress, models.CapManageInvoices,
	} {
		if v, ok := flags[cap]; ok {
			set[cap] = v
		}
	}

	res, err := db.RolesCollection.UpdateOne(r.Context(),
		bson.M{"role_id": ps.ByName("roleid")}, bson.M{"$set": set})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Role not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Role updated", nil)
}
