package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"ziyarah/db"
	"ziyarah/globals"
	"ziyarah/middleware"
	"ziyarah/models"
	"ziyarah/rdx"
	"ziyarah/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

func tokenTTL() time.Duration {
	if v := os.Getenv("JWT_EXPIRE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return 12 * time.Hour
}

func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Username == "" || input.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	var staff models.Staff
	err := db.StaffCollection.FindOne(context.TODO(), bson.M{"username": input.Username}).Decode(&staff)
	if err != nil {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}
	if !staff.IsActive {
		http.Error(w, "Account deactivated", http.StatusForbidden)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(input.Password)); err != nil {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	var role models.Role
	if err := db.RolesCollection.FindOne(context.TODO(), bson.M{"role_id": staff.RoleID}).Decode(&role); err != nil {
		http.Error(w, "Role lookup failed", http.StatusInternalServerError)
		return
	}

	tokenString, err := generateToken(staff, role.RoleName)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	_, err = db.StaffCollection.UpdateOne(
		context.TODO(),
		bson.M{"staff_id": staff.StaffID},
		bson.M{"$set": bson.M{"last_login": time.Now()}},
	)
	if err != nil {
		log.Printf("last_login update failed for %s: %v", staff.StaffID, err)
	}

	if err := rdx.RdxHset("tokki", staff.StaffID, tokenString); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    tokenString,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(tokenTTL()),
	})

	utils.SendResponse(w, http.StatusOK, map[string]string{
		"token":    tokenString,
		"staff_id": staff.StaffID,
		"role":     role.RoleName,
	}, "Login successful", nil)
}

func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	staffID := middleware.StaffIDFromContext(r.Context())
	if staffID == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	if _, err := rdx.RdxHdel("tokki", staffID); err != nil {
		log.Printf("Error removing token from Redis: %v", err)
	}

	http.SetCookie(w, &http.Cookie{Name: "token", Value: "", Path: "/", MaxAge: -1})
	utils.SendResponse(w, http.StatusOK, nil, "Logged out", nil)
}

func RefreshToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tokenString := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(tokenTTL()))
	claims.IssuedAt = jwt.NewNumericDate(time.Now())
	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	newTokenString, err := newToken.SignedString(globals.JwtSecret())
	if err != nil {
		http.Error(w, "Failed to refresh token", http.StatusInternalServerError)
		return
	}

	_ = rdx.RdxHset("tokki", claims.StaffID, newTokenString)

	utils.SendResponse(w, http.StatusOK, map[string]string{"token": newTokenString}, "Token refreshed", nil)
}

func generateToken(staff models.Staff, roleName string) (string, error) {
	claims := &middleware.Claims{
		Username: staff.Username,
		StaffID:  staff.StaffID,
		Role:     roleName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL())),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret())
}
