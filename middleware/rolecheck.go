package middleware

import (
	"context"
	"net/http"

	"ziyarah/db"
	"ziyarah/globals"
	"ziyarah/models"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// LoadPrincipal re-reads the staff record and its role from storage. Role is
// never embedded in the token or the staff document, so flag changes take
// effect on the next request.
func LoadPrincipal(ctx context.Context, staffID string) (*models.Staff, *models.Role, error) {
	var staff models.Staff
	if err := db.StaffCollection.FindOne(ctx, bson.M{"staff_id": staffID}).Decode(&staff); err != nil {
		return nil, nil, err
	}

	var role models.Role
	if err := db.RolesCollection.FindOne(ctx, bson.M{"role_id": staff.RoleID}).Decode(&role); err != nil {
		return nil, nil, err
	}
	return &staff, &role, nil
}

// WithCapability gates the route on a role capability flag. It runs after
// Authenticate and performs its own staff+role lookup per request.
func WithCapability(capability string, next httprouter.Handle) httprouter.Handle {
	return WithAnyCapability([]string{capability}, next)
}

// WithAnyCapability admits roles carrying any one of the listed flags.
// Shared read surfaces (invoice reads, payment summaries) are reachable by
// both the finance roles and the booking-owning roles this way; handlers
// still apply their own per-role scoping.
func WithAnyCapability(capabilities []string, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		staffID := StaffIDFromContext(r.Context())
		if staffID == "" {
			http.Error(w, "Missing token", http.StatusUnauthorized)
			return
		}

		staff, role, err := LoadPrincipal(r.Context(), staffID)
		if err != nil {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		if !staff.IsActive {
			http.Error(w, "Account deactivated", http.StatusForbidden)
			return
		}
		if !role.CanAny(capabilities...) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), globals.RoleKey, role.RoleName)
		next(w, r.WithContext(ctx), ps)
	}
}

// RoleNameFromContext returns the role name resolved by WithCapability, or "".
func RoleNameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(globals.RoleKey).(string)
	return name
}
