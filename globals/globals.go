package globals

import (
	"context"
	"os"
	"sync"
)

var (
	jwtSecret     []byte
	jwtSecretOnce sync.Once
)

// JwtSecret resolves the signing key on first use, not at package init, so
// a JWT_SECRET loaded from .env by godotenv is picked up.
func JwtSecret() []byte {
	jwtSecretOnce.Do(func() {
		jwtSecret = []byte(getenv("JWT_SECRET", "change_me"))
	})
	return jwtSecret
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type ContextKey string

const StaffIDKey ContextKey = "staffId"
const RoleKey ContextKey = "role"

var Ctx = context.Background()
