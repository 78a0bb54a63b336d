package globals

import "testing"

// The secret must be read after .env loading has run, not at package init.
// Setting the variable here, well after init, must still take effect on the
// first call.
func TestJwtSecretResolvedOnFirstUse(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-dotenv")

	if got := string(JwtSecret()); got != "from-dotenv" {
		t.Fatalf("secret resolved too early: got %q", got)
	}
	// Later changes are ignored; the resolved key is stable for the process.
	t.Setenv("JWT_SECRET", "rotated")
	if got := string(JwtSecret()); got != "from-dotenv" {
		t.Fatalf("secret must be stable once resolved, got %q", got)
	}
}
