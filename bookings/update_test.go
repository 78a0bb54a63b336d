package bookings

import (
	"testing"

	"ziyarah/models"
)

func TestTravelStatusUpdate(t *testing.T) {
	set, ok := travelStatusUpdate("on the way")
	if !ok {
		t.Fatal("case-insensitive match failed")
	}
	if set["travel_status"] != "On the Way" {
		t.Fatalf("expected canonical value, got %v", set["travel_status"])
	}
	if _, forced := set["status"]; forced {
		t.Fatal("non-cancel progress must not touch booking status")
	}

	set, ok = travelStatusUpdate("CANCELLED")
	if !ok {
		t.Fatal("cancelled not recognized")
	}
	if set["status"] != models.BookingCancelled {
		t.Fatalf("cancelled travel status must force booking status, got %v", set["status"])
	}

	if _, ok := travelStatusUpdate("teleported"); ok {
		t.Fatal("unknown travel status accepted")
	}
}
