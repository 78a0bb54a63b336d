package bookings

import (
	"testing"

	"ziyarah/models"
)

func TestValidateCreateInput(t *testing.T) {
	valid := createBookingInput{
		CustomerID:      "cu123",
		PackageID:       "pk123",
		TravelStartDate: "2025-03-01",
		TravelEndDate:   "2025-03-10",
		NumTravelers:    2,
	}
	if err := validateCreateInput(valid); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*createBookingInput)
	}{
		{"missing customer", func(in *createBookingInput) { in.CustomerID = "" }},
		{"missing package", func(in *createBookingInput) { in.PackageID = "" }},
		{"missing start date", func(in *createBookingInput) { in.TravelStartDate = "" }},
		{"end before start", func(in *createBookingInput) { in.TravelEndDate = "2025-02-01" }},
		{"zero travelers", func(in *createBookingInput) { in.NumTravelers = 0 }},
		{"bad package type", func(in *createBookingInput) { in.PackageType = "Luxury" }},
	}
	for _, tc := range cases {
		in := valid
		tc.mutate(&in)
		if err := validateCreateInput(in); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}

	in := valid
	in.PackageType = "Premium"
	if err := validateCreateInput(in); err != nil {
		t.Errorf("Premium package type rejected: %v", err)
	}
}

func TestPriceApplied(t *testing.T) {
	got, err := priceApplied(200, 0)
	if err != nil || got != 200 {
		t.Fatalf("no discount: got %v, %v", got, err)
	}

	got, err = priceApplied(200, 50)
	if err != nil || got != 150 {
		t.Fatalf("discount: got %v, %v", got, err)
	}

	if _, err := priceApplied(200, -10); err == nil {
		t.Fatal("negative discount accepted")
	}
	if _, err := priceApplied(200, 250); err == nil {
		t.Fatal("discount above price accepted")
	}

	// a full discount zeroes the service price but is still legal
	got, err = priceApplied(200, 200)
	if err != nil || got != 0 {
		t.Fatalf("full discount: got %v, %v", got, err)
	}
}

func TestInvoiceAmount(t *testing.T) {
	services := []models.BookingService{
		{PriceApplied: 150},
		{PriceApplied: 75.50},
	}
	if got := invoiceAmount(1000, services); got != 1225.50 {
		t.Fatalf("expected 1225.50, got %v", got)
	}
	if got := invoiceAmount(1000, nil); got != 1000 {
		t.Fatalf("no services: expected 1000, got %v", got)
	}
}
