package models

import "time"

const (
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

var BookingStatuses = []string{BookingConfirmed, BookingCompleted, BookingCancelled}

var PackageTypes = []string{"Premium", "Deluxe", "Exclusive"}

// Travel progress is tracked independently of booking status; the only
// coupling is that a cancelled travel status forces a cancelled booking.
var TravelStatuses = []string{
	"Not Started",
	"On the Way",
	"At Destination",
	"Return Journey",
	"Completed",
	"Delayed",
	"Cancelled",
}

type Booking struct {
	BookingID           string    `json:"booking_id" bson:"booking_id"`
	CustomerID          string    `json:"customer_id" bson:"customer_id"`
	PackageID           string    `json:"package_id" bson:"package_id"`
	BookingDate         time.Time `json:"booking_date" bson:"booking_date"`
	TravelStartDate     string    `json:"travel_start_date" bson:"travel_start_date"`
	TravelEndDate       string    `json:"travel_end_date" bson:"travel_end_date"`
	NumTravelers        int       `json:"num_travelers" bson:"num_travelers"`
	Status              string    `json:"status" bson:"status"`
	PackageType         string    `json:"package_type" bson:"package_type"`
	TravelStatus        string    `json:"travel_status" bson:"travel_status"`
	GuideID             string    `json:"guide_id,omitempty" bson:"guide_id,omitempty"`
	TransportID         string    `json:"transport_id,omitempty" bson:"transport_id,omitempty"`
	Destination         string    `json:"destination,omitempty" bson:"destination,omitempty"`
	SpecialRequirements string    `json:"special_requirements,omitempty" bson:"special_requirements,omitempty"`
	CreatedAt           time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" bson:"updated_at"`
}

// BookingService freezes the catalog price at attach time so later catalog
// edits never alter historical bookings.
type BookingService struct {
	BookingServiceID string    `json:"booking_service_id" bson:"booking_service_id"`
	BookingID        string    `json:"booking_id" bson:"booking_id"`
	ServiceID        string    `json:"service_id" bson:"service_id"`
	ServiceName      string    `json:"service_name" bson:"service_name"`
	PriceApplied     float64   `json:"price_applied" bson:"price_applied"`
	Discount         float64   `json:"discount,omitempty" bson:"discount,omitempty"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}
