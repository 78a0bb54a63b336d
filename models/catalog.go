package models

import "time"

type Package struct {
	PackageID    string    `json:"package_id" bson:"package_id"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	BasePrice    float64   `json:"base_price" bson:"base_price"`
	DurationDays int       `json:"duration_days" bson:"duration_days"`
	Inclusions   string    `json:"inclusions,omitempty" bson:"inclusions,omitempty"`
	Exclusions   string    `json:"exclusions,omitempty" bson:"exclusions,omitempty"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	BrochurePath string    `json:"brochure_path,omitempty" bson:"brochure_path,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

type PackageItinerary struct {
	ItineraryID    string    `json:"itinerary_id" bson:"itinerary_id"`
	PackageID      string    `json:"package_id" bson:"package_id"`
	DayNumber      int       `json:"day_number" bson:"day_number"`
	Title          string    `json:"title" bson:"title"`
	Description    string    `json:"description,omitempty" bson:"description,omitempty"`
	Accommodation  string    `json:"accommodation,omitempty" bson:"accommodation,omitempty"`
	Meals          string    `json:"meals,omitempty" bson:"meals,omitempty"`
	TransportNotes string    `json:"transport_notes,omitempty" bson:"transport_notes,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// OptionalService name is unique case-insensitively; NameLower backs the index.
type OptionalService struct {
	ServiceID   string    `json:"service_id" bson:"service_id"`
	Name        string    `json:"name" bson:"name"`
	NameLower   string    `json:"-" bson:"name_lower"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

type Guide struct {
	GuideID   string    `json:"guide_id" bson:"guide_id"`
	Name      string    `json:"name" bson:"name"`
	Contact   string    `json:"contact,omitempty" bson:"contact,omitempty"`
	Languages string    `json:"languages,omitempty" bson:"languages,omitempty"`
	IsActive  bool      `json:"is_active" bson:"is_active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

type Transport struct {
	TransportID string    `json:"transport_id" bson:"transport_id"`
	Name        string    `json:"name" bson:"name"`
	Type        string    `json:"type,omitempty" bson:"type,omitempty"`
	Contact     string    `json:"contact,omitempty" bson:"contact,omitempty"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
