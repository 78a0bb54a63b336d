package models

import "time"

var LeadSources = []string{"website", "referral", "social_media", "walk_in", "other"}
var LeadStatuses = []string{"new", "contacted", "qualified", "converted", "lost"}

type Lead struct {
	LeadID     string    `json:"lead_id" bson:"lead_id"`
	Name       string    `json:"name" bson:"name"`
	Email      string    `json:"email" bson:"email"`
	Phone      string    `json:"phone" bson:"phone"`
	Source     string    `json:"source" bson:"source"`
	Status     string    `json:"status" bson:"status"`
	StaffID    string    `json:"staff_id" bson:"staff_id"`
	CustomerID string    `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	Notes      string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

type Customer struct {
	CustomerID   string    `json:"customer_id" bson:"customer_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone" bson:"phone"`
	Address      string    `json:"address,omitempty" bson:"address,omitempty"`
	Nationality  string    `json:"nationality,omitempty" bson:"nationality,omitempty"`
	IsVIP        bool      `json:"is_vip" bson:"is_vip"`
	SpecialNotes string    `json:"special_notes,omitempty" bson:"special_notes,omitempty"`
	LeadID       string    `json:"lead_id,omitempty" bson:"lead_id,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
