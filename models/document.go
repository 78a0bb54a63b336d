package models

import "time"

var DocumentTypes = []string{"passport", "visa", "id_proof", "ticket", "other"}

type Document struct {
	DocumentID     string    `json:"document_id" bson:"document_id"`
	CustomerID     string    `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	BookingID      string    `json:"booking_id,omitempty" bson:"booking_id,omitempty"`
	TravelerName   string    `json:"traveler_name" bson:"traveler_name"`
	DocumentType   string    `json:"document_type" bson:"document_type"`
	FilePath       string    `json:"file_path" bson:"file_path"`
	ThumbPath      string    `json:"thumb_path,omitempty" bson:"thumb_path,omitempty"`
	UploadDate     time.Time `json:"upload_date" bson:"upload_date"`
	IsMainCustomer bool      `json:"is_main_customer" bson:"is_main_customer"`
}

var CommLogTypes = []string{"email", "call", "meeting", "message", "other"}

type CommunicationLog struct {
	LogID      string    `json:"log_id" bson:"log_id"`
	LeadID     string    `json:"lead_id,omitempty" bson:"lead_id,omitempty"`
	CustomerID string    `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	StaffID    string    `json:"staff_id" bson:"staff_id"`
	Type       string    `json:"type" bson:"type"`
	Content    string    `json:"content" bson:"content"`
	Status     string    `json:"status,omitempty" bson:"status,omitempty"`
	LogDate    time.Time `json:"log_date" bson:"log_date"`
}
