package models

import "time"

// Role names form a closed set; capability flags are the source of truth
// for route authorization.
const (
	RoleAdmin      = "Admin"
	RoleSalesAgent = "Sales Agent"
	RoleOperation  = "Operation Team"
	RoleAccountant = "Accountant"
)

// Capability identifiers used by the route gate.
const (
	CapManageUsers          = "manage_users"
	CapManageLeads          = "manage_leads"
	CapManageBookings       = "manage_bookings"
	CapManagePackages       = "manage_packages"
	CapManagePayments       = "manage_payments"
	CapGenerateReports      = "generate_reports"
	CapAssignGuides         = "assign_guides"
	CapUpdateTravelProgress = "update_travel_progress"
	CapManageInvoices       = "manage_invoices"
)

type Role struct {
	RoleID               string    `json:"role_id" bson:"role_id"`
	RoleName             string    `json:"role_name" bson:"role_name"`
	ManageUsers          bool      `json:"manage_users" bson:"manage_users"`
	ManageLeads          bool      `json:"manage_leads" bson:"manage_leads"`
	ManageBookings       bool      `json:"manage_bookings" bson:"manage_bookings"`
	ManagePackages       bool      `json:"manage_packages" bson:"manage_packages"`
	ManagePayments       bool      `json:"manage_payments" bson:"manage_payments"`
	GenerateReports      bool      `json:"generate_reports" bson:"generate_reports"`
	AssignGuides         bool      `json:"assign_guides" bson:"assign_guides"`
	UpdateTravelProgress bool      `json:"update_travel_progress" bson:"update_travel_progress"`
	ManageInvoices       bool      `json:"manage_invoices" bson:"manage_invoices"`
	CreatedAt            time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" bson:"updated_at"`
}

// Can reports whether the role carries the given capability flag.
func (r Role) Can(capability string) bool {
	switch capability {
	case CapManageUsers:
		return r.ManageUsers
	case CapManageLeads:
		return r.ManageLeads
	case CapManageBookings:
		return r.ManageBookings
	case CapManagePackages:
		return r.ManagePackages
	case CapManagePayments:
		return r.ManagePayments
	case CapGenerateReports:
		return r.GenerateReports
	case CapAssignGuides:
		return r.AssignGuides
	case CapUpdateTravelProgress:
		return r.UpdateTravelProgress
	case CapManageInvoices:
		return r.ManageInvoices
	}
	return false
}

// CanAny reports whether the role carries at least one of the given flags.
func (r Role) CanAny(capabilities ...string) bool {
	for _, c := range capabilities {
		if r.Can(c) {
			return true
		}
	}
	return false
}

type Staff struct {
	StaffID   string    `json:"staff_id" bson:"staff_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Username  string    `json:"username" bson:"username"`
	Password  string    `json:"password,omitempty" bson:"password"`
	IsActive  bool      `json:"is_active" bson:"is_active"`
	RoleID    string    `json:"role_id" bson:"role_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
