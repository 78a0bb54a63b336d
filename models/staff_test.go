package models

import "testing"

func TestRoleCan(t *testing.T) {
	accountant := Role{
		RoleName:       RoleAccountant,
		ManagePayments: true,
		ManageInvoices: true,
	}

	if !accountant.Can(CapManagePayments) {
		t.Fatal("accountant must manage payments")
	}
	if !accountant.Can(CapManageInvoices) {
		t.Fatal("accountant must manage invoices")
	}
	if accountant.Can(CapManageUsers) {
		t.Fatal("accountant must not manage users")
	}
	if accountant.Can(CapAssignGuides) {
		t.Fatal("accountant must not assign guides")
	}
	if accountant.Can("made_up_capability") {
		t.Fatal("unknown capabilities must always be denied")
	}
}

// The invoice read routes admit manage_invoices OR manage_bookings, so both
// the accountant and the sales agent reach them while neither needs the
// other's flag.
func TestRoleCanAnyFinanceReads(t *testing.T) {
	accountant := Role{
		RoleName:        RoleAccountant,
		ManagePayments:  true,
		ManageInvoices:  true,
		GenerateReports: true,
	}
	agent := Role{
		RoleName:       RoleSalesAgent,
		ManageLeads:    true,
		ManageBookings: true,
	}

	invoiceRead := []string{CapManageInvoices, CapManageBookings}

	if accountant.Can(CapManageBookings) {
		t.Fatal("accountant must not manage bookings")
	}
	if !accountant.CanAny(invoiceRead...) {
		t.Fatal("accountant must reach the invoice read surface")
	}
	if !agent.CanAny(invoiceRead...) {
		t.Fatal("sales agent must reach the invoice read surface")
	}
	if !accountant.CanAny(CapManagePayments, CapManageBookings) {
		t.Fatal("accountant must reach the payment summary")
	}
	if (Role{RoleName: RoleOperation}).CanAny() {
		t.Fatal("empty capability list must deny")
	}
}

func TestRoleCanCoversEveryCapability(t *testing.T) {
	all := Role{
		ManageUsers: true, ManageLeads: true, ManageBookings: true,
		ManagePackages: true, ManagePayments: true, GenerateReports: true,
		AssignGuides: true, UpdateTravelProgress: true, ManageInvoices: true,
	}
	caps := []string{
		CapManageUsers, CapManageLeads, CapManageBookings, CapManagePackages,
		CapManagePayments, CapGenerateReports, CapAssignGuides,
		CapUpdateTravelProgress, CapManageInvoices,
	}
	for _, c := range caps {
		if !all.Can(c) {
			t.Errorf("capability %s not mapped to its flag", c)
		}
	}
}
