package leads

import (
	"testing"

	"ziyarah/models"
)

func TestMergeCustomerFields(t *testing.T) {
	customer := models.Customer{
		CustomerID: "cu1",
		Name:       "Old Name",
		Phone:      "111",
		Address:    "Old Street 1",
	}
	lead := models.Lead{
		LeadID: "ld1",
		Name:   "New Name",
		Phone:  "222",
	}

	MergeCustomerFields(&customer, lead)

	if customer.Name != "New Name" || customer.Phone != "222" {
		t.Fatalf("lead fields must win: %+v", customer)
	}
	if customer.Address != "Old Street 1" {
		t.Fatal("fields absent from the lead must survive")
	}
	if customer.LeadID != "ld1" {
		t.Fatalf("lead link not set: %q", customer.LeadID)
	}
}

func TestMergeCustomerFieldsEmptyLeadKeepsCustomer(t *testing.T) {
	customer := models.Customer{Name: "Keep Me", Phone: "111", LeadID: "ld0"}
	MergeCustomerFields(&customer, models.Lead{LeadID: "ld9"})

	if customer.Name != "Keep Me" || customer.Phone != "111" {
		t.Fatalf("empty lead fields overwrote customer: %+v", customer)
	}
	if customer.LeadID != "ld0" {
		t.Fatal("existing lead link must not be replaced")
	}
}
