package bookings

import (
	"testing"

	"ziyarah/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestLeadIDsOf(t *testing.T) {
	cases := []struct {
		name  string
		leads []models.Lead
		want  []string
	}{
		{"two leads", []models.Lead{{LeadID: "ld1"}, {LeadID: "ld2"}}, []string{"ld1", "ld2"}},
		{"blank id skipped", []models.Lead{{LeadID: "ld1"}, {}}, []string{"ld1"}},
		{"no leads", []models.Lead{}, []string{}},
	}

	for _, tc := range cases {
		got := leadIDsOf(tc.leads)
		if len(got) != len(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
			}
		}
	}
}

func TestCustomersOfLeads(t *testing.T) {
	if got := customersOfLeads([]string{}); got != nil {
		t.Fatalf("agent with no leads must not produce a customer query, got %v", got)
	}

	filter := customersOfLeads([]string{"ld1", "ld2"})
	in, ok := filter["lead_id"].(bson.M)
	if !ok {
		t.Fatalf("expected lead_id constraint, got %v", filter)
	}
	ids, ok := in["$in"].([]string)
	if !ok || len(ids) != 2 || ids[0] != "ld1" || ids[1] != "ld2" {
		t.Fatalf("expected $in over the lead ids, got %v", in)
	}
}

func TestAgentScope(t *testing.T) {
	scope := AgentScope([]string{"cu1", "cu3"})
	ids, ok := scope["$in"].([]string)
	if !ok || len(ids) != 2 {
		t.Fatalf("expected $in over two customer ids, got %v", scope)
	}

	// An agent who owns nothing must see nothing, not everything.
	empty := AgentScope(nil)
	ids, ok = empty["$in"].([]string)
	if !ok {
		t.Fatalf("expected $in constraint, got %v", empty)
	}
	if len(ids) != 0 {
		t.Fatalf("empty scope must match no bookings, got %v", ids)
	}
}
