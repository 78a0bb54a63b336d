package reports

import (
	"net/http/httptest"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestDateRangeFilterStringDates(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/reports/bookings.xlsx?from=2025-01-01&to=2025-06-30&status=confirmed", nil)
	filter := dateRangeFilter(r, "travel_start_date", false)

	rangeFilter, ok := filter["travel_start_date"].(bson.M)
	if !ok {
		t.Fatalf("missing range filter: %+v", filter)
	}
	if rangeFilter["$gte"] != "2025-01-01" || rangeFilter["$lte"] != "2025-06-30" {
		t.Fatalf("unexpected bounds: %+v", rangeFilter)
	}
	if filter["status"] != "confirmed" {
		t.Fatalf("status filter missing: %+v", filter)
	}
}

func TestDateRangeFilterParsedDates(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/reports/payments.xlsx?from=2025-01-01", nil)
	filter := dateRangeFilter(r, "payment_date", true)

	rangeFilter, ok := filter["payment_date"].(bson.M)
	if !ok {
		t.Fatalf("missing range filter: %+v", filter)
	}
	from, ok := rangeFilter["$gte"].(time.Time)
	if !ok {
		t.Fatalf("expected time bound, got %T", rangeFilter["$gte"])
	}
	if from.Format("2006-01-02") != "2025-01-01" {
		t.Fatalf("wrong bound: %v", from)
	}
}

func TestDateRangeFilterEmpty(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/reports/bookings.xlsx", nil)
	filter := dateRangeFilter(r, "travel_start_date", false)
	if len(filter) != 0 {
		t.Fatalf("expected empty filter, got %+v", filter)
	}
}
