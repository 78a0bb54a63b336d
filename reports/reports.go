package reports

import (
	"fmt"
	"net/http"
	"time"

	"ziyarah/db"
	"ziyarah/models"
	"ziyarah/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// dateRangeFilter builds a find filter from from/to/status query params.
// parseDates converts the bounds to time values for fields stored as
// BSON datetimes rather than date strings.
func dateRangeFilter(r *http.Request, field string, parseDates bool) bson.M {
	filter := bson.M{}
	rangeFilter := bson.M{}
	bound := func(raw string) interface{} {
		if !parseDates {
			return raw
		}
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil
		}
		return t
	}
	if from := r.URL.Query().Get("from"); from != "" {
		if v := bound(from); v != nil {
			rangeFilter["$gte"] = v
		}
	}
	if to := r.URL.Query().Get("to"); to != "" {
		if v := bound(to); v != nil {
			rangeFilter["$lte"] = v
		}
	}
	if len(rangeFilter) > 0 {
		filter[field] = rangeFilter
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}
	return filter
}

func writeWorkbook(w http.ResponseWriter, f *excelize.File, filename string) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if err := f.Write(w); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to write report")
	}
}

// BookingsReport exports bookings as an XLSX workbook.
func BookingsReport(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	cur, err := db.BookingsCollection.Find(ctx, dateRangeFilter(r, "travel_start_date", false))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(ctx)

	f := excelize.NewFile()
	sheet := "Bookings"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Booking ID", "Customer", "Package", "Start", "End", "Travelers", "Status", "Travel Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for cur.Next(ctx) {
		var b models.Booking
		if err := cur.Decode(&b); err != nil {
			continue
		}
		values := []any{b.BookingID, b.CustomerID, b.PackageID, b.TravelStartDate,
			b.TravelEndDate, b.NumTravelers, b.Status, b.TravelStatus}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	writeWorkbook(w, f, "bookings-report.xlsx")
}

// PaymentsReport exports payments with their booking and amount.
func PaymentsReport(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	cur, err := db.PaymentsCollection.Find(ctx, dateRangeFilter(r, "payment_date", true))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cur.Close(ctx)

	f := excelize.NewFile()
	sheet := "Payments"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Payment ID", "Booking ID", "Amount", "Date", "Method", "Transaction", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	var total float64
	for cur.Next(ctx) {
		var p models.Payment
		if err := cur.Decode(&p); err != nil {
			continue
		}
		values := []any{p.PaymentID, p.BookingID, p.Amount,
			p.PaymentDate.Format("2006-01-02"), p.PaymentMethod, p.TransactionID, p.Status}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		if p.Status == models.PaymentCompleted {
			total += p.Amount
		}
		row++
	}

	cell, _ := excelize.CoordinatesToCellName(3, row+1)
	f.SetCellValue(sheet, cell, fmt.Sprintf("Completed total: %.2f", total))

	writeWorkbook(w, f, "payments-report.xlsx")
}
