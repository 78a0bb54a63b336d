package bookings

import (
	"bytes"
	"fmt"
	"net/http"

	"ziyarah/db"
	"ziyarah/models"
	"ziyarah/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"go.mongodb.org/mongo-driver/bson"
)

// PrintBooking renders a booking confirmation sheet as a PDF attachment.
func PrintBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, ok := loadBookingChecked(w, r, ps.ByName("bookingid"))
	if !ok {
		return
	}
	ctx := r.Context()

	var customer models.Customer
	_ = db.CustomersCollection.FindOne(ctx, bson.M{"customer_id": booking.CustomerID}).Decode(&customer)
	var pkg models.Package
	_ = db.PackagesCollection.FindOne(ctx, bson.M{"package_id": booking.PackageID}).Decode(&pkg)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Confirmation")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Booking ID: %s", booking.BookingID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Customer: %s", customer.Name))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Package: %s (%s)", pkg.Title, booking.PackageType))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Travel: %s to %s", booking.TravelStartDate, booking.TravelEndDate))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Travelers: %d", booking.NumTravelers))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Status: %s / %s", booking.Status, booking.TravelStatus))
	pdf.Ln(8)
	if booking.SpecialRequirements != "" {
		pdf.MultiCell(0, 10, fmt.Sprintf("Special requirements: %s", booking.SpecialRequirements), "", "L", false)
	}

	svcCur, err := db.BookingServicesCollection.Find(ctx, bson.M{"booking_id": booking.BookingID})
	if err == nil {
		defer svcCur.Close(ctx)
		first := true
		for svcCur.Next(ctx) {
			var s models.BookingService
			if err := svcCur.Decode(&s); err != nil {
				continue
			}
			if first {
				pdf.Ln(4)
				pdf.SetFont("Arial", "B", 12)
				pdf.Cell(0, 10, "Optional services")
				pdf.Ln(8)
				pdf.SetFont("Arial", "", 12)
				first = false
			}
			pdf.Cell(0, 8, fmt.Sprintf("- %s: %.2f", s.ServiceName, s.PriceApplied))
			pdf.Ln(6)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=booking-"+booking.BookingID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
