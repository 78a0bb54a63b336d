package invoices

import (
	"bytes"
	"fmt"
	"net/http"
	"os"

	"ziyarah/db"
	"ziyarah/models"
	"ziyarah/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DownloadInvoice renders the invoice as a PDF attachment with a QR code
// pointing at the payment portal.
func DownloadInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var inv models.Invoice
	err := db.InvoicesCollection.FindOne(ctx, bson.M{"invoice_id": ps.ByName("invoiceid")}).Decode(&inv)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Invoice not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	var booking models.Booking
	_ = db.BookingsCollection.FindOne(ctx, bson.M{"booking_id": inv.BookingID}).Decode(&booking)
	var customer models.Customer
	_ = db.CustomersCollection.FindOne(ctx, bson.M{"customer_id": booking.CustomerID}).Decode(&customer)
	var pkg models.Package
	_ = db.PackagesCollection.FindOne(ctx, bson.M{"package_id": booking.PackageID}).Decode(&pkg)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Invoice ID: %s", inv.InvoiceID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s", inv.InvoiceDate.Format("2006-01-02")))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Billed to: %s <%s>", customer.Name, customer.Email))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Booking: %s", inv.BookingID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Package: %s - %.2f", pkg.Title, pkg.BasePrice))
	pdf.Ln(8)

	svcCur, err := db.BookingServicesCollection.Find(ctx, bson.M{"booking_id": inv.BookingID})
	if err == nil {
		defer svcCur.Close(ctx)
		for svcCur.Next(ctx) {
			var s models.BookingService
			if err := svcCur.Decode(&s); err != nil {
				continue
			}
			pdf.Cell(0, 8, fmt.Sprintf("Service: %s - %.2f", s.ServiceName, s.PriceApplied))
			pdf.Ln(6)
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %.2f", inv.Amount))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Status: %s", inv.Status))

	if portal := os.Getenv("PAYMENT_PORTAL_URL"); portal != "" {
		qrPNG, err := qrcode.Encode(portal+"?invoice="+inv.InvoiceID, qrcode.Medium, 256)
		if err == nil {
			imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
			pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=invoice-"+inv.InvoiceID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
