package bookings

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ziyarah/db"
	"ziyarah/models"
	"ziyarah/mq"
	"ziyarah/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type serviceSelection struct {
	ServiceID string  `json:"service_id"`
	Discount  float64 `json:"discount"`
}

type createBookingInput struct {
	CustomerID          string             `json:"customer_id"`
	PackageID           string             `json:"package_id"`
	TravelStartDate     string             `json:"travel_start_date"`
	TravelEndDate       string             `json:"travel_end_date"`
	NumTravelers        int                `json:"num_travelers"`
	PackageType         string             `json:"package_type"`
	Destination         string             `json:"destination"`
	SpecialRequirements string             `json:"special_requirements"`
	Services            []serviceSelection `json:"services"`
}

func validateCreateInput(in createBookingInput) error {
	if in.CustomerID == "" || in.PackageID == "" {
		return errors.New("customer_id and package_id are required")
	}
	if in.TravelStartDate == "" || in.TravelEndDate == "" {
		return errors.New("travel dates are required")
	}
	if in.TravelEndDate < in.TravelStartDate {
		return errors.New("travel end date precedes start date")
	}
	if in.NumTravelers < 1 {
		return errors.New("num_travelers must be at least 1")
	}
	if in.PackageType != "" && !utils.Contains(models.PackageTypes, in.PackageType) {
		return errors.New("invalid package_type")
	}
	return nil
}

// priceApplied resolves the frozen service price from the catalog price and
// an optional explicit discount. The client never asserts the price itself.
func priceApplied(catalogPrice, discount float64) (float64, error) {
	if discount < 0 {
		return 0, errors.New("discount cannot be negative")
	}
	if discount > catalogPrice {
		return 0, errors.New("discount exceeds service price")
	}
	return catalogPrice - discount, nil
}

// invoiceAmount is the package base price plus every frozen service price.
func invoiceAmount(basePrice float64, services []models.BookingService) float64 {
	total := basePrice
	for _, s := range services {
		total += s.PriceApplied
	}
	return total
}

// CreateBooking creates the booking, its service attachments, and exactly one
// invoice in a single Mongo transaction, then emits the invoice-sent event.
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input createBookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := validateCreateInput(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()

	var customer models.Customer
	err := db.CustomersCollection.FindOne(ctx, bson.M{"customer_id": input.CustomerID}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Customer not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	var pkg models.Package
	err = db.PackagesCollection.FindOne(ctx, bson.M{"package_id": input.PackageID}).Decode(&pkg)
	if err != nil || !pkg.IsActive {
		utils.RespondWithError(w, http.StatusBadRequest, "Package not found or inactive")
		return
	}

	now := time.Now()
	booking := models.Booking{
		BookingID:           "bk" + utils.GenerateRandomString(10),
		CustomerID:          customer.CustomerID,
		PackageID:           pkg.PackageID,
		BookingDate:         now,
		TravelStartDate:     input.TravelStartDate,
		TravelEndDate:       input.TravelEndDate,
		NumTravelers:        input.NumTravelers,
		Status:              models.BookingConfirmed,
		PackageType:         input.PackageType,
		TravelStatus:        "Not Started",
		Destination:         input.Destination,
		SpecialRequirements: input.SpecialRequirements,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if booking.PackageType == "" {
		booking.PackageType = "Deluxe"
	}

	// Resolve every requested service before writing anything; any invalid
	// selection fails the whole request.
	attached := make([]models.BookingService, 0, len(input.Services))
	for _, sel := range input.Services {
		var svc models.OptionalService
		err := db.ServicesCollection.FindOne(ctx, bson.M{"service_id": sel.ServiceID}).Decode(&svc)
		if err != nil || !svc.IsActive {
			utils.RespondWithError(w, http.StatusBadRequest,
				fmt.Sprintf("Service %s not found or inactive", sel.ServiceID))
			return
		}
		applied, err := priceApplied(svc.Price, sel.Discount)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		attached = append(attached, models.BookingService{
			BookingServiceID: "bs" + utils.GenerateRandomString(10),
			BookingID:        booking.BookingID,
			ServiceID:        svc.ServiceID,
			ServiceName:      svc.Name,
			PriceApplied:     applied,
			Discount:         sel.Discount,
			CreatedAt:        now,
		})
	}

	invoice := models.Invoice{
		InvoiceID:   "in" + utils.GenerateRandomString(10),
		BookingID:   booking.BookingID,
		Amount:      invoiceAmount(pkg.BasePrice, attached),
		InvoiceDate: now,
		Status:      models.InvoiceSent,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	session, err := db.Client.StartSession()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to start transaction")
		return
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := db.BookingsCollection.InsertOne(sc, booking); err != nil {
			return nil, err
		}
		for _, bs := range attached {
			if _, err := db.BookingServicesCollection.InsertOne(sc, bs); err != nil {
				return nil, err
			}
		}
		if _, err := db.InvoicesCollection.InsertOne(sc, invoice); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	mq.Emit(models.EventInvoiceSent, models.Event{
		EntityID:  invoice.InvoiceID,
		BookingID: booking.BookingID,
		Recipient: customer.Email,
		Amount:    invoice.Amount,
		Status:    invoice.Status,
	})

	utils.SendResponse(w, http.StatusCreated, utils.M{
		"booking":  booking,
		"services": attached,
		"invoice":  invoice,
	}, "Booking created", nil)
}
