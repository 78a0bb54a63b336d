package routes

import (
	"net/http"

	"ziyarah/auth"
	"ziyarah/bookings"
	"ziyarah/catalog"
	"ziyarah/commlogs"
	"ziyarah/customers"
	"ziyarah/documents"
	"ziyarah/fleet"
	"ziyarah/invoices"
	"ziyarah/leads"
	"ziyarah/middleware"
	"ziyarah/models"
	"ziyarah/payments"
	"ziyarah/ratelim"
	"ziyarah/reports"
	"ziyarah/staff"

	"github.com/julienschmidt/httprouter"
)

func gated(capability string, h httprouter.Handle) httprouter.Handle {
	return ratelim.RateLimit(middleware.Authenticate(middleware.WithCapability(capability, h)))
}

func gatedAny(capabilities []string, h httprouter.Handle) httprouter.Handle {
	return ratelim.RateLimit(middleware.Authenticate(middleware.WithAnyCapability(capabilities, h)))
}

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/uploads/documents/*filepath", http.Dir("uploads/documents"))
	router.ServeFiles("/uploads/brochures/*filepath", http.Dir("uploads/brochures"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(middleware.Authenticate(auth.RefreshToken)))
}

func AddStaffRoutes(router *httprouter.Router) {
	router.POST("/api/staff", gated(models.CapManageUsers, staff.CreateStaff))
	router.GET("/api/staff", gated(models.CapManageUsers, staff.ListStaff))
	router.GET("/api/staff/:staffid", gated(models.CapManageUsers, staff.GetStaff))
	router.PUT("/api/staff/:staffid", gated(models.CapManageUsers, staff.UpdateStaff))

	router.GET("/api/roles", gated(models.CapManageUsers, staff.ListRoles))
	router.PUT("/api/roles/:roleid", gated(models.CapManageUsers, staff.UpdateRole))
}

func AddLeadRoutes(router *httprouter.Router) {
	router.POST("/api/leads", gated(models.CapManageLeads, leads.CreateLead))
	router.GET("/api/leads", gated(models.CapManageLeads, leads.ListLeads))
	router.GET("/api/leads/:leadid", gated(models.CapManageLeads, leads.GetLead))
	router.PUT("/api/leads/:leadid", gated(models.CapManageLeads, leads.UpdateLead))
	router.POST("/api/leads/:leadid/convert", gated(models.CapManageLeads, leads.ConvertLead))

	router.POST("/api/customers", gated(models.CapManageLeads, customers.CreateCustomer))
	router.GET("/api/customers", gated(models.CapManageLeads, customers.ListCustomers))
	router.GET("/api/customers/:customerid", gated(models.CapManageLeads, customers.GetCustomer))
	router.PUT("/api/customers/:customerid", gated(models.CapManageLeads, customers.UpdateCustomer))
}

func AddCatalogRoutes(router *httprouter.Router) {
	router.POST("/api/packages", gated(models.CapManagePackages, catalog.CreatePackage))
	router.GET("/api/packages", ratelim.RateLimit(middleware.Authenticate(catalog.ListPackages)))
	router.GET("/api/packages/:packageid", ratelim.RateLimit(middleware.Authenticate(catalog.GetPackage)))
	router.PUT("/api/packages/:packageid", gated(models.CapManagePackages, catalog.UpdatePackage))
	router.PATCH("/api/packages/:packageid/status", gated(models.CapManagePackages, catalog.SetPackageStatus))
	router.POST("/api/packages/:packageid/brochure", gated(models.CapManagePackages, catalog.UploadBrochure))

	router.POST("/api/packages/:packageid/itineraries", gated(models.CapManagePackages, catalog.AddItineraryDay))
	router.GET("/api/packages/:packageid/itineraries", ratelim.RateLimit(middleware.Authenticate(catalog.ListItinerary)))
	router.PUT("/api/packages/:packageid/itineraries/:itineraryid", gated(models.CapManagePackages, catalog.UpdateItineraryDay))
	router.DELETE("/api/packages/:packageid/itineraries/:itineraryid", gated(models.CapManagePackages, catalog.DeleteItineraryDay))

	router.POST("/api/services", gated(models.CapManagePackages, catalog.CreateService))
	router.GET("/api/services", ratelim.RateLimit(middleware.Authenticate(catalog.ListServices)))
	router.PUT("/api/services/:serviceid", gated(models.CapManagePackages, catalog.UpdateService))
	router.DELETE("/api/services/:serviceid", gated(models.CapManagePackages, catalog.DeleteService))
}

func AddFleetRoutes(router *httprouter.Router) {
	router.POST("/api/guides", gated(models.CapManagePackages, fleet.CreateGuide))
	router.GET("/api/guides", ratelim.RateLimit(middleware.Authenticate(fleet.ListGuides)))
	router.PATCH("/api/guides/:guideid/status", gated(models.CapManagePackages, fleet.SetGuideStatus))

	router.POST("/api/transports", gated(models.CapManagePackages, fleet.CreateTransport))
	router.GET("/api/transports", ratelim.RateLimit(middleware.Authenticate(fleet.ListTransports)))
	router.PATCH("/api/transports/:transportid/status", gated(models.CapManagePackages, fleet.SetTransportStatus))
}

func AddBookingRoutes(router *httprouter.Router) {
	router.POST("/api/bookings", gated(models.CapManageBookings, bookings.CreateBooking))
	router.GET("/api/bookings", gated(models.CapManageBookings, bookings.ListBookings))
	router.GET("/api/bookings/:bookingid", gated(models.CapManageBookings, bookings.GetBooking))
	router.PUT("/api/bookings/:bookingid", gated(models.CapManageBookings, bookings.UpdateBooking))
	router.PUT("/api/bookings/:bookingid/status", gated(models.CapManageBookings, bookings.UpdateStatus))
	router.PUT("/api/bookings/:bookingid/travel-status", gated(models.CapUpdateTravelProgress, bookings.UpdateTravelStatus))
	router.PUT("/api/bookings/:bookingid/assign-guide", gated(models.CapAssignGuides, bookings.AssignGuide))
	router.PUT("/api/bookings/:bookingid/assign-transport", gated(models.CapAssignGuides, bookings.AssignTransport))
	router.GET("/api/bookings/:bookingid/generatepdf", gated(models.CapManageBookings, bookings.PrintBooking))

	// Live travel-status feed; token may arrive as a cookie.
	router.GET("/api/bookings/:bookingid/updates", middleware.Authenticate(bookings.TravelStatusFeed))
}

func AddFinanceRoutes(router *httprouter.Router) {
	// Invoice reads serve two audiences: accountants (manage_invoices) and
	// sales agents (manage_bookings, scoped to their own customers inside
	// the handlers).
	invoiceRead := []string{models.CapManageInvoices, models.CapManageBookings}
	router.GET("/api/invoices", gatedAny(invoiceRead, invoices.ListInvoices))
	router.GET("/api/invoices/:invoiceid", gatedAny(invoiceRead, invoices.GetInvoice))
	router.PUT("/api/invoices/:invoiceid/status", gated(models.CapManageInvoices, invoices.UpdateStatus))
	router.GET("/api/invoices/:invoiceid/download", gatedAny(invoiceRead, invoices.DownloadInvoice))

	router.POST("/api/payments", gated(models.CapManagePayments, payments.CreatePayment))
	router.GET("/api/payments", gated(models.CapManagePayments, payments.ListPayments))
	router.PUT("/api/payments/:paymentid", gated(models.CapManagePayments, payments.UpdatePayment))
	router.GET("/api/payments/summary/:bookingid",
		gatedAny([]string{models.CapManagePayments, models.CapManageBookings}, payments.PaymentSummary))
}

func AddDocumentRoutes(router *httprouter.Router) {
	router.POST("/api/documents/bookings/:bookingid", gated(models.CapManageBookings, documents.UploadDocument))
	router.GET("/api/documents/bookings/:bookingid", gated(models.CapManageBookings, documents.ListDocuments))
	router.DELETE("/api/documents/:documentid", gated(models.CapManageBookings, documents.DeleteDocument))
}

func AddCommLogRoutes(router *httprouter.Router) {
	router.POST("/api/communication-logs", gated(models.CapManageLeads, commlogs.CreateLog))
	router.GET("/api/communication-logs", gated(models.CapManageLeads, commlogs.ListLogs))
	router.PUT("/api/communication-logs/:logid", gated(models.CapManageLeads, commlogs.UpdateLog))
	router.DELETE("/api/communication-logs/:logid", gated(models.CapManageLeads, commlogs.DeleteLog))
}

func AddReportRoutes(router *httprouter.Router) {
	router.GET("/api/reports/bookings.xlsx", gated(models.CapGenerateReports, reports.BookingsReport))
	router.GET("/api/reports/payments.xlsx", gated(models.CapGenerateReports, reports.PaymentsReport))
}
