package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hotel-backend/internal/handlers"
	"hotel-backend/internal/middleware"
	"hotel-backend/internal/models"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	totpHandler *handlers.TOTPHandler,
	settingHandler *handlers.SettingHandler,
	roomHandler *handlers.RoomHandler,
	bookingHandler *handlers.BookingHandler,
	foodHandler *handlers.FoodHandler,
	billHandler *handlers.BillHandler,
	invoiceHandler *handlers.InvoiceHandler,
	paymentHandler *handlers.PaymentHandler,
	reportHandler *handlers.ReportHandler,
	policeHandler *handlers.PoliceHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	manager := authMiddleware.RequireRole(models.RoleManager)
	frontDesk := authMiddleware.RequireRole(models.RoleManager, models.RoleStaff)
	kitchen := authMiddleware.RequireRole(models.RoleManager, models.RoleStaff, models.RoleChef)

	// Public routes
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/login/totp", authHandler.LoginTOTP).Methods("POST")
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler())

	// Razorpay calls this; authenticated by signature, not JWT.
	r.HandleFunc("/api/payments/webhook", paymentHandler.Webhook).Methods("POST")

	// Users (manager only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(manager)
	usersAPI.HandleFunc("", userHandler.ListUsers).Methods("GET")
	usersAPI.HandleFunc("", userHandler.CreateUser).Methods("POST")
	usersAPI.HandleFunc("/{id}", userHandler.GetUser).Methods("GET")

	// Own account
	meAPI := r.PathPrefix("/api/me").Subrouter()
	meAPI.Use(authMiddleware.Authenticate)
	meAPI.HandleFunc("", userHandler.Me).Methods("GET")
	meAPI.HandleFunc("/totp/setup", totpHandler.Setup).Methods("POST")
	meAPI.HandleFunc("/totp/enable", totpHandler.Enable).Methods("POST")

	// Hotel settings
	settingsAPI := r.PathPrefix("/api/settings").Subrouter()
	settingsAPI.Use(authMiddleware.Authenticate)
	settingsAPI.HandleFunc("", settingHandler.GetSettings).Methods("GET")
	settingsAPI.HandleFunc("", manager(http.HandlerFunc(settingHandler.UpdateSettings)).ServeHTTP).Methods("PUT")

	// Rooms
	roomsAPI := r.PathPrefix("/api/rooms").Subrouter()
	roomsAPI.Use(authMiddleware.Authenticate)
	roomsAPI.HandleFunc("", roomHandler.ListRooms).Methods("GET")
	roomsAPI.HandleFunc("", manager(http.HandlerFunc(roomHandler.CreateRoom)).ServeHTTP).Methods("POST")
	roomsAPI.HandleFunc("/types", roomHandler.ListRoomTypes).Methods("GET")
	roomsAPI.HandleFunc("/{id}", roomHandler.GetRoom).Methods("GET")
	roomsAPI.HandleFunc("/{id}", manager(http.HandlerFunc(roomHandler.UpdateRoom)).ServeHTTP).Methods("PUT")

	// Bookings: check-in, checkout, food bills
	bookingsAPI := r.PathPrefix("/api/bookings").Subrouter()
	bookingsAPI.Use(frontDesk)
	bookingsAPI.HandleFunc("", bookingHandler.ListBookings).Methods("GET")
	bookingsAPI.HandleFunc("", bookingHandler.CheckIn).Methods("POST")
	bookingsAPI.HandleFunc("/{id}", bookingHandler.GetBooking).Methods("GET")
	bookingsAPI.HandleFunc("/{id}/checkout", bookingHandler.Checkout).Methods("POST")
	bookingsAPI.HandleFunc("/{id}/food-bill", bookingHandler.FoodBill).Methods("POST")
	bookingsAPI.HandleFunc("/{id}/food-orders", foodHandler.ListUnbilled).Methods("GET")

	// Food menu and orders (chef can see orders and print tickets)
	foodAPI := r.PathPrefix("/api/food").Subrouter()
	foodAPI.Use(kitchen)
	foodAPI.HandleFunc("/items", foodHandler.ListItems).Methods("GET")
	foodAPI.HandleFunc("/items", manager(http.HandlerFunc(foodHandler.CreateItem)).ServeHTTP).Methods("POST")
	foodAPI.HandleFunc("/orders", foodHandler.PlaceOrder).Methods("POST")
	foodAPI.HandleFunc("/bookings/{id}/orders/{orderId}/ticket", foodHandler.KitchenTicket).Methods("GET")

	// Bills and invoices
	billsAPI := r.PathPrefix("/api/bills").Subrouter()
	billsAPI.Use(frontDesk)
	billsAPI.HandleFunc("/manual", billHandler.CreateManualBill).Methods("POST")

	invoicesAPI := r.PathPrefix("/api/invoices").Subrouter()
	invoicesAPI.Use(frontDesk)
	invoicesAPI.HandleFunc("", invoiceHandler.ListInvoices).Methods("GET")
	invoicesAPI.HandleFunc("/{number}", invoiceHandler.GetInvoiceByNumber).Methods("GET")
	invoicesAPI.HandleFunc("/{number}/pdf", billHandler.DownloadInvoicePDF).Methods("GET")

	// Online payments
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(frontDesk)
	paymentsAPI.HandleFunc("/order", paymentHandler.CreateOrder).Methods("POST")

	// Reports (manager only)
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(manager)
	reportsAPI.HandleFunc("/invoices.csv", reportHandler.InvoicesCSV).Methods("GET")
	reportsAPI.HandleFunc("/bookings.csv", reportHandler.BookingsCSV).Methods("GET")
	reportsAPI.HandleFunc("/invoices.zip", reportHandler.InvoicesZIP).Methods("GET")
	reportsAPI.HandleFunc("/guest-register.pdf", policeHandler.GuestRegister).Methods("GET")

	return r
}
