package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"hotel-backend/internal/cache"
	"hotel-backend/internal/models"
	"hotel-backend/internal/repositories"
	"hotel-backend/internal/services"
	"hotel-backend/pkg/utils"
)

type BookingHandler struct {
	Bookings *services.BookingService
	Bills    *services.BillService
}

func NewBookingHandler(bookings *services.BookingService, bills *services.BillService) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Bills: bills}
}

// CheckIn creates a booking and occupies the room.
func (h *BookingHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.GuestName == "" || req.RoomID == 0 {
		utils.Error(w, http.StatusBadRequest, "Guest name and room are required")
		return
	}

	booking, err := h.Bookings.CheckIn(context.Background(), &req)
	if errors.Is(err, services.ErrRoomUnavailable) {
		utils.Error(w, http.StatusConflict, "Room is not available")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.InvalidateDashboard(context.Background())
	utils.JSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	booking, err := h.Bookings.Get(context.Background(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Booking not found")
		return
	}
	utils.JSON(w, http.StatusOK, booking)
}

// ListBookings supports ?status=CHECKED_IN / CHECKED_OUT filters.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Bookings.List(context.Background(), r.URL.Query().Get("status"))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, bookings)
}

// Checkout settles the stay and streams back the invoice PDF.
func (h *BookingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inv, pdfData, err := h.Bills.CheckoutBooking(context.Background(), id, &req)
	if errors.Is(err, repositories.ErrAlreadyCheckedOut) {
		utils.Error(w, http.StatusConflict, "Booking is already checked out")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.InvalidateDashboard(context.Background())
	utils.PDF(w, "invoice-"+inv.InvoiceNumber+".pdf", pdfData)
}

// FoodBill invoices the booking's unbilled food orders on their own.
func (h *BookingHandler) FoodBill(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req struct {
		PaymentMode string `json:"payment_mode"`
	}
	// Body is optional for food bills.
	json.NewDecoder(r.Body).Decode(&req)

	inv, pdfData, err := h.Bills.GenerateFoodBill(context.Background(), id, req.PaymentMode)
	if errors.Is(err, services.ErrNoUnbilledFood) {
		utils.Error(w, http.StatusConflict, "No unbilled food orders for this booking")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.InvalidateDashboard(context.Background())
	utils.PDF(w, "food-bill-"+inv.InvoiceNumber+".pdf", pdfData)
}
