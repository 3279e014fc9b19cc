package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"hotel-backend/internal/models"
	"hotel-backend/internal/repositories"
	"hotel-backend/internal/timeutil"
)

// ErrRoomUnavailable is returned when a check-in targets a room that is
// occupied or blocked.
var ErrRoomUnavailable = errors.New("room is not available")

// BookingService handles check-ins and booking reads. Checkout lives on
// BillService because it ends in an invoice.
type BookingService struct {
	Bookings *repositories.BookingRepository
	Rooms    *repositories.RoomRepository
}

func NewBookingService(bookings *repositories.BookingRepository, rooms *repositories.RoomRepository) *BookingService {
	return &BookingService{Bookings: bookings, Rooms: rooms}
}

// CheckIn creates a booking against an available room and marks the room
// occupied. Rate fields left at zero fall back to the room type's defaults.
func (s *BookingService) CheckIn(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error) {
	room, err := s.Rooms.Get(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("load room %d: %w", req.RoomID, err)
	}
	if room.Status != models.RoomAvailable {
		return nil, ErrRoomUnavailable
	}

	roomType, err := s.Rooms.GetRoomType(ctx, room.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("load room type %d: %w", room.RoomTypeID, err)
	}

	roomPrice := req.RoomPrice
	if roomPrice <= 0 {
		roomPrice = roomType.BaseRate
	}
	guestCharge := req.AdditionalGuestCharge
	if guestCharge <= 0 {
		guestCharge = roomType.AdditionalGuestCharge
	}

	booking := &models.Booking{
		GuestName:   req.GuestName,
		Address:     req.Address,
		State:       req.State,
		Nationality: req.Nationality,
		GSTNumber:   req.GSTNumber,
		Mobile:      req.Mobile,
		IDType:      req.IDType,
		IDNumber:    req.IDNumber,

		CompanyName: req.CompanyName,
		CompanyCode: req.CompanyCode,
		Department:  req.Department,
		Designation: req.Designation,

		RoomID:                req.RoomID,
		RoomPrice:             roomPrice,
		Tariff:                room.Tariff,
		AdditionalGuestCharge: guestCharge,
		AdditionalGuests:      req.AdditionalGuests,
		AdvanceAmount:         req.AdvanceAmount,

		CheckIn: timeutil.Now(),
		Status:  models.BookingCheckedIn,
	}

	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if err := s.Rooms.SetStatus(ctx, req.RoomID, models.RoomOccupied); err != nil {
		log.Printf("[Booking] Failed to mark room %d occupied: %v", req.RoomID, err)
	}

	booking.RoomNumber = room.Number
	booking.RoomType = room.RoomType
	log.Printf("[Booking] Guest %s checked in to room %s (booking %d)",
		booking.GuestName, room.Number, booking.ID)
	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id int) (*models.Booking, error) {
	return s.Bookings.Get(ctx, id)
}

func (s *BookingService) List(ctx context.Context, status string) ([]*models.Booking, error) {
	return s.Bookings.List(ctx, status)
}
