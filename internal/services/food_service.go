package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jung-kurt/gofpdf/v2"

	"hotel-backend/internal/billing"
	"hotel-backend/internal/models"
	"hotel-backend/internal/repositories"
)

// ErrEmptyOrder is returned when a food order arrives with no lines.
var ErrEmptyOrder = errors.New("food order has no items")

// FoodService manages the menu and room-service orders, and prints the
// kitchen ticket handed to the chef.
type FoodService struct {
	Food     *repositories.FoodRepository
	Bookings *repositories.BookingRepository
}

func NewFoodService(food *repositories.FoodRepository, bookings *repositories.BookingRepository) *FoodService {
	return &FoodService{Food: food, Bookings: bookings}
}

func (s *FoodService) CreateItem(ctx context.Context, req *models.CreateFoodItemRequest) (*models.FoodItem, error) {
	item := &models.FoodItem{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
	}
	if err := s.Food.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("create food item: %w", err)
	}
	return item, nil
}

func (s *FoodService) ListItems(ctx context.Context) ([]*models.FoodItem, error) {
	return s.Food.ListItems(ctx)
}

// PlaceOrder records a room-service order against a checked-in booking,
// pricing each line from the current menu.
func (s *FoodService) PlaceOrder(ctx context.Context, req *models.CreateFoodOrderRequest) (*models.FoodOrder, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	booking, err := s.Bookings.Get(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("load booking %d: %w", req.BookingID, err)
	}
	if booking.Status != models.BookingCheckedIn {
		return nil, repositories.ErrAlreadyCheckedOut
	}

	order := &models.FoodOrder{BookingID: booking.ID}
	for _, line := range req.Items {
		item, err := s.Food.GetItem(ctx, line.FoodItemID)
		if err != nil {
			return nil, fmt.Errorf("load food item %d: %w", line.FoodItemID, err)
		}
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		id := item.ID
		order.Items = append(order.Items, models.FoodOrderItem{
			FoodItemID: &id,
			Name:       item.Name,
			Quantity:   qty,
			UnitPrice:  item.Price,
			LineTotal:  item.Price * float64(qty),
		})
		order.Total += item.Price * float64(qty)
	}

	if err := s.Food.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create food order: %w", err)
	}
	log.Printf("[Food] Order %d placed for booking %d (%d lines, total %.2f)",
		order.ID, booking.ID, len(order.Items), order.Total)
	return order, nil
}

func (s *FoodService) ListUnbilled(ctx context.Context, bookingID int) ([]*models.FoodOrder, error) {
	return s.Food.ListUnbilledByBooking(ctx, bookingID)
}

// KitchenTicket renders the order as a small ticket for the kitchen printer.
// Quantities and item names only, no prices.
func (s *FoodService) KitchenTicket(order *models.FoodOrder, roomNumber string) ([]byte, error) {
	// 80mm thermal roll, height grows with the order.
	height := 40.0 + float64(len(order.Items))*6
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: 80, Ht: height},
	})
	pdf.SetMargins(5, 5, 5)
	pdf.SetAutoPageBreak(false, 5)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(70, 6, "KITCHEN ORDER", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(70, 5, fmt.Sprintf("Order #%d  Room %s", order.ID, roomNumber), "", 1, "C", false, 0, "")
	pdf.CellFormat(70, 5, billing.FormatBillDateTime(order.OrderedAt), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	for _, item := range order.Items {
		pdf.CellFormat(10, 6, fmt.Sprintf("%dx", item.Quantity), "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, item.Name, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("ticket output failed: %w", err)
	}
	return buf.Bytes(), nil
}
