package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"hotel-backend/internal/billing"
	"hotel-backend/internal/metrics"
	"hotel-backend/internal/models"
	"hotel-backend/internal/repositories"
	"hotel-backend/internal/storage"
	"hotel-backend/internal/timeutil"
)

// ErrNoUnbilledFood is returned when a food bill is requested for a booking
// with nothing left to bill.
var ErrNoUnbilledFood = errors.New("no unbilled food orders for booking")

// BillService owns invoice generation: checkout bills, standalone food bills
// and manual bills. It computes totals once, persists every charge component,
// and renders the PDF from the persisted record so re-downloads are verbatim.
type BillService struct {
	Settings *repositories.HotelSettingRepository
	Bookings *repositories.BookingRepository
	Rooms    *repositories.RoomRepository
	Food     *repositories.FoodRepository
	Invoices *repositories.InvoiceRepository
	Archiver *storage.Archiver
}

func NewBillService(
	settings *repositories.HotelSettingRepository,
	bookings *repositories.BookingRepository,
	rooms *repositories.RoomRepository,
	food *repositories.FoodRepository,
	invoices *repositories.InvoiceRepository,
	archiver *storage.Archiver,
) *BillService {
	return &BillService{
		Settings: settings,
		Bookings: bookings,
		Rooms:    rooms,
		Food:     food,
		Invoices: invoices,
		Archiver: archiver,
	}
}

const invoiceNumberChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateInvoiceNumber returns a unique bill identifier of the form
// INV-<unix-millis>-<9 random characters>.
func GenerateInvoiceNumber() string {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		// Degrade to a purely time-based suffix rather than fail the bill.
		return fmt.Sprintf("INV-%d-%09d", time.Now().UnixMilli(), time.Now().Nanosecond())
	}
	for i, b := range buf {
		buf[i] = invoiceNumberChars[int(b)%len(invoiceNumberChars)]
	}
	return fmt.Sprintf("INV-%d-%s", time.Now().UnixMilli(), string(buf))
}

// CheckoutBooking settles a stay: it flips the booking to checked out exactly
// once, folds food charges in when requested, persists the ROOM invoice and
// returns it with the rendered PDF.
func (s *BillService) CheckoutBooking(ctx context.Context, bookingID int, req *models.CheckoutRequest) (*models.Invoice, []byte, error) {
	booking, err := s.getBookingWithRetry(ctx, bookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("load booking %d: %w", bookingID, err)
	}
	if booking.Status != models.BookingCheckedIn {
		return nil, nil, repositories.ErrAlreadyCheckedOut
	}

	settings, err := s.Settings.Get(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load hotel settings: %w", err)
	}

	now := timeutil.Now()
	days := stayDays(booking.CheckIn, now)

	roomPrice := billing.Amount(req.RoomPrice)
	if roomPrice <= 0 {
		roomPrice = booking.RoomPrice
	}
	roomCharges := roomPrice * float64(days)

	var (
		foodCharges float64
		items       []models.InvoiceItem
	)
	if req.CombinedFoodBill {
		previous, err := s.Invoices.SumFoodInvoicesByBooking(ctx, bookingID)
		if err != nil {
			return nil, nil, fmt.Errorf("sum food invoices: %w", err)
		}
		unbilled, err := s.Food.SumUnbilledByBooking(ctx, bookingID)
		if err != nil {
			return nil, nil, fmt.Errorf("sum unbilled food: %w", err)
		}
		foodCharges = billing.CombinedFoodCharges(previous, unbilled, billing.Amount(req.Complimentary))

		orders, err := s.Food.ListUnbilledByBooking(ctx, bookingID)
		if err != nil {
			return nil, nil, fmt.Errorf("list unbilled food: %w", err)
		}
		items = foodOrderItems(orders)
	}

	gstPercent := billing.Amount(req.GSTPercent)
	if gstPercent <= 0 {
		gstPercent = settings.GSTPercent
	}

	inputs := billing.ChargeInputs{
		RoomCharges:           roomCharges,
		Tariff:                booking.Tariff,
		FoodCharges:           foodCharges,
		AdditionalGuestCharge: booking.AdditionalGuestCharge,
		AdditionalGuests:      booking.AdditionalGuests,
		Discount:              billing.Amount(req.Discount),
		GSTEnabled:            req.GSTEnabled,
		ShowGST:               req.ShowGST,
		GSTPercent:            gstPercent,
		AdvanceAmount:         booking.AdvanceAmount,
	}
	if req.RoundOff != nil {
		inputs.RoundOff = billing.Amount(req.RoundOff)
	} else {
		inputs.AutoRoundOff = true
	}
	totals := billing.ComputeTotals(inputs)

	// The status guard runs before the invoice insert so a concurrent double
	// checkout cannot produce a second bill.
	if err := s.Bookings.MarkCheckedOut(ctx, bookingID); err != nil {
		return nil, nil, err
	}

	inv := &models.Invoice{
		InvoiceNumber: GenerateInvoiceNumber(),
		InvoiceType:   models.InvoiceTypeRoom,
		BookingID:     &booking.ID,

		GuestName:   booking.GuestName,
		Address:     booking.Address,
		State:       booking.State,
		Nationality: booking.Nationality,
		GSTNumber:   booking.GSTNumber,
		Mobile:      booking.Mobile,

		CompanyName: booking.CompanyName,
		CompanyCode: booking.CompanyCode,
		Department:  booking.Department,
		Designation: booking.Designation,

		RoomNumber:       booking.RoomNumber,
		RoomType:         booking.RoomType,
		NumberOfDays:     days,
		CheckIn:          booking.CheckIn,
		CheckOut:         now,
		AdditionalGuests: booking.AdditionalGuests,

		RoomCharges:           roomCharges,
		Tariff:                booking.Tariff,
		FoodCharges:           foodCharges,
		AdditionalGuestsTotal: totals.AdditionalGuestsTotal,
		Discount:              inputs.Discount,
		GSTEnabled:            req.GSTEnabled,
		ShowGST:               req.ShowGST,
		GSTPercent:            gstPercent,
		GSTAmount:             totals.GSTAmount,
		BaseTotal:             totals.BaseTotal,
		AdvanceAmount:         booking.AdvanceAmount,
		RoundOff:              totals.RoundOff,
		TotalAmount:           totals.TotalAmount,

		PaymentMode:   paymentModeOrCash(req.PaymentMode),
		PaymentStatus: models.PaymentPending,
		BillDate:      now,
		Items:         items,
	}

	if err := s.Invoices.Create(ctx, inv); err != nil {
		return nil, nil, fmt.Errorf("persist invoice: %w", err)
	}

	if req.CombinedFoodBill {
		if err := s.Food.MarkBilled(ctx, bookingID); err != nil {
			log.Printf("[Bill] Failed to mark food orders billed for booking %d: %v", bookingID, err)
		}
	}
	if err := s.Rooms.SetStatus(ctx, booking.RoomID, models.RoomAvailable); err != nil {
		log.Printf("[Bill] Failed to release room %d: %v", booking.RoomID, err)
	}

	pdfData, err := s.renderAndArchive(ctx, settings, inv)
	if err != nil {
		return nil, nil, err
	}

	metrics.BillsGeneratedTotal.WithLabelValues("room").Inc()
	log.Printf("[Bill] Checkout invoice %s generated for booking %d (total %.2f)",
		inv.InvoiceNumber, bookingID, inv.TotalAmount)
	return inv, pdfData, nil
}

// GenerateFoodBill invoices a booking's unbilled food orders on their own,
// without touching the stay. Food bills never carry GST.
func (s *BillService) GenerateFoodBill(ctx context.Context, bookingID int, paymentMode string) (*models.Invoice, []byte, error) {
	booking, err := s.Bookings.Get(ctx, bookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("load booking %d: %w", bookingID, err)
	}

	orders, err := s.Food.ListUnbilledByBooking(ctx, bookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("list unbilled food: %w", err)
	}
	if len(orders) == 0 {
		return nil, nil, ErrNoUnbilledFood
	}

	settings, err := s.Settings.Get(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load hotel settings: %w", err)
	}

	var foodTotal float64
	for _, o := range orders {
		foodTotal += o.Total
	}
	totals := billing.ComputeTotals(billing.ChargeInputs{FoodCharges: foodTotal})

	now := timeutil.Now()
	inv := &models.Invoice{
		InvoiceNumber: GenerateInvoiceNumber(),
		InvoiceType:   models.InvoiceTypeFood,
		BookingID:     &booking.ID,

		GuestName:   booking.GuestName,
		Address:     booking.Address,
		State:       booking.State,
		Nationality: booking.Nationality,
		Mobile:      booking.Mobile,

		RoomNumber: booking.RoomNumber,
		RoomType:   booking.RoomType,
		CheckIn:    booking.CheckIn,
		CheckOut:   now,

		FoodCharges: foodTotal,
		BaseTotal:   totals.BaseTotal,
		RoundOff:    totals.RoundOff,
		TotalAmount: totals.TotalAmount,

		PaymentMode:   paymentModeOrCash(paymentMode),
		PaymentStatus: models.PaymentPending,
		BillDate:      now,
		Items:         foodOrderItems(orders),
	}

	if err := s.Invoices.Create(ctx, inv); err != nil {
		return nil, nil, fmt.Errorf("persist invoice: %w", err)
	}
	if err := s.Food.MarkBilled(ctx, bookingID); err != nil {
		log.Printf("[Bill] Failed to mark food orders billed for booking %d: %v", bookingID, err)
	}

	pdfData, err := s.renderAndArchive(ctx, settings, inv)
	if err != nil {
		return nil, nil, err
	}

	metrics.BillsGeneratedTotal.WithLabelValues("food").Inc()
	log.Printf("[Bill] Food invoice %s generated for booking %d (total %.2f)",
		inv.InvoiceNumber, bookingID, inv.TotalAmount)
	return inv, pdfData, nil
}

// GenerateManualBill builds an invoice straight from operator input, with no
// backing booking. Every charge field is coerced so bad input degrades to a
// zero instead of rejecting the bill.
func (s *BillService) GenerateManualBill(ctx context.Context, req *models.ManualBillRequest) (*models.Invoice, []byte, error) {
	settings, err := s.Settings.Get(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load hotel settings: %w", err)
	}

	now := timeutil.Now()
	checkIn := req.CheckIn
	if checkIn.IsZero() {
		checkIn = now
	}
	checkOut := req.CheckOut
	if checkOut.IsZero() {
		checkOut = now
	}

	inputs := manualChargeInputs(req, settings.GSTPercent)
	totals := billing.ComputeTotals(inputs)

	var items []models.InvoiceItem
	for _, it := range req.Items {
		qty := billing.Count(it.Quantity, 1)
		unit := billing.Amount(it.UnitPrice)
		items = append(items, models.InvoiceItem{
			Name:      it.Name,
			Quantity:  qty,
			UnitPrice: unit,
			LineTotal: unit * float64(qty),
		})
	}

	inv := &models.Invoice{
		InvoiceNumber:    GenerateInvoiceNumber(),
		InvoiceType:      models.InvoiceTypeManual,
		IsManual:         true,
		ManualBillNumber: req.ManualBillNumber,

		GuestName:   req.GuestName,
		Address:     req.Address,
		State:       req.State,
		Nationality: req.Nationality,
		GSTNumber:   req.GSTNumber,
		Mobile:      req.Mobile,

		CompanyName: req.CompanyName,
		CompanyCode: req.CompanyCode,
		Department:  req.Department,
		Designation: req.Designation,

		RoomNumber:       req.RoomNumber,
		RoomType:         req.RoomType,
		NumberOfDays:     billing.Count(req.NumberOfDays, 1),
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		AdditionalGuests: inputs.AdditionalGuests,

		RoomCharges:           inputs.RoomCharges,
		Tariff:                inputs.Tariff,
		FoodCharges:           inputs.FoodCharges,
		AdditionalGuestsTotal: totals.AdditionalGuestsTotal,
		Discount:              inputs.Discount,
		GSTEnabled:            req.GSTEnabled,
		ShowGST:               req.ShowGST,
		GSTPercent:            inputs.GSTPercent,
		GSTAmount:             totals.GSTAmount,
		BaseTotal:             totals.BaseTotal,
		AdvanceAmount:         inputs.AdvanceAmount,
		RoundOff:              totals.RoundOff,
		TotalAmount:           totals.TotalAmount,

		PaymentMode:   paymentModeOrCash(req.PaymentMode),
		PaymentStatus: models.PaymentPending,
		BillDate:      now,
		Items:         items,
	}

	if err := s.Invoices.Create(ctx, inv); err != nil {
		return nil, nil, fmt.Errorf("persist invoice: %w", err)
	}

	pdfData, err := s.renderAndArchive(ctx, settings, inv)
	if err != nil {
		return nil, nil, err
	}

	metrics.BillsGeneratedTotal.WithLabelValues("manual").Inc()
	log.Printf("[Bill] Manual invoice %s generated (total %.2f)", inv.InvoiceNumber, inv.TotalAmount)
	return inv, pdfData, nil
}

// RenderByNumber rebuilds a bill PDF from its persisted record. Nothing is
// recomputed: a re-download always matches the original print.
func (s *BillService) RenderByNumber(ctx context.Context, number string) (*models.Invoice, []byte, error) {
	inv, err := s.Invoices.GetByNumber(ctx, number)
	if err != nil {
		return nil, nil, fmt.Errorf("load invoice %s: %w", number, err)
	}
	settings, err := s.Settings.Get(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load hotel settings: %w", err)
	}

	pdfData, err := billing.RenderInvoice(HotelInfoFromSettings(settings), BillDataFromInvoice(inv))
	if err != nil {
		return nil, nil, fmt.Errorf("render invoice %s: %w", number, err)
	}
	return inv, pdfData, nil
}

func (s *BillService) renderAndArchive(ctx context.Context, settings *models.HotelSettings, inv *models.Invoice) ([]byte, error) {
	pdfData, err := billing.RenderInvoice(HotelInfoFromSettings(settings), BillDataFromInvoice(inv))
	if err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", inv.InvoiceNumber, err)
	}
	s.Archiver.ArchiveInvoice(ctx, inv.InvoiceNumber, pdfData)
	return pdfData, nil
}

// getBookingWithRetry absorbs transient read failures at checkout time; the
// front desk retries are expensive, ours are not.
func (s *BillService) getBookingWithRetry(ctx context.Context, id int) (*models.Booking, error) {
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(500 * time.Millisecond):
			}
		}
		booking, err := s.Bookings.Get(ctx, id)
		if err == nil {
			return booking, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// HotelInfoFromSettings maps the settings row to the render snapshot.
func HotelInfoFromSettings(s *models.HotelSettings) billing.HotelInfo {
	return billing.HotelInfo{
		Name:    s.Name,
		Address: s.Address,
		Phone:   s.Phone,
		Email:   s.Email,
		GSTIN:   s.GSTIN,
	}
}

// BillDataFromInvoice maps a persisted invoice to the render input, carrying
// the stored totals through untouched.
func BillDataFromInvoice(inv *models.Invoice) billing.BillData {
	items := make([]billing.LineItem, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, billing.LineItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
			OrderedAt: it.OrderedAt,
		})
	}

	return billing.BillData{
		InvoiceNumber:    inv.InvoiceNumber,
		ManualBillNumber: inv.ManualBillNumber,
		BillDate:         inv.BillDate,

		GuestName:   inv.GuestName,
		Address:     inv.Address,
		State:       inv.State,
		Nationality: inv.Nationality,
		GSTNumber:   inv.GSTNumber,
		Mobile:      inv.Mobile,

		CompanyName: inv.CompanyName,
		CompanyCode: inv.CompanyCode,
		Department:  inv.Department,
		Designation: inv.Designation,

		RoomNumber:   inv.RoomNumber,
		RoomType:     inv.RoomType,
		NumberOfDays: inv.NumberOfDays,
		CheckIn:      inv.CheckIn,
		CheckOut:     inv.CheckOut,

		AdditionalGuests: inv.AdditionalGuests,
		PaymentMode:      inv.PaymentMode,

		RoomCharges:   inv.RoomCharges,
		Tariff:        inv.Tariff,
		FoodCharges:   inv.FoodCharges,
		Discount:      inv.Discount,
		AdvanceAmount: inv.AdvanceAmount,
		ShowGST:       inv.ShowGST,

		Items: items,
		Totals: billing.ChargeTotals{
			AdditionalGuestsTotal: inv.AdditionalGuestsTotal,
			BaseTotal:             inv.BaseTotal,
			GSTAmount:             inv.GSTAmount,
			RoundOff:              inv.RoundOff,
			TotalAmount:           inv.TotalAmount,
		},
	}
}

// manualChargeInputs maps an operator-entered bill to calculator inputs.
// Round-off is taken verbatim; a missing value coerces to zero rather than
// triggering the automatic rounding reserved for checkout.
func manualChargeInputs(req *models.ManualBillRequest, defaultGSTPercent float64) billing.ChargeInputs {
	gstPercent := billing.Amount(req.GSTPercent)
	if gstPercent <= 0 {
		gstPercent = defaultGSTPercent
	}

	return billing.ChargeInputs{
		RoomCharges:           billing.Amount(req.RoomCharges),
		Tariff:                billing.Amount(req.Tariff),
		FoodCharges:           billing.Amount(req.FoodCharges),
		AdditionalGuestCharge: billing.Amount(req.AdditionalGuestCharge),
		AdditionalGuests:      billing.Count(req.AdditionalGuests, 0),
		Discount:              billing.Amount(req.Discount),
		GSTEnabled:            req.GSTEnabled,
		ShowGST:               req.ShowGST,
		GSTPercent:            gstPercent,
		AdvanceAmount:         billing.Amount(req.AdvanceAmount),
		RoundOff:              billing.Amount(req.RoundOff),
	}
}

func foodOrderItems(orders []*models.FoodOrder) []models.InvoiceItem {
	var items []models.InvoiceItem
	for _, o := range orders {
		orderedAt := o.OrderedAt
		for _, line := range o.Items {
			items = append(items, models.InvoiceItem{
				Name:      line.Name,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				LineTotal: line.LineTotal,
				OrderedAt: &orderedAt,
			})
		}
	}
	return items
}

// stayDays bills any started day in full, one day minimum.
func stayDays(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	days := int(math.Ceil(hours / 24))
	if days < 1 {
		days = 1
	}
	return days
}

func paymentModeOrCash(mode string) string {
	if mode == "" {
		return models.PaymentModeCash
	}
	return mode
}
