package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"

	"hotel-backend/internal/billing"
	"hotel-backend/internal/models"
	"hotel-backend/internal/repositories"
	"hotel-backend/internal/timeutil"
)

// PoliceReportService prints the daily guest register handed to the local
// police station. Government ID numbers are always masked on this report.
type PoliceReportService struct {
	Settings *repositories.HotelSettingRepository
	Bookings *repositories.BookingRepository
}

func NewPoliceReportService(settings *repositories.HotelSettingRepository, bookings *repositories.BookingRepository) *PoliceReportService {
	return &PoliceReportService{Settings: settings, Bookings: bookings}
}

// GenerateGuestRegister renders the in-house guest list as an A4 PDF.
func (s *PoliceReportService) GenerateGuestRegister(ctx context.Context) ([]byte, error) {
	settings, err := s.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load hotel settings: %w", err)
	}
	bookings, err := s.Bookings.List(ctx, models.BookingCheckedIn)
	if err != nil {
		return nil, fmt.Errorf("list checked-in bookings: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 8, strings.ToUpper(settings.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(190, 7, "Guest Register - Police Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(190, 5, "Generated: "+billing.FormatBillDateTime(timeutil.Now()), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(10, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Guest Name", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Nationality", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Room", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Check-In", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "ID Number", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for i, b := range bookings {
		masked := billing.MaskIDNumber(b.IDNumber, b.IDType)
		pdf.CellFormat(10, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, b.GuestName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, b.Nationality, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, b.RoomNumber, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, billing.FormatBillDateTime(b.CheckIn), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, masked, "1", 1, "C", false, 0, "")
	}
	if len(bookings) == 0 {
		pdf.CellFormat(190, 6, "No guests currently checked in", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}
