package services

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sync"

	"hotel-backend/internal/billing"
	"hotel-backend/internal/models"
	"hotel-backend/internal/repositories"
)

// ReportService exports invoice data for accounting: CSV summaries and bulk
// PDF archives.
type ReportService struct {
	Settings *repositories.HotelSettingRepository
	Invoices *repositories.InvoiceRepository
	Bookings *repositories.BookingRepository
}

func NewReportService(
	settings *repositories.HotelSettingRepository,
	invoices *repositories.InvoiceRepository,
	bookings *repositories.BookingRepository,
) *ReportService {
	return &ReportService{Settings: settings, Invoices: invoices, Bookings: bookings}
}

// GenerateInvoicesCSV exports all invoices of the given type ("" for all) as
// a flat CSV for the accountant.
func (s *ReportService) GenerateInvoicesCSV(ctx context.Context, invoiceType string) ([]byte, error) {
	invoices, err := s.Invoices.List(ctx, invoiceType)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{
		"#", "Invoice", "Type", "Date", "Guest", "Room",
		"Room Charges", "Food Charges", "Discount", "GST", "Advance", "Round Off",
		"Total", "Mode", "Status",
	})

	for i, inv := range invoices {
		w.Write([]string{
			fmt.Sprintf("%d", i+1),
			inv.InvoiceNumber,
			inv.InvoiceType,
			billing.FormatBillDate(inv.BillDate),
			inv.GuestName,
			inv.RoomNumber,
			fmt.Sprintf("%.2f", inv.RoomCharges+inv.Tariff+inv.AdditionalGuestsTotal),
			fmt.Sprintf("%.2f", inv.FoodCharges),
			fmt.Sprintf("%.2f", inv.Discount),
			fmt.Sprintf("%.2f", inv.GSTAmount),
			fmt.Sprintf("%.2f", inv.AdvanceAmount),
			fmt.Sprintf("%.2f", inv.RoundOff),
			fmt.Sprintf("%.2f", inv.TotalAmount),
			inv.PaymentMode,
			inv.PaymentStatus,
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateBookingsCSV exports bookings, optionally filtered by status.
func (s *ReportService) GenerateBookingsCSV(ctx context.Context, status string) ([]byte, error) {
	bookings, err := s.Bookings.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{
		"#", "Guest", "Mobile", "Room", "Room Type", "Check-In", "Check-Out",
		"Room Price", "Tariff", "Extra Guests", "Advance", "Status",
	})

	for i, b := range bookings {
		checkOut := ""
		if b.CheckOut != nil {
			checkOut = billing.FormatBillDateTime(*b.CheckOut)
		}
		w.Write([]string{
			fmt.Sprintf("%d", i+1),
			b.GuestName,
			b.Mobile,
			b.RoomNumber,
			b.RoomType,
			billing.FormatBillDateTime(b.CheckIn),
			checkOut,
			fmt.Sprintf("%.2f", b.RoomPrice),
			fmt.Sprintf("%.2f", b.Tariff),
			fmt.Sprintf("%d", b.AdditionalGuests),
			fmt.Sprintf("%.2f", b.AdvanceAmount),
			b.Status,
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateBulkInvoicePDFs re-renders all invoices of a type in parallel,
// keyed by invoice number.
func (s *ReportService) GenerateBulkInvoicePDFs(ctx context.Context, invoiceType string) (map[string][]byte, error) {
	invoices, err := s.Invoices.List(ctx, invoiceType)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	settings, err := s.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load hotel settings: %w", err)
	}
	hotel := HotelInfoFromSettings(settings)

	type pdfResult struct {
		number string
		data   []byte
		err    error
	}

	jobs := make(chan *models.Invoice, len(invoices))
	results := make(chan pdfResult, len(invoices))

	// Start 5 workers for PDF generation
	var wg sync.WaitGroup
	numWorkers := 5
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for inv := range jobs {
				// Line items are loaded per invoice; the list query skips them.
				full, err := s.Invoices.GetByNumber(ctx, inv.InvoiceNumber)
				if err != nil {
					results <- pdfResult{number: inv.InvoiceNumber, err: err}
					continue
				}
				data, err := billing.RenderInvoice(hotel, BillDataFromInvoice(full))
				results <- pdfResult{number: inv.InvoiceNumber, data: data, err: err}
			}
		}()
	}

	for _, inv := range invoices {
		jobs <- inv
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	pdfs := make(map[string][]byte)
	for r := range results {
		if r.err == nil && r.data != nil {
			pdfs[r.number] = r.data
		}
	}
	return pdfs, nil
}

// CreateBulkPDFZip packs rendered invoices into one ZIP download.
func (s *ReportService) CreateBulkPDFZip(pdfs map[string][]byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for number, pdfData := range pdfs {
		fw, err := zw.Create(fmt.Sprintf("invoice_%s.pdf", number))
		if err != nil {
			continue
		}
		fw.Write(pdfData)
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
