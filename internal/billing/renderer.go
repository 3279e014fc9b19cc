package billing

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
)

// HotelInfo is the settings snapshot printed on every bill, fetched once per
// render by the caller.
type HotelInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
	GSTIN   string
}

// LineItem is one billed row (a food order line or a manual charge).
type LineItem struct {
	Name      string
	Quantity  int
	UnitPrice float64
	LineTotal float64
	OrderedAt *time.Time
}

// BillData is the normalized render input: charge totals plus guest, room and
// company metadata. Constructed fresh per render, never mutated after.
type BillData struct {
	InvoiceNumber    string
	ManualBillNumber string
	BillDate         time.Time

	GuestName   string
	Address     string
	State       string
	Nationality string
	GSTNumber   string
	Mobile      string

	CompanyName string
	CompanyCode string
	Department  string
	Designation string

	RoomNumber   string
	RoomType     string
	NumberOfDays int
	CheckIn      time.Time
	CheckOut     time.Time

	AdditionalGuests int
	PaymentMode      string

	RoomCharges   float64
	Tariff        float64
	FoodCharges   float64
	Discount      float64
	AdvanceAmount float64
	ShowGST       bool

	Items  []LineItem
	Totals ChargeTotals
}

// RentPerDay derives the printed per-day room rate from the total room
// charges and the day count.
func (b BillData) RentPerDay() float64 {
	if b.NumberOfDays > 0 {
		return b.RoomCharges / float64(b.NumberOfDays)
	}
	return b.RoomCharges
}

// summaryRow is one right-aligned label/value pair in the charges summary.
type summaryRow struct {
	Label string
	Value float64
}

// summaryRows builds the charges-summary block in its fixed order. The "Total
// Bill Amount" row is the sum of the visible charge rows above it; the net
// payable printed below the rule comes from Totals.TotalAmount and is not
// recomputed here.
func summaryRows(b BillData) []summaryRow {
	roomBeforeTax := b.RoomCharges + b.Tariff + b.Totals.AdditionalGuestsTotal

	rows := []summaryRow{{Label: "Room Charges", Value: roomBeforeTax}}
	if b.ShowGST && b.Totals.GSTAmount > 0 {
		rows = append(rows, summaryRow{Label: "GST on Room Charges", Value: b.Totals.GSTAmount})
	}
	if b.FoodCharges > 0 {
		rows = append(rows, summaryRow{Label: "Food Charges", Value: b.FoodCharges})
	}
	if b.ShowGST && b.Totals.GSTOnFood > 0 {
		rows = append(rows, summaryRow{Label: "GST on Food Charges", Value: b.Totals.GSTOnFood})
	}

	var billTotal float64
	for _, r := range rows {
		billTotal += r.Value
	}
	rows = append(rows, summaryRow{Label: "Total Bill Amount", Value: billTotal})

	if b.AdvanceAmount > 0 {
		rows = append(rows, summaryRow{Label: "Advance Paid", Value: b.AdvanceAmount})
	}
	if b.Totals.RoundOff != 0 {
		rows = append(rows, summaryRow{Label: "Round Off", Value: b.Totals.RoundOff})
	}
	return rows
}

// RenderInvoice lays out a single fixed-format A4 bill. It is a best-effort
// template fill: content overflowing the page is not paginated.
func RenderInvoice(hotel HotelInfo, bill BillData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddPage()

	renderHeader(pdf, hotel, bill)
	renderMetaLine(pdf, bill)
	renderRoomTable(pdf, bill)
	renderGuestBlock(pdf, bill)
	renderCompanyTable(pdf, bill)
	renderItemsTable(pdf, bill)
	renderSummary(pdf, bill)
	renderFooter(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func renderHeader(pdf *gofpdf.Fpdf, hotel HotelInfo, bill BillData) {
	// Logo placeholder box on the left of the name block
	pdf.Rect(10, 10, 22, 22, "D")

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, strings.ToUpper(hotel.Name), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 5, hotel.Address, "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 5, "Phone: "+hotel.Phone, "", 1, "C", false, 0, "")
	if hotel.Email != "" {
		pdf.CellFormat(190, 5, "Email: "+hotel.Email, "", 1, "C", false, 0, "")
	}
	if hotel.GSTIN != "" && bill.ShowGST {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(190, 5, "GSTIN: "+hotel.GSTIN, "", 1, "C", false, 0, "")
	}

	pdf.Ln(2)
	x, y := pdf.GetX(), pdf.GetY()
	pdf.Line(x, y, x+190, y)
	pdf.Ln(3)
}

func renderMetaLine(pdf *gofpdf.Fpdf, bill BillData) {
	pdf.SetFont("Arial", "", 10)

	manual := ""
	if bill.ManualBillNumber != "" {
		manual = "Bill No: " + bill.ManualBillNumber
	}
	pdf.CellFormat(63, 7, manual, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(64, 7, "Invoice: "+bill.InvoiceNumber, "", 0, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(63, 7, "Date: "+FormatBillDate(bill.BillDate), "", 1, "R", false, 0, "")
	pdf.Ln(2)
}

func renderRoomTable(pdf *gofpdf.Fpdf, bill BillData) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(47, 7, "Room No", "1", 0, "C", true, 0, "")
	pdf.CellFormat(48, 7, "Room Type", "1", 0, "C", true, 0, "")
	pdf.CellFormat(48, 7, "Rent / Day", "1", 0, "C", true, 0, "")
	pdf.CellFormat(47, 7, "No. of Days", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(47, 7, bill.RoomNumber, "1", 0, "C", false, 0, "")
	pdf.CellFormat(48, 7, bill.RoomType, "1", 0, "C", false, 0, "")
	pdf.CellFormat(48, 7, FormatRupees(bill.RentPerDay()), "1", 0, "C", false, 0, "")
	pdf.CellFormat(47, 7, fmt.Sprintf("%d", bill.NumberOfDays), "1", 1, "C", false, 0, "")
	pdf.Ln(3)
}

func renderGuestBlock(pdf *gofpdf.Fpdf, bill BillData) {
	top := pdf.GetY()
	const colW = 95.0
	lineH := 5.5

	// Left column: guest identity
	pdf.SetXY(10, top+2)
	guestLine(pdf, colW, lineH, "Guest Name", bill.GuestName)
	if bill.Address != "" {
		pdf.SetX(12)
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(colW-4, lineH, "Address: "+bill.Address, "", "L", false)
	}
	if bill.State != "" {
		guestLine(pdf, colW, lineH, "State", bill.State)
	}
	if bill.Nationality != "" {
		guestLine(pdf, colW, lineH, "Nationality", bill.Nationality)
	}
	if bill.GSTNumber != "" && bill.ShowGST {
		guestLine(pdf, colW, lineH, "GST No", bill.GSTNumber)
	}
	if bill.Mobile != "" {
		guestLine(pdf, colW, lineH, "Mobile", bill.Mobile)
	}
	leftEnd := pdf.GetY()

	// Right column: stay details
	pdf.SetXY(10+colW, top+2)
	stayLine(pdf, colW, lineH, "Check-In", FormatBillDateTime(bill.CheckIn))
	stayLine(pdf, colW, lineH, "Check-Out", FormatBillDateTime(bill.CheckOut))
	adults := bill.AdditionalGuests + 1
	stayLine(pdf, colW, lineH, "Adults", fmt.Sprintf("%d", adults))
	// The bill record never tracks a separate children count.
	stayLine(pdf, colW, lineH, "Children", "0")
	stayLine(pdf, colW, lineH, "Total Guests", fmt.Sprintf("%d", adults))
	rightEnd := pdf.GetY()

	bottom := leftEnd
	if rightEnd > bottom {
		bottom = rightEnd
	}
	bottom += 2

	pdf.Rect(10, top, 190, bottom-top, "D")
	pdf.Line(10+colW, top, 10+colW, bottom)
	pdf.SetY(bottom + 3)
}

func guestLine(pdf *gofpdf.Fpdf, w, h float64, label, value string) {
	pdf.SetX(12)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(w-4, h, label+": "+value, "", 1, "L", false, 0, "")
}

func stayLine(pdf *gofpdf.Fpdf, w, h float64, label, value string) {
	pdf.SetX(12 + w)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(w-4, h, label+": "+value, "", 1, "L", false, 0, "")
}

func renderCompanyTable(pdf *gofpdf.Fpdf, bill BillData) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(80, 7, "Company Name", "1", 0, "C", true, 0, "")
	pdf.CellFormat(55, 7, "Department / Code", "1", 0, "C", true, 0, "")
	pdf.CellFormat(55, 7, "Designation", "1", 1, "C", true, 0, "")

	dept := bill.Department
	if bill.CompanyCode != "" {
		if dept != "" {
			dept += " / "
		}
		dept += bill.CompanyCode
	}

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(80, 7, bill.CompanyName, "1", 0, "C", false, 0, "")
	pdf.CellFormat(55, 7, dept, "1", 0, "C", false, 0, "")
	// Designation is collected upstream but never threaded into the printed
	// table; it stays blank here.
	pdf.CellFormat(55, 7, "", "1", 1, "C", false, 0, "")
	pdf.Ln(3)
}

func renderItemsTable(pdf *gofpdf.Fpdf, bill BillData) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(35, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(80, 7, "Item", "1", 0, "C", true, 0, "")
	pdf.CellFormat(27, 7, "Rate", "1", 0, "C", true, 0, "")
	pdf.CellFormat(28, 7, "Amount", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	if len(bill.Items) == 0 {
		// Keep the table border visible even when there is nothing to bill.
		pdf.CellFormat(35, 7, "", "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 7, "", "1", 0, "C", false, 0, "")
		pdf.CellFormat(80, 7, "", "1", 0, "C", false, 0, "")
		pdf.CellFormat(27, 7, "", "1", 0, "C", false, 0, "")
		pdf.CellFormat(28, 7, "", "1", 1, "C", false, 0, "")
	}
	for _, item := range bill.Items {
		when := FormatBillDate(bill.BillDate)
		if item.OrderedAt != nil {
			when = FormatBillDateTime(*item.OrderedAt)
		}
		name := item.Name
		if len(name) > 45 {
			name = name[:42] + "..."
		}
		pdf.CellFormat(35, 6, when, "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(80, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(27, 6, GroupDigits(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 6, GroupDigits(item.LineTotal), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)
}

func renderSummary(pdf *gofpdf.Fpdf, bill BillData) {
	const labelW, valueW = 50.0, 40.0
	left := 10 + 190 - labelW - valueW

	pdf.SetFont("Arial", "", 10)
	for _, row := range summaryRows(bill) {
		if row.Label == "Total Bill Amount" {
			// Payment mode sits between the charge rows and the bill total.
			pdf.SetX(left)
			pdf.CellFormat(labelW, 6, "Payment Mode", "", 0, "R", false, 0, "")
			pdf.CellFormat(valueW, 6, bill.PaymentMode, "", 1, "R", false, 0, "")
		}
		pdf.SetX(left)
		pdf.CellFormat(labelW, 6, row.Label, "", 0, "R", false, 0, "")
		pdf.CellFormat(valueW, 6, FormatRupees(row.Value), "", 1, "R", false, 0, "")
	}

	y := pdf.GetY() + 1
	pdf.Line(left, y, left+labelW+valueW, y)
	pdf.Ln(2)

	pdf.SetX(left)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(labelW, 8, "Net Payable Amount", "", 0, "R", false, 0, "")
	pdf.CellFormat(valueW, 8, FormatRupees(bill.Totals.TotalAmount), "", 1, "R", false, 0, "")
}

func renderFooter(pdf *gofpdf.Fpdf) {
	// Pinned near the bottom margin regardless of the content above.
	pdf.SetY(-45)
	pdf.SetFont("Arial", "I", 8)
	pdf.MultiCell(190, 4,
		"I agree that I am responsible for the full payment of this bill in the "+
			"event it is not paid by the company, organisation or person indicated above.",
		"", "L", false)

	pdf.SetY(-25)
	pdf.SetFont("Arial", "", 9)
	pdf.Line(15, pdf.GetY(), 75, pdf.GetY())
	pdf.Line(135, pdf.GetY(), 195, pdf.GetY())
	pdf.CellFormat(90, 6, "Cashier's Signature", "", 0, "L", false, 0, "")
	pdf.CellFormat(100, 6, "Guest's Signature", "", 1, "R", false, 0, "")
}
