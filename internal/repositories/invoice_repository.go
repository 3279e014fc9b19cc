package repositories

import (
	"context"

	"hotel-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRepository struct {
	DB *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

const invoiceColumns = `
	id, invoice_number, invoice_type, is_manual, COALESCE(manual_bill_number, ''),
	booking_id, guest_name, COALESCE(address, ''), COALESCE(state, ''),
	COALESCE(nationality, ''), COALESCE(gst_number, ''), COALESCE(mobile, ''),
	COALESCE(company_name, ''), COALESCE(company_code, ''),
	COALESCE(department, ''), COALESCE(designation, ''),
	COALESCE(room_number, ''), COALESCE(room_type, ''), number_of_days,
	check_in, check_out, additional_guests,
	room_charges, tariff, food_charges, additional_guests_total, discount,
	gst_enabled, show_gst, gst_percent, gst_amount, base_total,
	advance_amount, round_off, total_amount,
	payment_mode, payment_status, bill_date, created_at
`

func scanInvoice(row interface{ Scan(...interface{}) error }) (*models.Invoice, error) {
	inv := &models.Invoice{}
	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.InvoiceType, &inv.IsManual, &inv.ManualBillNumber,
		&inv.BookingID, &inv.GuestName, &inv.Address, &inv.State,
		&inv.Nationality, &inv.GSTNumber, &inv.Mobile,
		&inv.CompanyName, &inv.CompanyCode,
		&inv.Department, &inv.Designation,
		&inv.RoomNumber, &inv.RoomType, &inv.NumberOfDays,
		&inv.CheckIn, &inv.CheckOut, &inv.AdditionalGuests,
		&inv.RoomCharges, &inv.Tariff, &inv.FoodCharges, &inv.AdditionalGuestsTotal, &inv.Discount,
		&inv.GSTEnabled, &inv.ShowGST, &inv.GSTPercent, &inv.GSTAmount, &inv.BaseTotal,
		&inv.AdvanceAmount, &inv.RoundOff, &inv.TotalAmount,
		&inv.PaymentMode, &inv.PaymentStatus, &inv.BillDate, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// Create persists the invoice with its line items in one transaction.
func (r *InvoiceRepository) Create(ctx context.Context, inv *models.Invoice) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO invoices (
			invoice_number, invoice_type, is_manual, manual_bill_number, booking_id,
			guest_name, address, state, nationality, gst_number, mobile,
			company_name, company_code, department, designation,
			room_number, room_type, number_of_days, check_in, check_out, additional_guests,
			room_charges, tariff, food_charges, additional_guests_total, discount,
			gst_enabled, show_gst, gst_percent, gst_amount, base_total,
			advance_amount, round_off, total_amount,
			payment_mode, payment_status, bill_date
		)
		VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
			$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33,$34,$35,$36,$37
		)
		RETURNING id, created_at
	`,
		inv.InvoiceNumber, inv.InvoiceType, inv.IsManual, inv.ManualBillNumber, inv.BookingID,
		inv.GuestName, inv.Address, inv.State, inv.Nationality, inv.GSTNumber, inv.Mobile,
		inv.CompanyName, inv.CompanyCode, inv.Department, inv.Designation,
		inv.RoomNumber, inv.RoomType, inv.NumberOfDays, inv.CheckIn, inv.CheckOut, inv.AdditionalGuests,
		inv.RoomCharges, inv.Tariff, inv.FoodCharges, inv.AdditionalGuestsTotal, inv.Discount,
		inv.GSTEnabled, inv.ShowGST, inv.GSTPercent, inv.GSTAmount, inv.BaseTotal,
		inv.AdvanceAmount, inv.RoundOff, inv.TotalAmount,
		inv.PaymentMode, inv.PaymentStatus, inv.BillDate,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return err
	}

	for i := range inv.Items {
		item := &inv.Items[i]
		item.InvoiceID = inv.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO invoice_items (invoice_id, name, quantity, unit_price, line_total, ordered_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, inv.ID, item.Name, item.Quantity, item.UnitPrice, item.LineTotal, item.OrderedAt).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByNumber reads an invoice back verbatim, items included. Re-downloads
// rebuild the bill from this record without recomputing anything.
func (r *InvoiceRepository) GetByNumber(ctx context.Context, number string) (*models.Invoice, error) {
	inv, err := scanInvoice(r.DB.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE invoice_number = $1`, number))
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, `
		SELECT id, invoice_id, name, quantity, unit_price, line_total, ordered_at
		FROM invoice_items WHERE invoice_id = $1 ORDER BY id
	`, inv.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.InvoiceItem
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.Name, &item.Quantity,
			&item.UnitPrice, &item.LineTotal, &item.OrderedAt); err != nil {
			return nil, err
		}
		inv.Items = append(inv.Items, item)
	}
	return inv, nil
}

func (r *InvoiceRepository) List(ctx context.Context, invoiceType string) ([]*models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	args := []interface{}{}
	if invoiceType != "" {
		query += ` WHERE invoice_type = $1`
		args = append(args, invoiceType)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

// SumFoodInvoicesByBooking totals the booking's already-generated food-type
// invoices, for the combined-food-bill checkout.
func (r *InvoiceRepository) SumFoodInvoicesByBooking(ctx context.Context, bookingID int) (float64, error) {
	var sum float64
	err := r.DB.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM invoices
		WHERE booking_id = $1 AND invoice_type = $2
	`, bookingID, models.InvoiceTypeFood).Scan(&sum)
	return sum, err
}

func (r *InvoiceRepository) UpdatePaymentStatus(ctx context.Context, invoiceNumber, status string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE invoices SET payment_status = $1 WHERE invoice_number = $2`,
		status, invoiceNumber)
	return err
}

// CountSince powers dashboard counters.
func (r *InvoiceRepository) CountSince(ctx context.Context, since string) (int, error) {
	var n int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM invoices WHERE created_at >= $1::timestamptz`, since).Scan(&n)
	return n, err
}
