package repositories

import (
	"context"
	"errors"

	"hotel-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrAlreadyCheckedOut is returned when a checkout is attempted twice.
var ErrAlreadyCheckedOut = errors.New("booking already checked out")

type BookingRepository struct {
	DB *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{DB: db}
}

const bookingColumns = `
	b.id, b.guest_name, COALESCE(b.address, ''), COALESCE(b.state, ''),
	COALESCE(b.nationality, ''), COALESCE(b.gst_number, ''), COALESCE(b.mobile, ''),
	COALESCE(b.id_type, ''), COALESCE(b.id_number, ''),
	COALESCE(b.company_name, ''), COALESCE(b.company_code, ''),
	COALESCE(b.department, ''), COALESCE(b.designation, ''),
	b.room_id, COALESCE(r.number, ''), COALESCE(t.name, ''),
	b.room_price, b.tariff, b.additional_guest_charge, b.additional_guests,
	b.advance_amount, b.check_in, b.check_out, b.status, b.created_at, b.updated_at
`

func scanBooking(row interface{ Scan(...interface{}) error }) (*models.Booking, error) {
	b := &models.Booking{}
	err := row.Scan(
		&b.ID, &b.GuestName, &b.Address, &b.State,
		&b.Nationality, &b.GSTNumber, &b.Mobile,
		&b.IDType, &b.IDNumber,
		&b.CompanyName, &b.CompanyCode,
		&b.Department, &b.Designation,
		&b.RoomID, &b.RoomNumber, &b.RoomType,
		&b.RoomPrice, &b.Tariff, &b.AdditionalGuestCharge, &b.AdditionalGuests,
		&b.AdvanceAmount, &b.CheckIn, &b.CheckOut, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	query := `
		INSERT INTO bookings (
			guest_name, address, state, nationality, gst_number, mobile,
			id_type, id_number, company_name, company_code, department, designation,
			room_id, room_price, tariff, additional_guest_charge, additional_guests,
			advance_amount, check_in, status
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRow(ctx, query,
		b.GuestName, b.Address, b.State, b.Nationality, b.GSTNumber, b.Mobile,
		b.IDType, b.IDNumber, b.CompanyName, b.CompanyCode, b.Department, b.Designation,
		b.RoomID, b.RoomPrice, b.Tariff, b.AdditionalGuestCharge, b.AdditionalGuests,
		b.AdvanceAmount, b.CheckIn, models.BookingCheckedIn,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BookingRepository) Get(ctx context.Context, id int) (*models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		LEFT JOIN rooms r ON b.room_id = r.id
		LEFT JOIN room_types t ON r.room_type_id = t.id
		WHERE b.id = $1
	`
	return scanBooking(r.DB.QueryRow(ctx, query, id))
}

func (r *BookingRepository) List(ctx context.Context, status string) ([]*models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		LEFT JOIN rooms r ON b.room_id = r.id
		LEFT JOIN room_types t ON r.room_type_id = t.id
	`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE b.status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY b.created_at DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// MarkCheckedOut flips a booking to CHECKED_OUT exactly once. The status
// guard in the WHERE clause makes a double checkout fail cleanly instead of
// producing a second invoice.
func (r *BookingRepository) MarkCheckedOut(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE bookings
		SET status = $1, check_out = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND status = $3
	`, models.BookingCheckedOut, id, models.BookingCheckedIn)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyCheckedOut
	}
	return nil
}

// CountByStatus powers the occupancy figures on the dashboard.
func (r *BookingRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE status = $1`, status).Scan(&n)
	return n, err
}
