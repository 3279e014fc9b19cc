package repositories

import (
	"context"

	"hotel-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	return r.DB.QueryRow(ctx, `
		INSERT INTO payments (invoice_id, invoice_number, razorpay_order_id, amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, p.InvoiceID, p.InvoiceNumber, p.RazorpayOrderID, p.Amount, models.PaymentPending,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	p := &models.Payment{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, invoice_id, invoice_number, razorpay_order_id,
		       COALESCE(razorpay_payment_id, ''), amount, status, created_at, updated_at
		FROM payments WHERE razorpay_order_id = $1
	`, orderID).Scan(&p.ID, &p.InvoiceID, &p.InvoiceNumber, &p.RazorpayOrderID,
		&p.RazorpayPaymentID, &p.Amount, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PaymentRepository) MarkPaid(ctx context.Context, orderID, razorpayPaymentID string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE payments
		SET status = $1, razorpay_payment_id = $2, updated_at = CURRENT_TIMESTAMP
		WHERE razorpay_order_id = $3
	`, models.PaymentPaid, razorpayPaymentID, orderID)
	return err
}

func (r *PaymentRepository) ListByInvoice(ctx context.Context, invoiceID int) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, invoice_id, invoice_number, razorpay_order_id,
		       COALESCE(razorpay_payment_id, ''), amount, status, created_at, updated_at
		FROM payments WHERE invoice_id = $1 ORDER BY created_at DESC
	`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.InvoiceNumber, &p.RazorpayOrderID,
			&p.RazorpayPaymentID, &p.Amount, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}
