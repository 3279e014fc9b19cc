package models

import "time"

// Payment tracks an online payment attempt against an invoice.
type Payment struct {
	ID                int       `json:"id"`
	InvoiceID         int       `json:"invoice_id"`
	InvoiceNumber     string    `json:"invoice_number"`
	RazorpayOrderID   string    `json:"razorpay_order_id"`
	RazorpayPaymentID string    `json:"razorpay_payment_id"`
	Amount            float64   `json:"amount"`
	Status            string    `json:"status"` // PENDING or PAID
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CreatePaymentOrderRequest starts an online payment for an invoice.
type CreatePaymentOrderRequest struct {
	InvoiceNumber string `json:"invoice_number"`
}

// PaymentOrderResponse is returned to the client for the Razorpay widget.
type PaymentOrderResponse struct {
	OrderID  string  `json:"order_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	KeyID    string  `json:"key_id"`
}
