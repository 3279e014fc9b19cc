package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"

	razorpay "github.com/razorpay/razorpay-go"

	"hotel-backend/internal/config"
	"hotel-backend/internal/metrics"
	"hotel-backend/internal/models"
	"hotel-backend/internal/repositories"
)

var (
	ErrPaymentsDisabled = errors.New("online payments are not configured")
	ErrInvalidSignature = errors.New("webhook signature mismatch")
)

// PaymentService creates Razorpay orders for invoices and settles them from
// webhook deliveries.
type PaymentService struct {
	cfg      *config.Config
	client   *razorpay.Client
	Payments *repositories.PaymentRepository
	Invoices *repositories.InvoiceRepository
}

func NewPaymentService(cfg *config.Config, payments *repositories.PaymentRepository, invoices *repositories.InvoiceRepository) *PaymentService {
	s := &PaymentService{cfg: cfg, Payments: payments, Invoices: invoices}
	if cfg.Razorpay.KeyID != "" && cfg.Razorpay.KeySecret != "" {
		s.client = razorpay.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	} else {
		log.Printf("[Payment] Razorpay keys not set, online payments disabled")
	}
	return s
}

// CreateOrder opens a Razorpay order for an invoice's outstanding total.
// Amounts go to the gateway in paise.
func (s *PaymentService) CreateOrder(ctx context.Context, invoiceNumber string) (*models.PaymentOrderResponse, error) {
	if s.client == nil {
		return nil, ErrPaymentsDisabled
	}

	inv, err := s.Invoices.GetByNumber(ctx, invoiceNumber)
	if err != nil {
		return nil, fmt.Errorf("load invoice %s: %w", invoiceNumber, err)
	}
	if inv.PaymentStatus == models.PaymentPaid {
		return nil, fmt.Errorf("invoice %s is already paid", invoiceNumber)
	}

	amountPaise := int(inv.TotalAmount * 100)
	order, err := s.client.Order.Create(map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  inv.InvoiceNumber,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("create razorpay order: %w", err)
	}

	orderID, ok := order["id"].(string)
	if !ok {
		return nil, errors.New("razorpay order response missing id")
	}

	payment := &models.Payment{
		InvoiceID:       inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		RazorpayOrderID: orderID,
		Amount:          inv.TotalAmount,
	}
	if err := s.Payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("persist payment: %w", err)
	}

	log.Printf("[Payment] Order %s created for invoice %s (%.2f)", orderID, inv.InvoiceNumber, inv.TotalAmount)
	return &models.PaymentOrderResponse{
		OrderID:  orderID,
		Amount:   inv.TotalAmount,
		Currency: "INR",
		KeyID:    s.cfg.Razorpay.KeyID,
	}, nil
}

// VerifyWebhookSignature checks the X-Razorpay-Signature header against the
// raw body.
func (s *PaymentService) VerifyWebhookSignature(body []byte, signature string) error {
	mac := hmac.New(sha256.New, []byte(s.cfg.Razorpay.WebhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		metrics.PaymentWebhooksTotal.WithLabelValues("invalid_signature").Inc()
		return ErrInvalidSignature
	}
	return nil
}

// HandlePaymentCaptured settles the payment row and its invoice after a
// payment.captured webhook.
func (s *PaymentService) HandlePaymentCaptured(ctx context.Context, orderID, razorpayPaymentID string) error {
	payment, err := s.Payments.GetByOrderID(ctx, orderID)
	if err != nil {
		metrics.PaymentWebhooksTotal.WithLabelValues("unknown_order").Inc()
		return fmt.Errorf("load payment for order %s: %w", orderID, err)
	}

	if err := s.Payments.MarkPaid(ctx, orderID, razorpayPaymentID); err != nil {
		return fmt.Errorf("mark payment paid: %w", err)
	}
	if err := s.Invoices.UpdatePaymentStatus(ctx, payment.InvoiceNumber, models.PaymentPaid); err != nil {
		return fmt.Errorf("mark invoice paid: %w", err)
	}

	metrics.PaymentWebhooksTotal.WithLabelValues("captured").Inc()
	log.Printf("[Payment] Invoice %s paid via order %s", payment.InvoiceNumber, orderID)
	return nil
}
