package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"hotel-backend/internal/models"
	"hotel-backend/internal/services"
	"hotel-backend/pkg/utils"
)

type PaymentHandler struct {
	Payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Payments: payments}
}

// CreateOrder opens a Razorpay order for an invoice.
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.InvoiceNumber == "" {
		utils.Error(w, http.StatusBadRequest, "Invoice number is required")
		return
	}

	resp, err := h.Payments.CreateOrder(context.Background(), req.InvoiceNumber)
	if errors.Is(err, services.ErrPaymentsDisabled) {
		utils.Error(w, http.StatusServiceUnavailable, "Online payments are not configured")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, resp)
}

// Webhook receives Razorpay event deliveries. The signature covers the raw
// body, so it is read before any decoding.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	signature := r.Header.Get("X-Razorpay-Signature")
	if err := h.Payments.VerifyWebhookSignature(body, signature); err != nil {
		utils.Error(w, http.StatusUnauthorized, "Invalid signature")
		return
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	event, _ := payload["event"].(string)
	if event != "payment.captured" {
		// Acknowledge everything else so Razorpay stops retrying.
		utils.JSON(w, http.StatusOK, map[string]string{"status": "ignored"})
		return
	}

	data, _ := payload["payload"].(map[string]interface{})
	payment, _ := data["payment"].(map[string]interface{})
	entity, _ := payment["entity"].(map[string]interface{})
	orderID, _ := entity["order_id"].(string)
	paymentID, _ := entity["id"].(string)
	if orderID == "" || paymentID == "" {
		utils.Error(w, http.StatusBadRequest, "Payload missing order or payment id")
		return
	}

	if err := h.Payments.HandlePaymentCaptured(context.Background(), orderID, paymentID); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
