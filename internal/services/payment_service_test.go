package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-backend/internal/config"
)

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	cfg := &config.Config{}
	cfg.Razorpay.WebhookSecret = "whsec_test"
	svc := NewPaymentService(cfg, nil, nil)

	body := []byte(`{"event":"payment.captured"}`)

	assert.NoError(t, svc.VerifyWebhookSignature(body, signBody("whsec_test", body)))

	err := svc.VerifyWebhookSignature(body, signBody("wrong_secret", body))
	assert.ErrorIs(t, err, ErrInvalidSignature)

	err = svc.VerifyWebhookSignature([]byte(`{"event":"tampered"}`), signBody("whsec_test", body))
	assert.ErrorIs(t, err, ErrInvalidSignature)

	err = svc.VerifyWebhookSignature(body, "")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestCreateOrderDisabledWithoutKeys(t *testing.T) {
	cfg := &config.Config{}
	svc := NewPaymentService(cfg, nil, nil)

	_, err := svc.CreateOrder(context.Background(), "INV-1717250000000-AB12CD34E")
	assert.ErrorIs(t, err, ErrPaymentsDisabled)
}
