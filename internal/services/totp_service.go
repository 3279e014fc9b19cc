package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"hotel-backend/internal/models"
	"hotel-backend/internal/repositories"
)

const totpIssuer = "HotelFrontDesk"

var (
	ErrNoTOTPSecret    = errors.New("2FA setup not initiated")
	ErrInvalidTOTPCode = errors.New("invalid verification code")
)

// TOTPService handles two-factor setup and verification for accounts.
type TOTPService struct {
	Users *repositories.UserRepository
}

func NewTOTPService(users *repositories.UserRepository) *TOTPService {
	return &TOTPService{Users: users}
}

// GenerateSetup creates a new TOTP secret and QR code for a user. The secret
// is stored but 2FA stays off until the first code is verified.
func (s *TOTPService) GenerateSetup(ctx context.Context, user *models.User) (*models.TOTPSetupResponse, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: user.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return nil, fmt.Errorf("generate totp key: %w", err)
	}

	if err := s.Users.SetTOTPSecret(ctx, user.ID, key.Secret()); err != nil {
		return nil, fmt.Errorf("store totp secret: %w", err)
	}

	qrImage, err := key.Image(200, 200)
	if err != nil {
		return nil, fmt.Errorf("render qr: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, qrImage); err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	return &models.TOTPSetupResponse{
		Secret:      key.Secret(),
		QRCode:      "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Issuer:      totpIssuer,
		AccountName: user.Email,
	}, nil
}

// VerifyAndEnable checks the first code against the stored secret and turns
// 2FA on for the account.
func (s *TOTPService) VerifyAndEnable(ctx context.Context, userID int, code string) error {
	secret, err := s.Users.GetTOTPSecret(ctx, userID)
	if err != nil {
		return fmt.Errorf("load totp secret: %w", err)
	}
	if secret == "" {
		return ErrNoTOTPSecret
	}
	if !totp.Validate(code, secret) {
		return ErrInvalidTOTPCode
	}
	return s.Users.EnableTOTP(ctx, userID)
}

// Verify validates a login-time TOTP code.
func (s *TOTPService) Verify(ctx context.Context, userID int, code string) (bool, error) {
	secret, err := s.Users.GetTOTPSecret(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("load totp secret: %w", err)
	}
	if secret == "" {
		return false, ErrNoTOTPSecret
	}
	return totp.Validate(code, secret), nil
}
