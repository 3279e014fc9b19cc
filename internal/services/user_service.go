package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"hotel-backend/internal/auth"
	"hotel-backend/internal/models"
	"hotel-backend/internal/repositories"
)

// ErrInvalidCredentials is returned on any login failure so callers cannot
// distinguish an unknown email from a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrTOTPRequired signals that login step one succeeded but the account has
// 2FA enabled; the caller must finish with a TOTP code.
var ErrTOTPRequired = errors.New("totp verification required")

// UserService handles accounts and login.
type UserService struct {
	Users *repositories.UserRepository
	JWT   *auth.JWTManager
	TOTP  *TOTPService
}

func NewUserService(users *repositories.UserRepository, jwtManager *auth.JWTManager, totp *TOTPService) *UserService {
	return &UserService{Users: users, JWT: jwtManager, TOTP: totp}
}

// Signup creates the first account as a manager; later self-signups default
// to staff.
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := models.RoleStaff
	existing, err := s.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if len(existing) == 0 {
		role = models.RoleManager
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.JWT.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	log.Printf("[User] Account created for %s (%s)", user.Email, user.Role)
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login verifies credentials. Accounts with 2FA enabled get a short-lived
// temp token and ErrTOTPRequired; the session token comes from LoginTOTP.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive || !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	if user.TOTPEnabled {
		tempToken, err := s.JWT.GenerateTempToken(user)
		if err != nil {
			return nil, fmt.Errorf("generate temp token: %w", err)
		}
		return &models.AuthResponse{Token: tempToken, User: user}, ErrTOTPRequired
	}

	token, err := s.JWT.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// LoginTOTP finishes a 2FA login: temp token from step one plus a code.
func (s *UserService) LoginTOTP(ctx context.Context, tempToken, code string) (*models.AuthResponse, error) {
	claims, err := s.JWT.ValidateTempToken(tempToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.Users.Get(ctx, claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	ok, err := s.TOTP.Verify(ctx, user.ID, code)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	token, err := s.JWT.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// CreateUser is the manager-only path for adding staff and chef accounts.
func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	role := req.Role
	switch role {
	case models.RoleManager, models.RoleStaff, models.RoleChef:
	default:
		role = models.RoleStaff
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	return s.Users.Get(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.Users.List(ctx)
}
