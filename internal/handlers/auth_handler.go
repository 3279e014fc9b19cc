package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"hotel-backend/internal/models"
	"hotel-backend/internal/services"
	"hotel-backend/pkg/utils"
)

type AuthHandler struct {
	Users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	resp, err := h.Users.Signup(context.Background(), &req)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Users.Login(context.Background(), &req)
	if errors.Is(err, services.ErrTOTPRequired) {
		// Step one passed; the client must follow up with a TOTP code.
		utils.JSON(w, http.StatusOK, map[string]interface{}{
			"totp_required": true,
			"temp_token":    resp.Token,
		})
		return
	}
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	utils.JSON(w, http.StatusOK, resp)
}

// LoginTOTP finishes a 2FA login.
func (h *AuthHandler) LoginTOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TempToken string `json:"temp_token"`
		Code      string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Users.LoginTOTP(context.Background(), req.TempToken, req.Code)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Invalid verification code")
		return
	}
	utils.JSON(w, http.StatusOK, resp)
}
