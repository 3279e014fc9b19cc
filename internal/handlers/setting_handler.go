package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"hotel-backend/internal/models"
	"hotel-backend/internal/services"
	"hotel-backend/pkg/utils"
)

type SettingHandler struct {
	Settings *services.HotelSettingService
}

func NewSettingHandler(settings *services.HotelSettingService) *SettingHandler {
	return &SettingHandler{Settings: settings}
}

func (h *SettingHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Settings.Get(context.Background())
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Hotel settings not configured")
		return
	}
	utils.JSON(w, http.StatusOK, settings)
}

func (h *SettingHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateHotelSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		utils.Error(w, http.StatusBadRequest, "Hotel name is required")
		return
	}

	settings, err := h.Settings.Update(context.Background(), &req)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, settings)
}
