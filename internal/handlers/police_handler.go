package handlers

import (
	"context"
	"net/http"

	"hotel-backend/internal/services"
	"hotel-backend/pkg/utils"
)

type PoliceHandler struct {
	Police *services.PoliceReportService
}

func NewPoliceHandler(police *services.PoliceReportService) *PoliceHandler {
	return &PoliceHandler{Police: police}
}

// GuestRegister prints the in-house guest list with masked ID numbers.
func (h *PoliceHandler) GuestRegister(w http.ResponseWriter, r *http.Request) {
	data, err := h.Police.GenerateGuestRegister(context.Background())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.PDF(w, "guest-register.pdf", data)
}
