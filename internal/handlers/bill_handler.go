package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"hotel-backend/internal/cache"
	"hotel-backend/internal/models"
	"hotel-backend/internal/services"
	"hotel-backend/pkg/utils"
)

type BillHandler struct {
	Bills *services.BillService
}

func NewBillHandler(bills *services.BillService) *BillHandler {
	return &BillHandler{Bills: bills}
}

// CreateManualBill generates a bill straight from operator input and streams
// back the PDF.
func (h *BillHandler) CreateManualBill(w http.ResponseWriter, r *http.Request) {
	var req models.ManualBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.GuestName == "" {
		utils.Error(w, http.StatusBadRequest, "Guest name is required")
		return
	}

	inv, pdfData, err := h.Bills.GenerateManualBill(context.Background(), &req)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.InvalidateDashboard(context.Background())
	utils.PDF(w, "manual-bill-"+inv.InvoiceNumber+".pdf", pdfData)
}

// DownloadInvoicePDF re-renders a stored invoice verbatim.
func (h *BillHandler) DownloadInvoicePDF(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	inv, pdfData, err := h.Bills.RenderByNumber(context.Background(), number)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Invoice not found")
		return
	}

	prefix := "invoice-"
	switch inv.InvoiceType {
	case models.InvoiceTypeFood:
		prefix = "food-bill-"
	case models.InvoiceTypeManual:
		prefix = "manual-bill-"
	}
	utils.PDF(w, prefix+inv.InvoiceNumber+".pdf", pdfData)
}
