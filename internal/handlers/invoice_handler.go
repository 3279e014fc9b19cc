package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"hotel-backend/internal/repositories"
	"hotel-backend/pkg/utils"
)

type InvoiceHandler struct {
	Invoices *repositories.InvoiceRepository
}

func NewInvoiceHandler(invoices *repositories.InvoiceRepository) *InvoiceHandler {
	return &InvoiceHandler{Invoices: invoices}
}

// ListInvoices supports ?type=ROOM / FOOD / MANUAL filters.
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.Invoices.List(context.Background(), r.URL.Query().Get("type"))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, invoices)
}

// GetInvoiceByNumber returns the stored record, line items included.
func (h *InvoiceHandler) GetInvoiceByNumber(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	invoice, err := h.Invoices.GetByNumber(context.Background(), number)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Invoice not found")
		return
	}
	utils.JSON(w, http.StatusOK, invoice)
}
