package handlers

import (
	"context"
	"net/http"

	"hotel-backend/internal/services"
	"hotel-backend/pkg/utils"
)

type ReportHandler struct {
	Reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{Reports: reports}
}

// InvoicesCSV exports invoices as CSV, optionally filtered with ?type=.
func (h *ReportHandler) InvoicesCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.Reports.GenerateInvoicesCSV(context.Background(), r.URL.Query().Get("type"))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="invoices.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// BookingsCSV exports bookings as CSV, optionally filtered with ?status=.
func (h *ReportHandler) BookingsCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.Reports.GenerateBookingsCSV(context.Background(), r.URL.Query().Get("status"))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// InvoicesZIP bundles all invoice PDFs of a type into one download.
func (h *ReportHandler) InvoicesZIP(w http.ResponseWriter, r *http.Request) {
	pdfs, err := h.Reports.GenerateBulkInvoicePDFs(context.Background(), r.URL.Query().Get("type"))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	data, err := h.Reports.CreateBulkPDFZip(pdfs)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="invoices.zip"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
