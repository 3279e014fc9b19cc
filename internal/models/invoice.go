package models

import "time"

// Invoice types and payment statuses.
const (
	InvoiceTypeRoom   = "ROOM"
	InvoiceTypeFood   = "FOOD"
	InvoiceTypeManual = "MANUAL"

	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"

	PaymentModeCash   = "CASH"
	PaymentModeOnline = "ONLINE"
)

// Invoice is the persisted bill record. Every charge component is stored
// flat so a re-download can rebuild the printed document verbatim, without
// recomputation.
type Invoice struct {
	ID               int    `json:"id"`
	InvoiceNumber    string `json:"invoice_number"`
	InvoiceType      string `json:"invoice_type"` // ROOM, FOOD or MANUAL
	IsManual         bool   `json:"is_manual"`
	ManualBillNumber string `json:"manual_bill_number"`
	BookingID        *int   `json:"booking_id"`

	GuestName   string `json:"guest_name"`
	Address     string `json:"address"`
	State       string `json:"state"`
	Nationality string `json:"nationality"`
	GSTNumber   string `json:"gst_number"`
	Mobile      string `json:"mobile"`

	CompanyName string `json:"company_name"`
	CompanyCode string `json:"company_code"`
	Department  string `json:"department"`
	Designation string `json:"designation"`

	RoomNumber       string    `json:"room_number"`
	RoomType         string    `json:"room_type"`
	NumberOfDays     int       `json:"number_of_days"`
	CheckIn          time.Time `json:"check_in"`
	CheckOut         time.Time `json:"check_out"`
	AdditionalGuests int       `json:"additional_guests"`

	RoomCharges           float64 `json:"room_charges"`
	Tariff                float64 `json:"tariff"`
	FoodCharges           float64 `json:"food_charges"`
	AdditionalGuestsTotal float64 `json:"additional_guests_total"`
	Discount              float64 `json:"discount"`
	GSTEnabled            bool    `json:"gst_enabled"`
	ShowGST               bool    `json:"show_gst"`
	GSTPercent            float64 `json:"gst_percent"`
	GSTAmount             float64 `json:"gst_amount"`
	BaseTotal             float64 `json:"base_total"`
	AdvanceAmount         float64 `json:"advance_amount"`
	RoundOff              float64 `json:"round_off"`
	TotalAmount           float64 `json:"total_amount"`

	PaymentMode   string    `json:"payment_mode"`
	PaymentStatus string    `json:"payment_status"`
	BillDate      time.Time `json:"bill_date"`
	CreatedAt     time.Time `json:"created_at"`

	Items []InvoiceItem `json:"items"`
}

// InvoiceItem is one billed line on an invoice.
type InvoiceItem struct {
	ID        int        `json:"id"`
	InvoiceID int        `json:"invoice_id"`
	Name      string     `json:"name"`
	Quantity  int        `json:"quantity"`
	UnitPrice float64    `json:"unit_price"`
	LineTotal float64    `json:"line_total"`
	OrderedAt *time.Time `json:"ordered_at,omitempty"`
}

// ManualBillRequest is the operator-filled form for a bill that is not tied
// to a booking. Charge fields are loosely typed and coerced with safe
// defaults, mirroring the checkout request.
type ManualBillRequest struct {
	ManualBillNumber string `json:"manual_bill_number"`

	GuestName   string `json:"guest_name"`
	Address     string `json:"address"`
	State       string `json:"state"`
	Nationality string `json:"nationality"`
	GSTNumber   string `json:"gst_number"`
	Mobile      string `json:"mobile"`

	CompanyName string `json:"company_name"`
	CompanyCode string `json:"company_code"`
	Department  string `json:"department"`
	Designation string `json:"designation"`

	RoomNumber   string      `json:"room_number"`
	RoomType     string      `json:"room_type"`
	NumberOfDays interface{} `json:"number_of_days"`
	CheckIn      time.Time   `json:"check_in"`
	CheckOut     time.Time   `json:"check_out"`

	RoomCharges           interface{} `json:"room_charges"`
	Tariff                interface{} `json:"tariff"`
	FoodCharges           interface{} `json:"food_charges"`
	AdditionalGuestCharge interface{} `json:"additional_guest_charge"`
	AdditionalGuests      interface{} `json:"additional_guests"`
	Discount              interface{} `json:"discount"`
	GSTEnabled            bool        `json:"gst_enabled"`
	ShowGST               bool        `json:"show_gst"`
	GSTPercent            interface{} `json:"gst_percent"`
	AdvanceAmount         interface{} `json:"advance_amount"`
	RoundOff              interface{} `json:"round_off"`
	PaymentMode           string      `json:"payment_mode"`

	Items []struct {
		Name      string      `json:"name"`
		Quantity  interface{} `json:"quantity"`
		UnitPrice interface{} `json:"unit_price"`
	} `json:"items"`
}
