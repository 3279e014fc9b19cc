package models

import "time"

// Booking statuses.
const (
	BookingCheckedIn  = "CHECKED_IN"
	BookingCheckedOut = "CHECKED_OUT"
)

type Booking struct {
	ID          int    `json:"id"`
	GuestName   string `json:"guest_name"`
	Address     string `json:"address"`
	State       string `json:"state"`
	Nationality string `json:"nationality"`
	GSTNumber   string `json:"gst_number"`
	Mobile      string `json:"mobile"`
	IDType      string `json:"id_type"`
	IDNumber    string `json:"id_number"`

	CompanyName string `json:"company_name"`
	CompanyCode string `json:"company_code"`
	Department  string `json:"department"`
	Designation string `json:"designation"`

	RoomID                int     `json:"room_id"`
	RoomNumber            string  `json:"room_number,omitempty"` // Joined from rooms
	RoomType              string  `json:"room_type,omitempty"`
	RoomPrice             float64 `json:"room_price"`
	Tariff                float64 `json:"tariff"`
	AdditionalGuestCharge float64 `json:"additional_guest_charge"`
	AdditionalGuests      int     `json:"additional_guests"`
	AdvanceAmount         float64 `json:"advance_amount"`

	CheckIn   time.Time  `json:"check_in"`
	CheckOut  *time.Time `json:"check_out,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CreateBookingRequest struct {
	GuestName   string `json:"guest_name"`
	Address     string `json:"address"`
	State       string `json:"state"`
	Nationality string `json:"nationality"`
	GSTNumber   string `json:"gst_number"`
	Mobile      string `json:"mobile"`
	IDType      string `json:"id_type"`
	IDNumber    string `json:"id_number"`

	CompanyName string `json:"company_name"`
	CompanyCode string `json:"company_code"`
	Department  string `json:"department"`
	Designation string `json:"designation"`

	RoomID                int     `json:"room_id"`
	RoomPrice             float64 `json:"room_price"`
	AdditionalGuests      int     `json:"additional_guests"`
	AdditionalGuestCharge float64 `json:"additional_guest_charge"`
	AdvanceAmount         float64 `json:"advance_amount"`
}

// CheckoutRequest carries the operator overrides entered at checkout time.
// Charge fields are loosely typed on purpose: the front desk must never be
// blocked by a malformed value, so each one is coerced with a safe default.
type CheckoutRequest struct {
	RoomPrice        interface{} `json:"room_price"`    // editable at checkout
	Complimentary    interface{} `json:"complimentary"` // discount on combined food
	Discount         interface{} `json:"discount"`
	GSTEnabled       bool        `json:"gst_enabled"`
	ShowGST          bool        `json:"show_gst"`
	GSTPercent       interface{} `json:"gst_percent"`
	CombinedFoodBill bool        `json:"combined_food_bill"`
	PaymentMode      string      `json:"payment_mode"`
	RoundOff         interface{} `json:"round_off"` // manual override, auto when absent
}
