package models

import "time"

// Room statuses.
const (
	RoomAvailable = "AVAILABLE"
	RoomOccupied  = "OCCUPIED"
	RoomBlocked   = "BLOCKED"
)

type RoomType struct {
	ID                    int     `json:"id"`
	Name                  string  `json:"name"`
	BaseRate              float64 `json:"base_rate"`
	AdditionalGuestCharge float64 `json:"additional_guest_charge"`
}

type Room struct {
	ID         int       `json:"id"`
	Number     string    `json:"number"`
	RoomTypeID int       `json:"room_type_id"`
	RoomType   string    `json:"room_type,omitempty"` // Joined from room_types
	Tariff     float64   `json:"tariff"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateRoomRequest struct {
	Number     string  `json:"number"`
	RoomTypeID int     `json:"room_type_id"`
	Tariff     float64 `json:"tariff"`
}

type UpdateRoomRequest struct {
	RoomTypeID int     `json:"room_type_id"`
	Tariff     float64 `json:"tariff"`
	Status     string  `json:"status"`
}
