package models

import "time"

// HotelSettings is the single-row configuration printed on every bill. It is
// fetched once per render and never cached across requests.
type HotelSettings struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	GSTIN      string    `json:"gstin"`
	GSTPercent float64   `json:"gst_percent"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UpdateHotelSettingsRequest is the manager-facing settings form payload.
type UpdateHotelSettingsRequest struct {
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	GSTIN      string  `json:"gstin"`
	GSTPercent float64 `json:"gst_percent"`
}
