package models

import "time"

// Food order statuses.
const (
	FoodOrderUnbilled = "UNBILLED"
	FoodOrderBilled   = "BILLED"
)

type FoodItem struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type FoodOrderItem struct {
	ID         int     `json:"id"`
	OrderID    int     `json:"order_id"`
	FoodItemID *int    `json:"food_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	LineTotal  float64 `json:"line_total"`
}

type FoodOrder struct {
	ID        int             `json:"id"`
	BookingID int             `json:"booking_id"`
	Status    string          `json:"status"`
	Total     float64         `json:"total"`
	OrderedAt time.Time       `json:"ordered_at"`
	Items     []FoodOrderItem `json:"items"`
}

type CreateFoodOrderRequest struct {
	BookingID int `json:"booking_id"`
	Items     []struct {
		FoodItemID int `json:"food_item_id"`
		Quantity   int `json:"quantity"`
	} `json:"items"`
}

type CreateFoodItemRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}
