package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-backend/internal/models"
)

func TestKitchenTicketRenders(t *testing.T) {
	svc := &FoodService{}
	order := &models.FoodOrder{
		ID:        7,
		BookingID: 3,
		OrderedAt: time.Date(2024, 6, 1, 13, 45, 0, 0, time.UTC),
		Items: []models.FoodOrderItem{
			{Name: "Veg Biryani", Quantity: 2},
			{Name: "Raita", Quantity: 2},
			{Name: "Gulab Jamun", Quantity: 4},
		},
	}

	data, err := svc.KitchenTicket(order, "204")
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// PDF magic bytes.
	assert.Equal(t, "%PDF", string(data[:4]))
}
