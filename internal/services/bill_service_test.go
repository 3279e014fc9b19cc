package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-backend/internal/billing"
	"hotel-backend/internal/models"
)

func TestGenerateInvoiceNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^INV-\d{13,}-[A-Z0-9]{9}$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		num := GenerateInvoiceNumber()
		assert.Regexp(t, pattern, num)
		assert.False(t, seen[num], "duplicate invoice number %s", num)
		seen[num] = true
	}
}

func TestStayDays(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		checkOut time.Time
		want     int
	}{
		{"same instant", base, 1},
		{"few hours", base.Add(5 * time.Hour), 1},
		{"exactly one day", base.Add(24 * time.Hour), 1},
		{"just past one day", base.Add(25 * time.Hour), 2},
		{"two and a half days", base.Add(60 * time.Hour), 3},
		{"checkout before checkin", base.Add(-2 * time.Hour), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stayDays(base, tc.checkOut))
		})
	}
}

func TestManualChargeInputsAbsentRoundOffStaysUnrounded(t *testing.T) {
	req := &models.ManualBillRequest{RoomCharges: "1000.49"}

	inputs := manualChargeInputs(req, 5)
	assert.False(t, inputs.AutoRoundOff)
	assert.Equal(t, 0.0, inputs.RoundOff)

	totals := billing.ComputeTotals(inputs)
	assert.Equal(t, 0.0, totals.RoundOff)
	assert.Equal(t, 1000.49, totals.TotalAmount)
}

func TestManualChargeInputsExplicitRoundOffVerbatim(t *testing.T) {
	req := &models.ManualBillRequest{RoomCharges: "1000.49", RoundOff: 0.51}

	inputs := manualChargeInputs(req, 5)
	assert.False(t, inputs.AutoRoundOff)
	assert.Equal(t, 0.51, inputs.RoundOff)

	totals := billing.ComputeTotals(inputs)
	assert.Equal(t, 1001.0, totals.TotalAmount)
}

func TestPaymentModeOrCash(t *testing.T) {
	assert.Equal(t, models.PaymentModeCash, paymentModeOrCash(""))
	assert.Equal(t, models.PaymentModeOnline, paymentModeOrCash(models.PaymentModeOnline))
}

func TestFoodOrderItemsFlattensWithOrderTime(t *testing.T) {
	t1 := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	t2 := time.Date(2024, 6, 1, 20, 15, 0, 0, time.UTC)
	orders := []*models.FoodOrder{
		{
			OrderedAt: t1,
			Items: []models.FoodOrderItem{
				{Name: "Masala Dosa", Quantity: 2, UnitPrice: 80, LineTotal: 160},
				{Name: "Filter Coffee", Quantity: 2, UnitPrice: 30, LineTotal: 60},
			},
		},
		{
			OrderedAt: t2,
			Items: []models.FoodOrderItem{
				{Name: "Paneer Butter Masala", Quantity: 1, UnitPrice: 220, LineTotal: 220},
			},
		},
	}

	items := foodOrderItems(orders)
	require.Len(t, items, 3)
	assert.Equal(t, "Masala Dosa", items[0].Name)
	require.NotNil(t, items[0].OrderedAt)
	assert.True(t, items[0].OrderedAt.Equal(t1))
	assert.True(t, items[1].OrderedAt.Equal(t1))
	require.NotNil(t, items[2].OrderedAt)
	assert.True(t, items[2].OrderedAt.Equal(t2))
	assert.Equal(t, 220.0, items[2].LineTotal)
}

func TestBillDataFromInvoiceCarriesStoredTotals(t *testing.T) {
	checkIn := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(48 * time.Hour)
	inv := &models.Invoice{
		InvoiceNumber: "INV-1717250000000-AB12CD34E",
		InvoiceType:   models.InvoiceTypeRoom,
		GuestName:     "Asha Menon",
		RoomNumber:    "204",
		NumberOfDays:  2,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		RoomCharges:   5000,
		FoodCharges:   440,
		GSTEnabled:    true,
		ShowGST:       true,
		GSTPercent:    5,
		GSTAmount:     250,
		BaseTotal:     5690,
		RoundOff:      0.40,
		TotalAmount:   5690,
		PaymentMode:   models.PaymentModeCash,
		Items: []models.InvoiceItem{
			{Name: "Veg Thali", Quantity: 2, UnitPrice: 220, LineTotal: 440},
		},
	}

	data := BillDataFromInvoice(inv)
	assert.Equal(t, inv.InvoiceNumber, data.InvoiceNumber)
	assert.Equal(t, inv.TotalAmount, data.Totals.TotalAmount)
	assert.Equal(t, inv.GSTAmount, data.Totals.GSTAmount)
	assert.Equal(t, inv.RoundOff, data.Totals.RoundOff)
	require.Len(t, data.Items, 1)
	assert.Equal(t, "Veg Thali", data.Items[0].Name)
}

func TestHotelInfoFromSettings(t *testing.T) {
	s := &models.HotelSettings{
		Name:       "Hotel Sunrise",
		Address:    "12 MG Road, Kochi",
		Phone:      "0484-1234567",
		Email:      "desk@sunrise.example",
		GSTIN:      "32AAAAA0000A1Z5",
		GSTPercent: 5,
	}
	info := HotelInfoFromSettings(s)
	assert.Equal(t, s.Name, info.Name)
	assert.Equal(t, s.GSTIN, info.GSTIN)
}
