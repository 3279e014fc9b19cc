package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotalsManualBillNoGST(t *testing.T) {
	totals := ComputeTotals(ChargeInputs{
		RoomCharges: 1000,
		FoodCharges: 200,
	})

	assert.InDelta(t, 1200, totals.BaseTotal, 0.001)
	assert.Zero(t, totals.GSTAmount)
	assert.InDelta(t, 1200, totals.TotalAmount, 0.001)
}

func TestComputeTotalsCheckoutWithGSTAndAdditionalGuest(t *testing.T) {
	totals := ComputeTotals(ChargeInputs{
		RoomCharges:           1500,
		AdditionalGuestCharge: 500,
		AdditionalGuests:      1,
		GSTEnabled:            true,
		ShowGST:               true,
		GSTPercent:            5,
	})

	assert.InDelta(t, 500, totals.AdditionalGuestsTotal, 0.001)
	assert.InDelta(t, 2000, totals.BaseTotal, 0.001)
	assert.InDelta(t, 100, totals.GSTAmount, 0.001)
	assert.InDelta(t, 2100, totals.TotalAmount, 0.001)
}

func TestComputeTotalsCombinedFoodNeverTaxed(t *testing.T) {
	food := CombinedFoodCharges(450, 150, 50)
	require.InDelta(t, 550, food, 0.001)

	totals := ComputeTotals(ChargeInputs{
		RoomCharges: 1000,
		FoodCharges: food,
		GSTEnabled:  true,
		ShowGST:     true,
	})

	assert.InDelta(t, 1550, totals.BaseTotal, 0.001)
	// GST is computed on the room side only; the food component is excluded.
	assert.InDelta(t, 50, totals.GSTAmount, 0.001)
	assert.Zero(t, totals.GSTOnFood)
}

func TestComputeTotalsGSTGating(t *testing.T) {
	cases := []struct {
		name    string
		enabled bool
		show    bool
	}{
		{"disabled and hidden", false, false},
		{"enabled but hidden", true, false},
		{"shown but disabled", false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals := ComputeTotals(ChargeInputs{
				RoomCharges: 1000,
				GSTEnabled:  tc.enabled,
				ShowGST:     tc.show,
				GSTPercent:  18,
			})
			assert.Zero(t, totals.GSTAmount)
			assert.InDelta(t, 1000, totals.TotalAmount, 0.001)
		})
	}
}

func TestComputeTotalsGSTPercentDefaultsToFive(t *testing.T) {
	totals := ComputeTotals(ChargeInputs{
		RoomCharges: 1000,
		GSTEnabled:  true,
		ShowGST:     true,
	})
	assert.InDelta(t, 50, totals.GSTAmount, 0.001)
}

func TestComputeTotalsNoAdditionalGuestsNoCharge(t *testing.T) {
	// A stray per-guest rate with zero guests must not leak into the base.
	totals := ComputeTotals(ChargeInputs{
		RoomCharges:           800,
		AdditionalGuestCharge: 300,
		AdditionalGuests:      0,
	})
	assert.Zero(t, totals.AdditionalGuestsTotal)
	assert.InDelta(t, 800, totals.BaseTotal, 0.001)
}

func TestComputeTotalsNegativeBaseNotClamped(t *testing.T) {
	totals := ComputeTotals(ChargeInputs{
		RoomCharges: 500,
		Discount:    800,
	})
	assert.InDelta(t, -300, totals.BaseTotal, 0.001)
	assert.InDelta(t, -300, totals.TotalAmount, 0.001)
}

func TestComputeTotalsAdvanceAndManualRoundOff(t *testing.T) {
	totals := ComputeTotals(ChargeInputs{
		RoomCharges:   2000,
		AdvanceAmount: 500,
		RoundOff:      -0.25,
	})
	assert.InDelta(t, 1499.75, totals.TotalAmount, 0.001)
	assert.InDelta(t, -0.25, totals.RoundOff, 0.001)
}

func TestAutoRoundOffBoundaries(t *testing.T) {
	cases := []struct {
		subtotal float64
		want     float64
	}{
		{100.50, 0.50},
		{100.49, -0.49},
		{100.00, 0},
		{99.99, 0.01},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, AutoRoundOff(tc.subtotal), 0.001, "subtotal %.2f", tc.subtotal)
	}
}

func TestComputeTotalsAutoRoundOffAppliedOnCheckout(t *testing.T) {
	totals := ComputeTotals(ChargeInputs{
		RoomCharges:  1000.49,
		AutoRoundOff: true,
	})
	assert.InDelta(t, -0.49, totals.RoundOff, 0.001)
	assert.InDelta(t, 1000, totals.TotalAmount, 0.001)
}

func TestComputeTotalsIdempotent(t *testing.T) {
	in := ChargeInputs{
		RoomCharges:           1234.56,
		Tariff:                100,
		FoodCharges:           78.9,
		AdditionalGuestCharge: 250,
		AdditionalGuests:      2,
		Discount:              50,
		GSTEnabled:            true,
		ShowGST:               true,
		GSTPercent:            12,
		AdvanceAmount:         500,
		AutoRoundOff:          true,
	}
	first := ComputeTotals(in)
	second := ComputeTotals(in)
	assert.Equal(t, first, second)
}

func TestComputeTotalsRoundTrip(t *testing.T) {
	// Recomputing the total from the persisted components must reproduce it.
	in := ChargeInputs{
		RoomCharges:   1750,
		Tariff:        200,
		FoodCharges:   320.50,
		Discount:      70,
		GSTEnabled:    true,
		ShowGST:       true,
		GSTPercent:    5,
		AdvanceAmount: 1000,
		AutoRoundOff:  true,
	}
	totals := ComputeTotals(in)
	rebuilt := totals.BaseTotal + totals.GSTAmount - in.AdvanceAmount + totals.RoundOff
	assert.InDelta(t, totals.TotalAmount, rebuilt, 0.001)
}

func TestAmountCoercion(t *testing.T) {
	assert.InDelta(t, 12.5, Amount("12.5"), 0.001)
	assert.InDelta(t, 12.5, Amount(" 12.5 "), 0.001)
	assert.InDelta(t, 42, Amount(42), 0.001)
	assert.InDelta(t, 42, Amount(float64(42)), 0.001)
	assert.Zero(t, Amount("not-a-number"))
	assert.Zero(t, Amount(nil))
	assert.Zero(t, Amount(true))
}

func TestCountCoercion(t *testing.T) {
	assert.Equal(t, 3, Count("3", 1))
	assert.Equal(t, 3, Count(float64(3), 1))
	assert.Equal(t, 1, Count("junk", 1))
	assert.Equal(t, 1, Count(nil, 1))
	assert.Equal(t, 1, Count(-4, 1))
	assert.Equal(t, 0, Count("0", 1))
}
