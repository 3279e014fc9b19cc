package billing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// DefaultGSTPercent is applied when a bill does not carry an explicit rate.
const DefaultGSTPercent = 5.0

// ChargeInputs holds one bill computation's raw inputs. All amounts are in
// rupees. Callers decode loosely-typed request bodies with Amount/Count so a
// bad value degrades to a safe default instead of failing the bill.
type ChargeInputs struct {
	RoomCharges           float64 `json:"room_charges"`
	Tariff                float64 `json:"tariff"`
	FoodCharges           float64 `json:"food_charges"`
	AdditionalGuestCharge float64 `json:"additional_guest_charge"`
	AdditionalGuests      int     `json:"additional_guests"`
	Discount              float64 `json:"discount"`
	GSTEnabled            bool    `json:"gst_enabled"`
	ShowGST               bool    `json:"show_gst"`
	GSTPercent            float64 `json:"gst_percent"`
	AdvanceAmount         float64 `json:"advance_amount"`
	RoundOff              float64 `json:"round_off"`
	AutoRoundOff          bool    `json:"auto_round_off"`
}

// ChargeTotals is the computed breakdown persisted on every invoice.
type ChargeTotals struct {
	AdditionalGuestsTotal float64 `json:"additional_guests_total"`
	BaseTotal             float64 `json:"base_total"`
	GSTAmount             float64 `json:"gst_amount"`
	GSTOnFood             float64 `json:"gst_on_food"`
	RoundOff              float64 `json:"round_off"`
	TotalAmount           float64 `json:"total_amount"`
}

// ComputeTotals derives the charge breakdown for a bill. It never fails:
// front-desk policy is that a malformed input must not block a checkout, so
// all coercion happens before this point and the arithmetic is total.
//
// GST applies only when both GSTEnabled and ShowGST are set, and only to the
// room side of the bill (room charges, tariff, additional guests, less
// discount). Food charges are never taxed, on any path. BaseTotal is not
// clamped: a discount larger than the charges produces a negative bill.
func ComputeTotals(in ChargeInputs) ChargeTotals {
	var guestsTotal float64
	if in.AdditionalGuests > 0 {
		guestsTotal = round2(in.AdditionalGuestCharge * float64(in.AdditionalGuests))
	}

	baseTotal := round2(in.RoomCharges + in.Tariff + in.FoodCharges + guestsTotal - in.Discount)

	var gstAmount float64
	if in.GSTEnabled && in.ShowGST {
		pct := in.GSTPercent
		if pct <= 0 {
			pct = DefaultGSTPercent
		}
		gstBase := in.RoomCharges + in.Tariff + guestsTotal - in.Discount
		gstAmount = round2(gstBase * pct / 100)
	}

	subtotal := baseTotal + gstAmount - in.AdvanceAmount

	roundOff := in.RoundOff
	if in.AutoRoundOff {
		roundOff = AutoRoundOff(subtotal)
	}

	return ChargeTotals{
		AdditionalGuestsTotal: guestsTotal,
		BaseTotal:             baseTotal,
		GSTAmount:             gstAmount,
		GSTOnFood:             0,
		RoundOff:              roundOff,
		TotalAmount:           round2(subtotal + roundOff),
	}
}

// AutoRoundOff returns the signed adjustment that rounds subtotal to the
// nearest whole rupee, ties rounding up. 100.50 -> +0.50, 100.49 -> -0.49.
func AutoRoundOff(subtotal float64) float64 {
	remainder := subtotal - math.Floor(subtotal)
	if remainder >= 0.5 {
		return round2(math.Ceil(subtotal) - subtotal)
	}
	return round2(-remainder)
}

// CombinedFoodCharges folds a booking's already-invoiced food bills and its
// still-unbilled food orders into one figure, net of the complimentary
// discount entered at checkout.
func CombinedFoodCharges(previousInvoices, unbilledOrders, complimentary float64) float64 {
	return round2(previousInvoices + unbilledOrders - complimentary)
}

// Amount coerces a loosely typed JSON value to a currency amount. Anything
// non-numeric becomes 0.
func Amount(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Count coerces a loosely typed JSON value to a non-negative integer count,
// falling back to the given default (1 for fields like day and adult counts
// where "at least one" is the domain default).
func Count(v interface{}, fallback int) int {
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return fallback
		}
		return int(n)
	case int:
		if n < 0 {
			return fallback
		}
		return n
	case json.Number:
		i, err := n.Int64()
		if err != nil || i < 0 {
			return fallback
		}
		return int(i)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil || i < 0 {
			return fallback
		}
		return i
	default:
		return fallback
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
