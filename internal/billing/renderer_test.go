package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBill() BillData {
	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(48 * time.Hour)
	orderedAt := checkIn.Add(3 * time.Hour)

	in := ChargeInputs{
		RoomCharges:           3000,
		Tariff:                200,
		FoodCharges:           550,
		AdditionalGuestCharge: 500,
		AdditionalGuests:      1,
		GSTEnabled:            true,
		ShowGST:               true,
		GSTPercent:            5,
		AdvanceAmount:         1000,
		AutoRoundOff:          true,
	}

	return BillData{
		InvoiceNumber:    "INV-1741600000000-A1B2C3D4E",
		ManualBillNumber: "204",
		BillDate:         checkOut,
		GuestName:        "Ramesh Kumar",
		Address:          "12 MG Road, Near City Mall, Indore, Madhya Pradesh",
		State:            "Madhya Pradesh",
		Nationality:      "Indian",
		Mobile:           "9876543210",
		CompanyName:      "Acme Traders",
		CompanyCode:      "ACM",
		Department:       "Sales",
		Designation:      "Regional Head",
		RoomNumber:       "204",
		RoomType:         "Deluxe",
		NumberOfDays:     2,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		AdditionalGuests: 1,
		PaymentMode:      "CASH",
		RoomCharges:      3000,
		Tariff:           200,
		FoodCharges:      550,
		AdvanceAmount:    1000,
		ShowGST:          true,
		Items: []LineItem{
			{Name: "Paneer Butter Masala", Quantity: 2, UnitPrice: 180, LineTotal: 360, OrderedAt: &orderedAt},
			{Name: "Tandoori Roti", Quantity: 10, UnitPrice: 19, LineTotal: 190},
		},
		Totals: ComputeTotals(in),
	}
}

func TestRenderInvoiceProducesPDF(t *testing.T) {
	out, err := RenderInvoice(HotelInfo{
		Name:    "Hotel Shree Palace",
		Address: "Station Road, Indore",
		Phone:   "0731-2525252",
		Email:   "desk@shreepalace.in",
		GSTIN:   "23ABCDE1234F1Z5",
	}, sampleBill())

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderInvoiceWithoutItemsOrOptionalFields(t *testing.T) {
	bill := sampleBill()
	bill.Items = nil
	bill.ManualBillNumber = ""
	bill.Address = ""
	bill.CompanyName = ""
	bill.ShowGST = false

	out, err := RenderInvoice(HotelInfo{Name: "Lodge Annexe", Address: "Ujjain", Phone: "0734-111222"}, bill)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestSummaryRowsAgreeWithNetPayable(t *testing.T) {
	bill := sampleBill()
	rows := summaryRows(bill)

	var billTotal, chargeSum float64
	var advance, roundOff float64
	for _, row := range rows {
		switch row.Label {
		case "Total Bill Amount":
			billTotal = row.Value
		case "Advance Paid":
			advance = row.Value
		case "Round Off":
			roundOff = row.Value
		default:
			chargeSum += row.Value
		}
	}

	// The printed bill total is the sum of the visible charge rows.
	assert.InDelta(t, chargeSum, billTotal, 0.001)
	// And the net payable line, taken verbatim from the calculator, must agree
	// with the summary block's own arithmetic.
	assert.InDelta(t, bill.Totals.TotalAmount, billTotal-advance+roundOff, 0.001)
}

func TestSummaryRowsHideConditionalLines(t *testing.T) {
	bill := sampleBill()
	bill.ShowGST = false
	bill.FoodCharges = 0
	bill.AdvanceAmount = 0
	bill.Totals = ComputeTotals(ChargeInputs{
		RoomCharges:           bill.RoomCharges,
		Tariff:                bill.Tariff,
		AdditionalGuestCharge: 500,
		AdditionalGuests:      1,
	})

	labels := make([]string, 0)
	for _, row := range summaryRows(bill) {
		labels = append(labels, row.Label)
	}
	assert.Equal(t, []string{"Room Charges", "Total Bill Amount"}, labels)
}

func TestRentPerDay(t *testing.T) {
	bill := BillData{RoomCharges: 3000, NumberOfDays: 2}
	assert.InDelta(t, 1500, bill.RentPerDay(), 0.001)

	bill.NumberOfDays = 0
	assert.InDelta(t, 3000, bill.RentPerDay(), 0.001)
}
