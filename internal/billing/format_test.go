package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupDigits(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "0.00"},
		{999.5, "999.50"},
		{1000, "1,000.00"},
		{123456.78, "1,23,456.78"},
		{12345678.9, "1,23,45,678.90"},
		{-2500, "-2,500.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GroupDigits(tc.amount))
	}
}

func TestFormatRupees(t *testing.T) {
	assert.Equal(t, "Rs. 1,200.00", FormatRupees(1200))
	assert.Equal(t, "Rs. -300.00", FormatRupees(-300))
}
