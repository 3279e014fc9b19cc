package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskIDNumber(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		idType string
		want   string
	}{
		{"aadhaar by type", "123456789012", "AADHAAR", "1234 XXXX XXXX 9012"},
		{"aadhaar by shape", "123456789012", "", "1234 XXXX XXXX 9012"},
		{"aadhaar lowercase type", "99887766554", "aadhaar", "9988 XXXX XXXX 6554"},
		{"twelve chars but not digits", "AB1234567890", "", "ABXXXXXXXX90"},
		{"passport", "M1234567", "PASSPORT", "M1XXXX67"},
		{"short aadhaar falls through", "1234567", "AADHAAR", "12XXX67"},
		{"exactly four stays visible", "1234", "", "1234"},
		{"too short", "12", "", "XXXX"},
		{"empty", "", "", "N/A"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MaskIDNumber(tc.raw, tc.idType))
		})
	}
}
