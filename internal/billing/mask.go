package billing

import "strings"

// MaskIDNumber redacts a guest identity-document number for display on
// police-verification exports. Total function: every input, including
// malformed strings, yields a defined value.
func MaskIDNumber(raw, idType string) string {
	if raw == "" {
		return "N/A"
	}

	n := len(raw)
	if (strings.EqualFold(idType, "AADHAAR") || isAadhaarShaped(raw)) && n >= 8 {
		return raw[:4] + " XXXX XXXX " + raw[n-4:]
	}
	if n >= 4 {
		return raw[:2] + strings.Repeat("X", n-4) + raw[n-2:]
	}
	return "XXXX"
}

// isAadhaarShaped reports whether a value looks like an Aadhaar number
// (exactly 12 digits) even when no id type was recorded.
func isAadhaarShaped(raw string) bool {
	if len(raw) != 12 {
		return false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}
	return true
}
