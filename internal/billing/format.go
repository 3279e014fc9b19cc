package billing

import (
	"fmt"
	"strings"
	"time"

	"hotel-backend/internal/timeutil"
)

// FormatRupees renders an amount as "Rs. 1,23,456.78" with Indian digit
// grouping. The PDF library's core fonts cannot render the rupee glyph, so
// the ASCII prefix is used everywhere.
func FormatRupees(amount float64) string {
	return "Rs. " + GroupDigits(amount)
}

// GroupDigits formats a number with two fixed decimals and Indian grouping:
// the last three integer digits, then groups of two.
func GroupDigits(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot+1:]

	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		intPart = strings.Join(append(groups, tail), ",")
	}

	out := intPart + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatBillDate renders a bill date in IST, e.g. "02-Jan-2006".
func FormatBillDate(t time.Time) string {
	return timeutil.ToIST(t).Format("02-Jan-2006")
}

// FormatBillDateTime renders a stay timestamp in IST, e.g.
// "02-Jan-2006 03:04 PM".
func FormatBillDateTime(t time.Time) string {
	return timeutil.ToIST(t).Format("02-Jan-2006 03:04 PM")
}
