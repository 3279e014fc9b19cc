package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToIST(t *testing.T) {
	utc := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	ist := ToIST(utc)
	assert.Equal(t, "IST", ist.Format("MST"))
	assert.Equal(t, "2024-06-02 01:30", ist.Format("2006-01-02 15:04"))
}

func TestStartOfDayCrossesUTCMidnight(t *testing.T) {
	// 20:00 UTC is already the next day in IST.
	utc := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	start := StartOfDay(utc)
	assert.Equal(t, "2024-06-02 00:00:00", start.Format("2006-01-02 15:04:05"))
	assert.Equal(t, IST, start.Location())
}
