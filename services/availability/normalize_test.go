package availability

import (
	"testing"

	"backbar/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdinalSuffix(t *testing.T) {
	cases := map[int]string{
		1:  "st",
		2:  "nd",
		3:  "rd",
		4:  "th",
		11: "th",
		12: "th",
		13: "th",
		20: "th",
		21: "st",
		22: "nd",
		23: "rd",
		31: "st",
	}
	for day, want := range cases {
		assert.Equal(t, want, ordinalSuffix(day), "day %d", day)
	}
}

func TestFormatDateParts(t *testing.T) {
	dayOfWeek, formattedDate, formattedFull := FormatDateParts("2026-03-05T10:00:00")
	assert.Equal(t, "Thursday", dayOfWeek)
	assert.Equal(t, "March 5th", formattedDate)
	assert.Equal(t, "Thursday, March 5th", formattedFull)
}

func TestFormatDatePartsDateOnly(t *testing.T) {
	dayOfWeek, _, _ := FormatDateParts("2026-03-05")
	assert.Equal(t, "Thursday", dayOfWeek)
}

func TestFormatDatePartsUnparsable(t *testing.T) {
	dayOfWeek, formattedDate, formattedFull := FormatDateParts("not-a-date")
	assert.Empty(t, dayOfWeek)
	assert.Empty(t, formattedDate)
	assert.Empty(t, formattedFull)
}

func TestFormatClockTime(t *testing.T) {
	cases := map[string]string{
		"2026-03-05T10:00:00": "10:00 AM",
		"2026-03-05T12:00:00": "12:00 PM",
		"2026-03-05T00:05:00": "12:05 AM",
		"2026-03-05T14:05:00": "2:05 PM",
		"2026-03-05T23:59:00": "11:59 PM",
	}
	for ts, want := range cases {
		assert.Equal(t, want, FormatClockTime(ts), "timestamp %s", ts)
	}
}

func TestFormatClockTimeSentinel(t *testing.T) {
	assert.Equal(t, TimeUnavailable, FormatClockTime("2026-03-05"))
	assert.Equal(t, TimeUnavailable, FormatClockTime("2026-03-05Tgarbage"))
}

func TestNormalizeOpening(t *testing.T) {
	price := 35.0
	slot := NormalizeOpening(models.RawOpening{
		StartTime:     "2026-03-05T10:00:00",
		EndTime:       "2026-03-05T10:30:00",
		ServiceID:     "svc-1",
		ServiceName:   "Haircut Standard",
		EmployeePrice: &price,
	})

	assert.Equal(t, "2026-03-05T10:00:00", slot.StartTime)
	assert.Equal(t, "2026-03-05T10:30:00", slot.EndTime)
	assert.Equal(t, 35.0, slot.Price)
	assert.Equal(t, "Thursday", slot.DayOfWeek)
	assert.Equal(t, "March 5th", slot.FormattedDate)
	assert.Equal(t, "10:00 AM", slot.FormattedTime)
	assert.Equal(t, "Thursday, March 5th at 10:00 AM", slot.FormattedFull)
}

func TestNormalizeOpeningNilPrice(t *testing.T) {
	slot := NormalizeOpening(models.RawOpening{
		StartTime: "2026-03-05T10:00:00",
		EndTime:   "2026-03-05T10:30:00",
	})
	assert.Equal(t, 0.0, slot.Price)
}

func TestNormalizeOpeningUnparsableKeepsRawTimestamps(t *testing.T) {
	slot := NormalizeOpening(models.RawOpening{
		StartTime: "garbage",
		EndTime:   "more garbage",
	})
	assert.Equal(t, "garbage", slot.StartTime)
	assert.Equal(t, "more garbage", slot.EndTime)
	assert.Equal(t, TimeUnavailable, slot.FormattedTime)
	assert.Equal(t, TimeUnavailable, slot.FormattedFull)
}

func TestNormalizeOpeningDeterministic(t *testing.T) {
	raw := models.RawOpening{
		StartTime: "2026-03-05T10:00:00",
		EndTime:   "2026-03-05T10:30:00",
	}
	first := NormalizeOpening(raw)
	second := NormalizeOpening(raw)
	assert.Equal(t, first, second)
}

func TestParseSlotTime(t *testing.T) {
	parsed, err := ParseSlotTime("2026-03-05T10:00:00")
	require.NoError(t, err)
	assert.Equal(t, 10, parsed.Hour())

	_, err = ParseSlotTime("nope")
	assert.Error(t, err)
}
