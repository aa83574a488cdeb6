package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"backbar/models"
)

// TimeUnavailable is the sentinel shown when a timestamp cannot be parsed.
// The slot is still kept with its raw timestamps intact.
const TimeUnavailable = "Time unavailable"

var slotTimeLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
}

// ParseSlotTime parses an upstream timestamp as-is. Meevo timestamps are
// venue-local wall-clock values, so no timezone conversion is performed.
func ParseSlotTime(ts string) (time.Time, error) {
	for _, layout := range slotTimeLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized slot timestamp %q", ts)
}

func ordinalSuffix(day int) string {
	if day > 3 && day < 21 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// FormatDateParts derives display strings from the calendar date component of
// a timestamp. Only the date part before any "T" is consulted, so time-only
// oddities cannot shift the displayed day.
func FormatDateParts(ts string) (dayOfWeek, formattedDate, formattedFull string) {
	datePart := ts
	if i := strings.Index(ts, "T"); i >= 0 {
		datePart = ts[:i]
	}
	d, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		return "", "", ""
	}
	dayWithSuffix := fmt.Sprintf("%d%s", d.Day(), ordinalSuffix(d.Day()))
	dayOfWeek = d.Weekday().String()
	formattedDate = fmt.Sprintf("%s %s", d.Month().String(), dayWithSuffix)
	formattedFull = fmt.Sprintf("%s, %s", dayOfWeek, formattedDate)
	return dayOfWeek, formattedDate, formattedFull
}

// FormatClockTime renders the time component of a timestamp on a 12-hour
// clock, e.g. "2:05 PM".
func FormatClockTime(ts string) string {
	i := strings.Index(ts, "T")
	if i < 0 {
		return TimeUnavailable
	}
	parts := strings.Split(ts[i+1:], ":")
	if len(parts) < 2 {
		return TimeUnavailable
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeUnavailable
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeUnavailable
	}

	ampm := "AM"
	if hours >= 12 {
		ampm = "PM"
	}
	hours = hours % 12
	if hours == 0 {
		hours = 12
	}
	return fmt.Sprintf("%d:%02d %s", hours, minutes, ampm)
}

// NormalizeOpening converts a raw upstream opening into a canonical slot with
// display strings precomputed. Pure: the same opening always yields the same
// slot.
func NormalizeOpening(raw models.RawOpening) models.Slot {
	var price float64
	if raw.EmployeePrice != nil {
		price = *raw.EmployeePrice
	}

	dayOfWeek, formattedDate, formattedFull := FormatDateParts(raw.StartTime)
	formattedTime := FormatClockTime(raw.StartTime)

	full := TimeUnavailable
	if formattedFull != "" && formattedTime != TimeUnavailable {
		full = fmt.Sprintf("%s at %s", formattedFull, formattedTime)
	}

	return models.Slot{
		StartTime:     raw.StartTime,
		EndTime:       raw.EndTime,
		ServiceID:     raw.ServiceID,
		ServiceName:   raw.ServiceName,
		Price:         price,
		DayOfWeek:     dayOfWeek,
		FormattedDate: formattedDate,
		FormattedTime: formattedTime,
		FormattedFull: full,
	}
}
