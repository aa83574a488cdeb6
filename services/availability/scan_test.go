package availability

import (
	"context"
	"errors"
	"testing"

	"backbar/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawAt(start, end string) models.RawOpening {
	return models.RawOpening{StartTime: start, EndTime: end}
}

func TestMergeOpeningsDeduplicates(t *testing.T) {
	// The same opening reported by three overlapping windows survives once.
	results := [][]models.RawOpening{
		{rawAt("2026-03-05T10:00:00", "2026-03-05T10:30:00")},
		{rawAt("2026-03-05T10:00:00", "2026-03-05T10:30:00")},
		{rawAt("2026-03-05T10:00:00", "2026-03-05T10:30:00")},
	}
	timeline := MergeOpenings(results)
	require.Len(t, timeline, 1)
	assert.Equal(t, "2026-03-05T10:00:00", timeline[0].StartTime)
}

func TestMergeOpeningsSortsAcrossWindows(t *testing.T) {
	// Later windows listed first must not leak completion order into the
	// timeline.
	results := [][]models.RawOpening{
		{rawAt("2026-03-05T18:00:00", "2026-03-05T18:30:00")},
		{rawAt("2026-03-05T08:00:00", "2026-03-05T08:30:00")},
		{rawAt("2026-03-05T12:00:00", "2026-03-05T12:30:00")},
	}
	timeline := MergeOpenings(results)
	require.Len(t, timeline, 3)
	for i := 1; i < len(timeline); i++ {
		prev, err := ParseSlotTime(timeline[i-1].StartTime)
		require.NoError(t, err)
		cur, err := ParseSlotTime(timeline[i].StartTime)
		require.NoError(t, err)
		assert.False(t, cur.Before(prev))
	}
}

func TestMergeOpeningsEmpty(t *testing.T) {
	assert.Empty(t, MergeOpenings(nil))
	assert.Empty(t, MergeOpenings([][]models.RawOpening{nil, nil}))
}

type windowScanner struct {
	fn func(q models.ScanQuery) ([]models.RawOpening, error)
}

func (s windowScanner) ScanOpenings(_ context.Context, _ string, q models.ScanQuery) ([]models.RawOpening, error) {
	return s.fn(q)
}

func TestScanServiceDegradesFailedWindow(t *testing.T) {
	engine := &DefaultAvailabilityEngine{
		Scanner: windowScanner{fn: func(q models.ScanQuery) ([]models.RawOpening, error) {
			switch q.Window.Start {
			case "06:00":
				return nil, errors.New("connection reset")
			case "08:00":
				return []models.RawOpening{rawAt("2026-03-05T08:20:00", "2026-03-05T08:50:00")}, nil
			case "10:00":
				return []models.RawOpening{
					rawAt("2026-03-05T10:00:00", "2026-03-05T10:30:00"),
					rawAt("2026-03-05T08:20:00", "2026-03-05T08:50:00"), // boundary overlap
				}, nil
			default:
				return nil, nil
			}
		}},
		Windows: []models.TimeWindow{
			{Start: "06:00", End: "08:00"},
			{Start: "08:00", End: "10:00"},
			{Start: "10:00", End: "12:00"},
			{Start: "12:00", End: "14:00"},
		},
	}

	timeline := engine.scanService(context.Background(), "token", "stylist", "service", "201664",
		models.DateRange{Start: "2026-03-05", End: "2026-03-05"})

	require.Len(t, timeline, 2)
	assert.Equal(t, "2026-03-05T08:20:00", timeline[0].StartTime)
	assert.Equal(t, "2026-03-05T10:00:00", timeline[1].StartTime)
}

func TestScanServiceAllWindowsFailing(t *testing.T) {
	engine := &DefaultAvailabilityEngine{
		Scanner: windowScanner{fn: func(models.ScanQuery) ([]models.RawOpening, error) {
			return nil, errors.New("upstream down")
		}},
	}
	timeline := engine.scanService(context.Background(), "token", "stylist", "service", "201664",
		models.DateRange{Start: "2026-03-05", End: "2026-03-05"})
	assert.Empty(t, timeline)
}

func TestFilterByTimeOfDay(t *testing.T) {
	slots := []models.Slot{
		{StartTime: "2026-03-05T09:00:00"},
		{StartTime: "2026-03-05T11:59:00"},
		{StartTime: "2026-03-05T12:00:00"},
		{StartTime: "2026-03-05T16:00:00"},
	}

	morning := FilterByTimeOfDay(slots, "morning")
	require.Len(t, morning, 2)
	assert.Equal(t, "2026-03-05T09:00:00", morning[0].StartTime)

	afternoon := FilterByTimeOfDay(slots, "afternoon")
	require.Len(t, afternoon, 2)
	assert.Equal(t, "2026-03-05T12:00:00", afternoon[0].StartTime)

	assert.Equal(t, slots, FilterByTimeOfDay(slots, ""))
	assert.Equal(t, slots, FilterByTimeOfDay(slots, "evening"))
}
