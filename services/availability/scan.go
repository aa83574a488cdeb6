package availability

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"backbar/models"
	"backbar/utils"

	"go.uber.org/zap"
)

// DefaultTimeWindows partitions the bookable day into eight two-hour windows
// spanning 06:00–22:00. Meevo truncates any single scan to a handful of
// openings; a two-hour window holds at most six 20-minute starts, which keeps
// every window safely under the cap. Any opening outside these windows is
// invisible, so together they must cover the whole operating day.
var DefaultTimeWindows = []models.TimeWindow{
	{Start: "06:00", End: "08:00"},
	{Start: "08:00", End: "10:00"},
	{Start: "10:00", End: "12:00"},
	{Start: "12:00", End: "14:00"},
	{Start: "14:00", End: "16:00"},
	{Start: "16:00", End: "18:00"},
	{Start: "18:00", End: "20:00"},
	{Start: "20:00", End: "22:00"},
}

// MergeOpenings flattens per-window scan results into one timeline:
// normalized, deduplicated by exact start time (first occurrence wins, since
// adjacent windows may both report a boundary opening) and sorted ascending.
// Sorting happens after the merge so the result is identical no matter which
// window finished first.
func MergeOpenings(windowResults [][]models.RawOpening) []models.Slot {
	seen := make(map[string]bool)
	var timeline []models.Slot
	for _, openings := range windowResults {
		for _, raw := range openings {
			if seen[raw.StartTime] {
				continue
			}
			seen[raw.StartTime] = true
			timeline = append(timeline, NormalizeOpening(raw))
		}
	}

	sort.SliceStable(timeline, func(i, j int) bool {
		ti, errI := ParseSlotTime(timeline[i].StartTime)
		tj, errJ := ParseSlotTime(timeline[j].StartTime)
		if errI != nil || errJ != nil {
			return timeline[i].StartTime < timeline[j].StartTime
		}
		return ti.Before(tj)
	})
	return timeline
}

// scanService runs one windowed scan per time window concurrently and merges
// the results. A failed window degrades to an empty window, never to a failed
// scan; all windows failing just means no availability.
func (e *DefaultAvailabilityEngine) scanService(ctx context.Context, token, stylistID, serviceID, locationID string, dates models.DateRange) []models.Slot {
	logger := utils.GetLogger()
	windows := e.Windows
	if len(windows) == 0 {
		windows = DefaultTimeWindows
	}

	results := make([][]models.RawOpening, len(windows))
	var wg sync.WaitGroup
	for i, window := range windows {
		wg.Add(1)
		go func(i int, window models.TimeWindow) {
			defer wg.Done()
			openings, err := e.Scanner.ScanOpenings(ctx, token, models.ScanQuery{
				StylistID:  stylistID,
				ServiceID:  serviceID,
				LocationID: locationID,
				StartDate:  dates.Start,
				EndDate:    dates.End,
				Window:     window,
			})
			if err != nil {
				logger.Warn("availability: window scan failed",
					zap.String("window", window.Start+"-"+window.End),
					zap.String("serviceID", serviceID),
					zap.Error(err))
				return
			}
			results[i] = openings
		}(i, window)
	}
	wg.Wait()

	return MergeOpenings(results)
}

// FilterByTimeOfDay keeps morning (start hour < 12) or afternoon (start hour
// >= 12) slots. Any other preference leaves the timeline untouched.
func FilterByTimeOfDay(slots []models.Slot, preference string) []models.Slot {
	if preference != "morning" && preference != "afternoon" {
		return slots
	}
	var kept []models.Slot
	for _, slot := range slots {
		hour, ok := startHour(slot.StartTime)
		if !ok {
			continue
		}
		if preference == "morning" && hour < 12 {
			kept = append(kept, slot)
		}
		if preference == "afternoon" && hour >= 12 {
			kept = append(kept, slot)
		}
	}
	return kept
}

func startHour(ts string) (int, bool) {
	i := strings.Index(ts, "T")
	if i < 0 {
		return 0, false
	}
	parts := strings.Split(ts[i+1:], ":")
	if len(parts) == 0 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	return hour, true
}
