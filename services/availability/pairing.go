package availability

import (
	"math"
	"sort"

	"backbar/models"
)

func guestSlot(service string, slot models.Slot) models.GuestSlot {
	return models.GuestSlot{
		Service:       service,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		Price:         slot.Price,
		DayOfWeek:     slot.DayOfWeek,
		FormattedDate: slot.FormattedDate,
		FormattedTime: slot.FormattedTime,
		FormattedFull: slot.FormattedFull,
	}
}

// PairBackToBack cross-joins two timelines and keeps every pair where the
// second service starts between zero and maxGapMinutes after the first one
// ends. Both timelines are small (daily openings over a few days), so the
// O(|A|×|B|) join is fine. Options come back sorted by the first slot's start
// time; an empty result is a valid answer, not an error.
func PairBackToBack(first, second []models.Slot, serviceA, serviceB string, maxGapMinutes int) []models.BackToBackOption {
	if len(first) == 0 || len(second) == 0 {
		return nil
	}

	var options []models.BackToBackOption
	for _, a := range first {
		endA, err := ParseSlotTime(a.EndTime)
		if err != nil {
			continue
		}
		for _, b := range second {
			startB, err := ParseSlotTime(b.StartTime)
			if err != nil {
				continue
			}
			gap := startB.Sub(endA).Minutes()
			if gap < 0 || gap > float64(maxGapMinutes) {
				continue
			}
			options = append(options, models.BackToBackOption{
				Guest1:     guestSlot(serviceA, a),
				Guest2:     guestSlot(serviceB, b),
				GapMinutes: int(math.Round(gap)),
				TotalPrice: a.Price + b.Price,
			})
		}
	}

	sort.SliceStable(options, func(i, j int) bool {
		ti, errI := ParseSlotTime(options[i].Guest1.StartTime)
		tj, errJ := ParseSlotTime(options[j].Guest1.StartTime)
		if errI != nil || errJ != nil {
			return options[i].Guest1.StartTime < options[j].Guest1.StartTime
		}
		return ti.Before(tj)
	})
	return options
}
