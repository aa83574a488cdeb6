package models

// GuestSlot is one half of a back-to-back option, labelled with the service
// the guest asked for.
type GuestSlot struct {
	Service       string  `json:"service"`
	StartTime     string  `json:"time"`
	EndTime       string  `json:"end_time"`
	Price         float64 `json:"price"`
	DayOfWeek     string  `json:"day_of_week"`
	FormattedDate string  `json:"formatted_date"`
	FormattedTime string  `json:"formatted_time"`
	FormattedFull string  `json:"formatted_full"`
}

// BackToBackOption pairs two slots with the same stylist where the second
// starts at or shortly after the first ends.
type BackToBackOption struct {
	Guest1     GuestSlot `json:"guest1"`
	Guest2     GuestSlot `json:"guest2"`
	GapMinutes int       `json:"gap_minutes"`
	TotalPrice float64   `json:"total_price"`
}
