package models

// TimeWindow is a clock-time-of-day range used to scope one upstream scan
// query. Meevo truncates each scan response to a handful of openings, so the
// operating day is partitioned into windows and scanned window by window.
type TimeWindow struct {
	Start string `json:"start"` // e.g. "06:00"
	End   string `json:"end"`   // e.g. "08:00"
}

// RawOpening is a single opening exactly as the upstream scan returns it.
type RawOpening struct {
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	Date          string   `json:"date"`
	ServiceID     string   `json:"serviceId"`
	ServiceName   string   `json:"serviceName"`
	EmployeePrice *float64 `json:"employeePrice"`
}

// ScanQuery scopes one availability scan to a stylist, a service, a date
// range and a single time window.
type ScanQuery struct {
	StylistID  string
	ServiceID  string
	LocationID string
	StartDate  string // "2006-01-02"
	EndDate    string // "2006-01-02"
	Window     TimeWindow
}

// Slot is a normalized bookable opening with display strings precomputed so
// the calling voice agent never has to do date math.
type Slot struct {
	StartTime     string  `json:"time"`
	EndTime       string  `json:"end_time"`
	ServiceID     string  `json:"-"`
	ServiceName   string  `json:"service_name"`
	Price         float64 `json:"price"`
	DayOfWeek     string  `json:"day_of_week"`
	FormattedDate string  `json:"formatted_date"`
	FormattedTime string  `json:"formatted_time"`
	FormattedFull string  `json:"formatted_full"`
}
