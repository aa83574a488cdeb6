package models

import "time"

// Employee is one active staff member at the location.
type Employee struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
}

// Roster is the cached active-employee list together with the instant it was
// fetched, so a stale copy can still be served when a refresh fails.
type Roster struct {
	Employees   []Employee `json:"employees"`
	RefreshedAt time.Time  `json:"refreshedAt"`
}

// Names returns the display names of everyone on the roster.
func (r *Roster) Names() []string {
	names := make([]string, 0, len(r.Employees))
	for _, emp := range r.Employees {
		if emp.Nickname != "" {
			names = append(names, emp.Nickname)
		} else {
			names = append(names, emp.Name)
		}
	}
	return names
}

// ByID returns the employee with the given id, if present.
func (r *Roster) ByID(id string) (Employee, bool) {
	for _, emp := range r.Employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return Employee{}, false
}

// CheckRequest is the inbound payload for a back-to-back availability check.
type CheckRequest struct {
	StylistName    string   `json:"stylist_name"`
	StylistID      string   `json:"stylist_id"`
	Services       []string `json:"services"`
	DateStart      string   `json:"date_start"`
	DateEnd        string   `json:"date_end"`
	SpecificDate   string   `json:"specific_date"`
	TimePreference string   `json:"time_preference"` // "morning", "afternoon" or empty
	LocationID     string   `json:"location_id"`
}

// DateRange is the resolved date scope a check ran over.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CheckResponse is the envelope returned for every check, success or not.
// Domain failures are reported through Success/Error so the voice agent can
// branch without handling transport errors.
type CheckResponse struct {
	Success           bool     `json:"success"`
	Error             string   `json:"error,omitempty"`
	AvailableStylists []string `json:"available_stylists,omitempty"`

	StylistName      string     `json:"stylist_name,omitempty"`
	StylistID        string     `json:"stylist_id,omitempty"`
	ServicesSearched []string   `json:"services_searched,omitempty"`
	DateRange        *DateRange `json:"date_range,omitempty"`

	BackToBackAvailable bool               `json:"back_to_back_available"`
	EarliestOption      *BackToBackOption  `json:"earliest_option,omitempty"`
	BackToBackOptions   []BackToBackOption `json:"back_to_back_options,omitempty"`

	// Raw availability per requested service, capped for the agent's reference.
	AvailabilityByService map[string][]Slot `json:"availability_by_service,omitempty"`

	Message     string `json:"message,omitempty"`
	PairingNote string `json:"pairing_note,omitempty"`
}
