package availability

import (
	"context"

	"backbar/models"
)

// TokenSource supplies a bearer token for upstream calls. Token failure is
// fatal to a request: nothing can be fetched without one.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaffDirectory supplies the active staff roster for the location, already
// filtered of inactive and placeholder accounts.
type StaffDirectory interface {
	ActiveEmployees(ctx context.Context, token string) (*models.Roster, error)
}

// OpeningScanner issues one windowed availability query upstream.
type OpeningScanner interface {
	ScanOpenings(ctx context.Context, token string, q models.ScanQuery) ([]models.RawOpening, error)
}

// ServiceResolver maps a spoken service name or opaque id to the upstream
// service id, returning "" on a miss.
type ServiceResolver interface {
	Resolve(input string) string
}

// AvailabilityService answers back-to-back availability checks.
type AvailabilityService interface {
	CheckBackToBack(ctx context.Context, req models.CheckRequest) *models.CheckResponse
}

// DefaultAvailabilityEngine implements AvailabilityService against the Meevo
// upstream.
type DefaultAvailabilityEngine struct {
	Auth      TokenSource
	Directory StaffDirectory
	Scanner   OpeningScanner
	Services  ServiceResolver

	// Windows overrides DefaultTimeWindows when set.
	Windows []models.TimeWindow

	LocationID    string
	MaxGapMinutes int
	PreviewCap    int
}
