package meevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"backbar/config"
	"backbar/models"
	"backbar/utils"

	"github.com/go-redis/redis/v8"
)

// Client talks to the Meevo public API. It owns the upstream credentials and
// the two process-wide caches (bearer token, active-employee roster).
type Client struct {
	AuthURL      string
	APIURL       string
	APIURLV2     string
	ClientID     string
	ClientSecret string
	TenantID     string
	LocationID   string

	HTTP *http.Client

	TokenCache        *redis.Client
	RosterCache       *redis.Client
	TokenSafetyMargin time.Duration
	RosterTTL         time.Duration
}

// NewClient builds a client from the loaded application config.
func NewClient() *Client {
	cfg := config.AppConfig
	return &Client{
		AuthURL:           cfg.MeevoAuthURL,
		APIURL:            cfg.MeevoAPIURL,
		APIURLV2:          cfg.MeevoAPIURLV2,
		ClientID:          cfg.MeevoClientID,
		ClientSecret:      cfg.MeevoClientSecret,
		TenantID:          cfg.MeevoTenantID,
		LocationID:        cfg.MeevoLocationID,
		HTTP:              &http.Client{Timeout: time.Duration(cfg.UpstreamTimeoutSeconds) * time.Second},
		TokenCache:        utils.GetAuthCacheClient(),
		RosterCache:       utils.GetRosterCacheClient(),
		TokenSafetyMargin: time.Duration(cfg.TokenSafetyMarginSecs) * time.Second,
		RosterTTL:         time.Duration(cfg.EmployeeCacheTTLMinutes) * time.Minute,
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: 10 * time.Second}
}

type scanService struct {
	ServiceID   string   `json:"ServiceId"`
	EmployeeIDs []string `json:"EmployeeIds"`
}

type scanRequest struct {
	LocationID   int           `json:"LocationId"`
	TenantID     int           `json:"TenantId"`
	ScanDateType int           `json:"ScanDateType"`
	StartDate    string        `json:"StartDate"`
	EndDate      string        `json:"EndDate"`
	ScanTimeType int           `json:"ScanTimeType"`
	StartTime    string        `json:"StartTime"`
	EndTime      string        `json:"EndTime"`
	ScanServices []scanService `json:"ScanServices"`
}

type scanResponse struct {
	Data []struct {
		ServiceOpenings []models.RawOpening `json:"serviceOpenings"`
	} `json:"data"`
}

// ScanOpenings issues one availability scan scoped to a single time window.
// The window scoping is what keeps each response under Meevo's per-query
// opening cap.
func (c *Client) ScanOpenings(ctx context.Context, token string, q models.ScanQuery) ([]models.RawOpening, error) {
	locationID, _ := strconv.Atoi(q.LocationID)
	tenantID, _ := strconv.Atoi(c.TenantID)

	body := scanRequest{
		LocationID:   locationID,
		TenantID:     tenantID,
		ScanDateType: 1,
		StartDate:    q.StartDate,
		EndDate:      q.EndDate,
		ScanTimeType: 1,
		StartTime:    q.Window.Start,
		EndTime:      q.Window.End,
		ScanServices: []scanService{{ServiceID: q.ServiceID, EmployeeIDs: []string{q.StylistID}}},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scan request: %w", err)
	}

	url := fmt.Sprintf("%s/scan/openings?TenantId=%s&LocationId=%s", c.APIURLV2, c.TenantID, q.LocationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build scan request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("scan request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scan request returned status %d", resp.StatusCode)
	}

	var decoded scanResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode scan response: %w", err)
	}

	var openings []models.RawOpening
	for _, item := range decoded.Data {
		openings = append(openings, item.ServiceOpenings...)
	}
	return openings, nil
}
