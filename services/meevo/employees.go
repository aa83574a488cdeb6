package meevo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"backbar/models"
	"backbar/utils"

	"go.uber.org/zap"
)

// objectStateActive is Meevo's object state code for active employees.
const objectStateActive = 2026

// rosterCacheHardTTL keeps the cached roster around well past its freshness
// window so a failed refresh can fall back to the stale copy.
const rosterCacheHardTTL = 24 * time.Hour

// excludedFirstNames are placeholder accounts the location keeps on the books
// that must never be offered to a guest.
var excludedFirstNames = map[string]bool{
	"home":     true,
	"training": true,
	"test":     true,
}

type employeesResponse struct {
	Data []struct {
		ID          string `json:"id"`
		FirstName   string `json:"firstName"`
		NickName    string `json:"nickName"`
		ObjectState int    `json:"objectState"`
	} `json:"data"`
}

// ActiveEmployees returns the active staff roster for the location, cached
// for the configured TTL. A failed refresh degrades: the stale cached roster
// is reused if one exists, otherwise an empty roster is returned. Either way
// the request continues.
func (c *Client) ActiveEmployees(ctx context.Context, token string) (*models.Roster, error) {
	logger := utils.GetLogger()

	var cached models.Roster
	hasCached := utils.CacheGetJSON(ctx, c.RosterCache, utils.RosterCacheKey, &cached)
	if hasCached && time.Since(cached.RefreshedAt) < c.RosterTTL {
		logger.Debug("meevo: using cached roster", zap.Int("employees", len(cached.Employees)))
		return &cached, nil
	}

	logger.Info("meevo: fetching active employees")
	roster, err := c.fetchEmployees(ctx, token)
	if err != nil {
		if hasCached {
			logger.Warn("meevo: employee fetch failed, serving stale roster", zap.Error(err))
			return &cached, nil
		}
		logger.Warn("meevo: employee fetch failed with no cached roster", zap.Error(err))
		return &models.Roster{}, nil
	}

	utils.CacheSetJSON(ctx, c.RosterCache, utils.RosterCacheKey, roster, rosterCacheHardTTL)
	logger.Info("meevo: cached active employees", zap.Int("employees", len(roster.Employees)))
	return roster, nil
}

func (c *Client) fetchEmployees(ctx context.Context, token string) (*models.Roster, error) {
	url := fmt.Sprintf("%s/employees?tenantid=%s&locationid=%s&ItemsPerPage=100", c.APIURL, c.TenantID, c.LocationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build employees request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("employees request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("employees request returned status %d", resp.StatusCode)
	}

	var decoded employeesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode employees response: %w", err)
	}

	roster := &models.Roster{RefreshedAt: time.Now()}
	for _, emp := range decoded.Data {
		if emp.ObjectState != objectStateActive {
			continue
		}
		if excludedFirstNames[strings.ToLower(emp.FirstName)] {
			continue
		}
		name := emp.NickName
		if name == "" {
			name = emp.FirstName
		}
		roster.Employees = append(roster.Employees, models.Employee{
			ID:       emp.ID,
			Name:     name,
			Nickname: name,
		})
	}
	return roster, nil
}
