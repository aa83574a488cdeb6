package meevo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"backbar/utils"

	"go.uber.org/zap"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Token returns a valid bearer token, reusing the cached one while it has
// more than the safety margin left. Without a token no availability can be
// fetched, so failures here are returned to the caller rather than degraded.
func (c *Client) Token(ctx context.Context) (string, error) {
	if c.TokenCache != nil {
		if cached, err := c.TokenCache.Get(ctx, utils.TokenCacheKey).Result(); err == nil && cached != "" {
			return cached, nil
		}
	}

	logger := utils.GetLogger()
	logger.Info("meevo: requesting fresh token")

	payload := fmt.Sprintf(`{"client_id":%q,"client_secret":%q}`, c.ClientID, c.ClientSecret)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.AuthURL, strings.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request returned status %d", resp.StatusCode)
	}

	var decoded tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if decoded.AccessToken == "" {
		return "", fmt.Errorf("token response contained no access token")
	}

	// Cache for the upstream lifetime minus a safety margin, so a token is
	// never handed out moments before it expires mid-scan.
	if c.TokenCache != nil {
		ttl := time.Duration(decoded.ExpiresIn)*time.Second - c.TokenSafetyMargin
		if ttl > 0 {
			if err := c.TokenCache.Set(ctx, utils.TokenCacheKey, decoded.AccessToken, ttl).Err(); err != nil {
				logger.Warn("meevo: failed to cache token", zap.Error(err))
			}
		}
	}

	return decoded.AccessToken, nil
}
