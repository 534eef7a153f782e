// Package sleeper is a client for the league roster/user and ownership
// research endpoints. The API is public; no authentication is needed.
package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"leaguedash/internal/clients"
	"leaguedash/internal/model"
)

const (
	sourceName     = "sleeper"
	defaultBaseURL = "https://api.sleeper.app/v1"
)

// Config controls how the client reaches the upstream API
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches league data over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a league data client
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// GetRosters returns all rosters for one league
func (c *Client) GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	var rosters []model.Roster
	path := fmt.Sprintf("/league/%s/rosters", leagueID)
	if err := c.getJSON(ctx, path, &rosters); err != nil {
		return nil, err
	}
	if rosters == nil {
		return nil, model.ErrLeagueNotFound
	}
	return rosters, nil
}

// GetUsers returns all member users for one league
func (c *Client) GetUsers(ctx context.Context, leagueID string) ([]model.User, error) {
	var users []model.User
	path := fmt.Sprintf("/league/%s/users", leagueID)
	if err := c.getJSON(ctx, path, &users); err != nil {
		return nil, err
	}
	if users == nil {
		return nil, model.ErrLeagueNotFound
	}
	return users, nil
}

// researchEntry is the raw shape of one ownership research record
type researchEntry struct {
	Owned   float64 `json:"owned"`
	Started float64 `json:"started"`
}

// FetchOwnership returns ownership statistics by player id for one season
func (c *Client) FetchOwnership(ctx context.Context, season string) (map[model.PlayerID]model.OwnershipStat, error) {
	var raw map[string]researchEntry
	path := fmt.Sprintf("/players/nfl/research/regular/%s", season)
	if err := c.getJSON(ctx, path, &raw); err != nil {
		return nil, err
	}

	stats := make(map[model.PlayerID]model.OwnershipStat, len(raw))
	for id, entry := range raw {
		stats[model.PlayerID(id)] = model.OwnershipStat{
			PlayerID: model.PlayerID(id),
			Owned:    entry.Owned,
			Started:  entry.Started,
		}
	}
	return stats, nil
}

// getJSON issues one GET request and decodes the response body. Requests
// are not retried.
func (c *Client) getJSON(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", sourceName, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", sourceName, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return model.ErrLeagueNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &clients.FetchError{
			Source:     sourceName,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidResponseFormat, err)
	}
	return nil
}
