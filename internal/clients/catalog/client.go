// Package catalog fetches the full player/valuation catalog and
// normalizes its heterogeneous entries into the canonical player shape.
package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"leaguedash/internal/clients"
	"leaguedash/internal/model"
)

// The catalog payload runs to several megabytes; jsoniter keeps the
// decode cost tolerable.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	sourceName  = "catalog"
	playersPath = "/players"
)

// Config controls how the catalog client reaches the upstream API
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches the player catalog over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient constructs a catalog client with the provided configuration
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// catalogEnvelope is the expected top-level response shape
type catalogEnvelope struct {
	Players []map[string]any `json:"players"`
}

// FetchPlayers retrieves the full catalog in one request and returns a
// mapping from player id to normalized player. Individual malformed
// entries are skipped silently; only network and envelope failures fail
// the whole call.
func (c *Client) FetchPlayers(ctx context.Context) (map[model.PlayerID]model.Player, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+playersPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", sourceName, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request failed: %w", sourceName, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &clients.FetchError{
			Source:     sourceName,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", sourceName, err)
	}

	var envelope catalogEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidResponseFormat, err)
	}
	if envelope.Players == nil {
		return nil, fmt.Errorf("%w: missing players field", model.ErrInvalidResponseFormat)
	}

	players := make(map[model.PlayerID]model.Player, len(envelope.Players))
	skipped := 0
	for _, entry := range envelope.Players {
		player, ok := normalizeEntry(entry)
		if !ok {
			skipped++
			continue
		}
		players[player.ID] = player
	}

	c.logger.Info("fetched player catalog",
		slog.Int("players", len(players)),
		slog.Int("skipped", skipped),
	)

	return players, nil
}
