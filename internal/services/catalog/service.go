// Package catalog implements the player ingestion pipeline and the
// cache freshness policy.
package catalog

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"leaguedash/internal/dependencies/clock"
	"leaguedash/internal/model"
	"leaguedash/internal/storage"
)

// heightPattern is the textual feet'inches" form. Anything else,
// including purely numeric legacy encodings, is treated as invalid and
// the field is cleared rather than rejected.
var heightPattern = regexp.MustCompile(`^\d+'\d+"$`)

// PlayerFetcher fetches the normalized player catalog from the
// valuation source
type PlayerFetcher interface {
	FetchPlayers(ctx context.Context) (map[model.PlayerID]model.Player, error)
}

// Service ingests the player catalog into the persistent store and
// decides when the cache must be refreshed
type Service struct {
	storage   storage.Storage
	fetcher   PlayerFetcher
	clock     clock.Clock
	cfg       Config
	positions map[string]struct{}
	logger    *slog.Logger
}

// New creates a new catalog Service
func New(storage storage.Storage, fetcher PlayerFetcher, clk clock.Clock, cfg Config, logger *slog.Logger) *Service {
	positions := make(map[string]struct{}, len(cfg.Positions))
	for _, pos := range cfg.Positions {
		positions[pos] = struct{}{}
	}

	return &Service{
		storage:   storage,
		fetcher:   fetcher,
		clock:     clk,
		cfg:       cfg,
		positions: positions,
		logger:    logger,
	}
}

// FetchPlayers retrieves the full normalized catalog from the upstream
// source without touching the store
func (s *Service) FetchPlayers(ctx context.Context) (map[model.PlayerID]model.Player, error) {
	return s.fetcher.FetchPlayers(ctx)
}

// StorePlayers writes the roster-relevant subset of the given players
// into the store in one transaction, then stamps the cache metadata.
// Players that are not Active or whose position is outside the
// configured relevant set are dropped, and malformed height values are
// cleared, all without error.
func (s *Service) StorePlayers(ctx context.Context, players map[model.PlayerID]model.Player) error {
	relevant := make(map[model.PlayerID]model.Player, len(players))
	for id, player := range players {
		if !s.shouldStore(player) {
			continue
		}
		relevant[id] = sanitizePlayer(player)
	}

	if err := s.storage.SavePlayers(ctx, relevant); err != nil {
		return err
	}

	// The metadata stamp is the freshness boundary: if it fails after
	// the player write, the cache reads as stale and gets re-fetched
	// rather than served past its age.
	meta := model.CacheMeta{
		LastUpdated: s.clock.Now().UnixMilli(),
		Version:     s.cfg.Version,
	}
	if err := s.storage.SaveMeta(ctx, meta); err != nil {
		return err
	}

	s.logger.Info("stored player catalog",
		slog.Int("stored", len(relevant)),
		slog.Int("dropped", len(players)-len(relevant)),
		slog.String("version", s.cfg.Version),
	)
	return nil
}

// FetchAndStorePlayers composes fetch and store, returning the fetched
// mapping so callers can use it without reading back from the store
func (s *Service) FetchAndStorePlayers(ctx context.Context) (map[model.PlayerID]model.Player, error) {
	players, err := s.FetchPlayers(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.StorePlayers(ctx, players); err != nil {
		return nil, err
	}
	return players, nil
}

// ShouldRefresh reports whether the cached catalog must be refreshed
// before serving. Absent metadata, elapsed age at or past MaxAge, a
// schema version mismatch, and any metadata read failure all require a
// refresh; failures err toward re-fetching.
func (s *Service) ShouldRefresh(ctx context.Context) bool {
	meta, err := s.storage.GetMeta(ctx)
	if err != nil {
		return true
	}
	if meta.Version != s.cfg.Version {
		return true
	}

	elapsed := s.clock.Now().Sub(time.UnixMilli(meta.LastUpdated))
	return elapsed >= s.cfg.MaxAge
}

// CachedPlayers returns the current catalog, refreshing it first if the
// freshness policy requires. The second return reports whether a
// refresh ran.
func (s *Service) CachedPlayers(ctx context.Context) (map[model.PlayerID]model.Player, bool, error) {
	if s.ShouldRefresh(ctx) {
		players, err := s.FetchAndStorePlayers(ctx)
		if err != nil {
			return nil, false, err
		}
		return players, true, nil
	}

	players, err := s.storage.GetAllPlayers(ctx)
	if err != nil {
		return nil, false, err
	}
	return players, false, nil
}

// shouldStore applies the write-time filter: only Active players at a
// relevant position are persisted
func (s *Service) shouldStore(player model.Player) bool {
	if player.Status != model.PlayerStatusActive {
		return false
	}
	_, ok := s.positions[player.Position]
	return ok
}

// sanitizePlayer clears physical fields that fail validation
func sanitizePlayer(player model.Player) model.Player {
	if player.Height != nil && !heightPattern.MatchString(*player.Height) {
		player.Height = nil
	}
	return player
}
