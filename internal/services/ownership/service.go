// Package ownership refreshes and serves per-season ownership
// statistics, independently of the player catalog refresh cycle.
package ownership

import (
	"context"
	"log/slog"

	"leaguedash/internal/model"
	"leaguedash/internal/storage"
)

// Fetcher fetches ownership statistics from the research source
type Fetcher interface {
	FetchOwnership(ctx context.Context, season string) (map[model.PlayerID]model.OwnershipStat, error)
}

// Service manages the ownership statistics collection
type Service struct {
	storage storage.Storage
	fetcher Fetcher
	logger  *slog.Logger
}

// New creates a new ownership Service
func New(storage storage.Storage, fetcher Fetcher, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		fetcher: fetcher,
		logger:  logger,
	}
}

// Refresh fetches ownership statistics for one season and replaces the
// stored records in a single transaction. Returns the number stored.
func (s *Service) Refresh(ctx context.Context, season string) (int, error) {
	stats, err := s.fetcher.FetchOwnership(ctx, season)
	if err != nil {
		return 0, err
	}

	if err := s.storage.SaveOwnership(ctx, season, stats); err != nil {
		return 0, err
	}

	s.logger.Info("stored ownership statistics",
		slog.String("season", season),
		slog.Int("players", len(stats)),
	)
	return len(stats), nil
}

// Get returns the stored ownership stat for one player and season
func (s *Service) Get(ctx context.Context, season string, id model.PlayerID) (*model.OwnershipStat, error) {
	return s.storage.GetOwnership(ctx, season, id)
}

// GetAll returns all stored ownership stats for one season
func (s *Service) GetAll(ctx context.Context, season string) (map[model.PlayerID]model.OwnershipStat, error) {
	return s.storage.GetAllOwnership(ctx, season)
}
