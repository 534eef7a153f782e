package storage

import (
	"context"

	"leaguedash/internal/model"
)

// Storage defines the interface for the persistent player-data cache.
// It holds three independent collections: players, ownership statistics
// and cache metadata.
type Storage interface {
	// Player operations. SavePlayers replaces the given records in one
	// atomic transaction; either all writes land or none do.
	SavePlayers(ctx context.Context, players map[model.PlayerID]model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetAllPlayers(ctx context.Context) (map[model.PlayerID]model.Player, error)

	// Cache metadata operations. The metadata record is a singleton
	// written after each successful ingestion run.
	SaveMeta(ctx context.Context, meta model.CacheMeta) error
	GetMeta(ctx context.Context) (*model.CacheMeta, error)

	// Ownership operations, namespaced by season and refreshed
	// independently of the player catalog
	SaveOwnership(ctx context.Context, season string, stats map[model.PlayerID]model.OwnershipStat) error
	GetOwnership(ctx context.Context, season string, id model.PlayerID) (*model.OwnershipStat, error)
	GetAllOwnership(ctx context.Context, season string) (map[model.PlayerID]model.OwnershipStat, error)
}
