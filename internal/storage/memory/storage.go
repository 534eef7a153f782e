package memory

import (
	"context"
	"sync"

	"leaguedash/internal/model"
	"leaguedash/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players   map[model.PlayerID]model.Player
	meta      *model.CacheMeta
	ownership map[ownershipKey]model.OwnershipStat
}

type ownershipKey struct {
	season   string
	playerID model.PlayerID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:   make(map[model.PlayerID]model.Player),
		ownership: make(map[ownershipKey]model.OwnershipStat),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayers(ctx context.Context, players map[model.PlayerID]model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, player := range players {
		s.players[id] = player
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return &player, nil
}

func (s *Storage) GetAllPlayers(ctx context.Context) (map[model.PlayerID]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make(map[model.PlayerID]model.Player, len(s.players))
	for id, player := range s.players {
		players[id] = player
	}
	return players, nil
}

// Cache metadata operations

func (s *Storage) SaveMeta(ctx context.Context, meta model.CacheMeta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta = &meta
	return nil
}

func (s *Storage) GetMeta(ctx context.Context) (*model.CacheMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.meta == nil {
		return nil, model.ErrMetaNotFound
	}
	meta := *s.meta
	return &meta, nil
}

// Ownership operations

func (s *Storage) SaveOwnership(ctx context.Context, season string, stats map[model.PlayerID]model.OwnershipStat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, stat := range stats {
		s.ownership[ownershipKey{season: season, playerID: id}] = stat
	}
	return nil
}

func (s *Storage) GetOwnership(ctx context.Context, season string, id model.PlayerID) (*model.OwnershipStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stat, ok := s.ownership[ownershipKey{season: season, playerID: id}]
	if !ok {
		return nil, model.ErrOwnershipNotFound
	}
	return &stat, nil
}

func (s *Storage) GetAllOwnership(ctx context.Context, season string) (map[model.PlayerID]model.OwnershipStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := make(map[model.PlayerID]model.OwnershipStat)
	for key, stat := range s.ownership {
		if key.season == season {
			stats[key.playerID] = stat
		}
	}
	return stats, nil
}
