package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"leaguedash/internal/model"
	"leaguedash/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// storeErr wraps a Redis failure in the store I/O error kind
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", model.ErrStoreIO, err)
}

// Player operations

// SavePlayers upserts all given players inside one MULTI/EXEC
// transaction. Records are queued in WriteBatchSize chunks to bound
// marshaling work per step; the commit is still all-or-nothing.
func (s *Storage) SavePlayers(ctx context.Context, players map[model.PlayerID]model.Player) error {
	ids := make([]model.PlayerID, 0, len(players))
	for id := range players {
		ids = append(ids, id)
	}

	batchSize := s.cfg.WriteBatchSize
	if batchSize <= 0 {
		batchSize = DefaultConfig().WriteBatchSize
	}

	pipe := s.client.TxPipeline()
	for start := 0; start < len(ids); start += batchSize {
		end := start + batchSize
		if end > len(ids) {
			end = len(ids)
		}
		for _, id := range ids[start:end] {
			player := players[id]
			data, err := json.Marshal(&player)
			if err != nil {
				return storeErr(err)
			}
			pipe.Set(ctx, playerKey(id), data, 0)
			pipe.SAdd(ctx, playerIndexKey(), playerKey(id))
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, storeErr(err)
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, storeErr(err)
	}
	return &player, nil
}

func (s *Storage) GetAllPlayers(ctx context.Context) (map[model.PlayerID]model.Player, error) {
	keys, err := s.client.SMembers(ctx, playerIndexKey()).Result()
	if err != nil {
		return nil, storeErr(err)
	}

	players := make(map[model.PlayerID]model.Player, len(keys))
	if len(keys) == 0 {
		return players, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, storeErr(err)
	}

	for _, val := range values {
		if val == nil {
			continue // Indexed key with no record
		}
		var player model.Player
		if err := json.Unmarshal([]byte(val.(string)), &player); err != nil {
			continue // Skip invalid data
		}
		players[player.ID] = player
	}

	return players, nil
}

// Cache metadata operations

func (s *Storage) SaveMeta(ctx context.Context, meta model.CacheMeta) error {
	data, err := json.Marshal(&meta)
	if err != nil {
		return storeErr(err)
	}

	if err := s.client.Set(ctx, metaKey(), data, 0).Err(); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *Storage) GetMeta(ctx context.Context) (*model.CacheMeta, error) {
	data, err := s.client.Get(ctx, metaKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMetaNotFound
		}
		return nil, storeErr(err)
	}

	var meta model.CacheMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, storeErr(err)
	}
	return &meta, nil
}

// Ownership operations

func (s *Storage) SaveOwnership(ctx context.Context, season string, stats map[model.PlayerID]model.OwnershipStat) error {
	pipe := s.client.TxPipeline()
	for id, stat := range stats {
		data, err := json.Marshal(&stat)
		if err != nil {
			return storeErr(err)
		}
		pipe.Set(ctx, ownershipKey(season, id), data, 0)
		pipe.SAdd(ctx, ownershipIndexKey(season), ownershipKey(season, id))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *Storage) GetOwnership(ctx context.Context, season string, id model.PlayerID) (*model.OwnershipStat, error) {
	data, err := s.client.Get(ctx, ownershipKey(season, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrOwnershipNotFound
		}
		return nil, storeErr(err)
	}

	var stat model.OwnershipStat
	if err := json.Unmarshal(data, &stat); err != nil {
		return nil, storeErr(err)
	}
	return &stat, nil
}

func (s *Storage) GetAllOwnership(ctx context.Context, season string) (map[model.PlayerID]model.OwnershipStat, error) {
	keys, err := s.client.SMembers(ctx, ownershipIndexKey(season)).Result()
	if err != nil {
		return nil, storeErr(err)
	}

	stats := make(map[model.PlayerID]model.OwnershipStat, len(keys))
	if len(keys) == 0 {
		return stats, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, storeErr(err)
	}

	for _, val := range values {
		if val == nil {
			continue
		}
		var stat model.OwnershipStat
		if err := json.Unmarshal([]byte(val.(string)), &stat); err != nil {
			continue
		}
		stats[stat.PlayerID] = stat
	}

	return stats, nil
}
