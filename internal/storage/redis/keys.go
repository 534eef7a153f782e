package redis

import (
	"fmt"

	"leaguedash/internal/model"
)

// Key prefix for all cached league data
const keyPrefix = "leaguedash"

// Key generation functions for each collection

// playerKey returns the Redis key for a cached Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playerIndexKey returns the Redis key for the SET of all cached player keys
func playerIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// metaKey returns the Redis key for the cache metadata singleton
func metaKey() string {
	return fmt.Sprintf("%s:meta:lastUpdate", keyPrefix)
}

// ownershipKey returns the Redis key for a season-scoped ownership stat
func ownershipKey(season string, id model.PlayerID) string {
	return fmt.Sprintf("%s:ownership:%s:%s", keyPrefix, season, id)
}

// ownershipIndexKey returns the Redis key for the SET of ownership keys
// for one season
func ownershipIndexKey(season string) string {
	return fmt.Sprintf("%s:idx:ownership:%s", keyPrefix, season)
}
