package model

// CacheMeta is the singleton record stamped after each successful
// catalog ingestion. Version must match the running schema version for
// cached data to be served.
type CacheMeta struct {
	// LastUpdated is epoch milliseconds of the last successful ingestion
	LastUpdated int64  `json:"lastUpdated"`
	Version     string `json:"version"`
}

// OwnershipStat is a per-player ownership statistic for one season.
// Owned and Started are percentages in [0, 100].
type OwnershipStat struct {
	PlayerID PlayerID `json:"player_id"`
	Owned    float64  `json:"owned"`
	Started  float64  `json:"started"`
}
