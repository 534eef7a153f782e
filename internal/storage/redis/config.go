package redis

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// WriteBatchSize bounds how many player records are queued into the
	// replace transaction at a time. The full replacement still commits
	// as a single MULTI/EXEC; batching only bounds marshaling buffers
	// for catalogs with thousands of entries.
	WriteBatchSize int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:            "redis://localhost:6379",
		PoolSize:       10,
		MinIdleConns:   2,
		WriteBatchSize: 500,
	}
}
