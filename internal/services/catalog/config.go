package catalog

import "time"

// SchemaVersion is the running cache schema version. Any change to the
// stored player shape must bump this string so stale-shaped cached data
// is invalidated rather than served.
const SchemaVersion = "1.0"

// Config holds the ingestion and freshness policy settings. It is
// passed in at construction so tests can inject alternate thresholds.
type Config struct {
	// MaxAge is how old cached catalog data may be before a refresh is
	// required
	MaxAge time.Duration

	// Version is the schema version stamped into cache metadata
	Version string

	// Positions is the relevant-position set; players outside it are
	// dropped at write time
	Positions []string
}

// DefaultConfig returns the default ingestion configuration. DEF is
// excluded from the relevant positions deliberately.
func DefaultConfig() Config {
	return Config{
		MaxAge:    24 * time.Hour,
		Version:   SchemaVersion,
		Positions: []string{"QB", "RB", "WR", "TE", "K"},
	}
}
