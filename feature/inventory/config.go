package inventory

// Config holds configuration for the inventory snapshot source.
type Config struct {
	// SnapshotObject is the object name of the stock export in the bucket.
	SnapshotObject string `mapstructure:"snapshot_object" default:"exports/stock.csv"`
	// CacheTTLMinutes is how long a fetched snapshot stays cached.
	// Zero disables caching.
	CacheTTLMinutes int `mapstructure:"cache_ttl_minutes" default:"5"`
}
