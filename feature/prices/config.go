package prices

// Config holds configuration for the price feed collector.
type Config struct {
	// FeedURL is the price feed endpoint. Empty disables collection.
	FeedURL string `mapstructure:"feed_url" default:""`
	// IntervalMinutes is the pause between collection runs in loop mode.
	IntervalMinutes int `mapstructure:"interval_minutes" default:"60"`
	// TimeoutSeconds is the feed request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
