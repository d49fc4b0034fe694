package invoice

// Config holds configuration for the external invoicing API.
type Config struct {
	// BaseURL is the root URL of the invoicing service.
	BaseURL string `mapstructure:"base_url" default:""`
	// ApiKey is the secret key for the invoicing API.
	ApiKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds is the request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
