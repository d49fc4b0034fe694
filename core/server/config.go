package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Currency is the currency code stock prices are denominated in.
	Currency string `mapstructure:"currency" default:"EUR"`
}

const (
	CurrencyEUR = "EUR"
	CurrencyUSD = "USD"
	CurrencyGBP = "GBP"
)

// IsValidCurrency checks if the configured currency is supported.
func (c Config) IsValidCurrency() bool {
	switch c.Currency {
	case CurrencyEUR, CurrencyUSD, CurrencyGBP:
		return true
	default:
		return false
	}
}
