// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as the supported price currencies.
//
// # Configuration
//
// The Config struct defines the HTTP port, API key, and the currency code
// (EUR, USD, GBP) that stock prices are denominated in.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by renderers and the invoice bridge to label prices.
package server
