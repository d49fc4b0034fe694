// Package config provides configuration management for cardstock.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags on the partial
// config types.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, currency)
//   - Database: price database connection (sqlite or mysql)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: logging level and format
//   - Inventory: snapshot object name and cache TTL
//   - Invoice: external invoicing API endpoint and credentials
//   - Prices: price feed URL and collection interval
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
