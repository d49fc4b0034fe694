// Package prices collects market price data into the local database.
//
// A collection run fetches the configured price feed over HTTP, tolerantly
// parses its records, and stores one snapshot row per card and timestamp via
// GORM. The collector can run once (CLI) or on an interval. Query helpers
// expose the latest known price per card name for the other features.
package prices
