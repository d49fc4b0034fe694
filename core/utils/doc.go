// Package utils provides common utility functions for the cardstock
// application. It includes tolerant parsing for locale-formatted numeric
// fields from stock exports, and other shared logic that doesn't fit into
// domain-specific packages.
package utils
