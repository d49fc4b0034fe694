package utils

import (
	"strconv"
	"strings"
)

// ParseQuantity converts a stock file quantity field to a non-negative int.
// Thousands separators and surrounding whitespace are tolerated. Anything
// unparsable, and any negative value, comes back as zero so a single bad row
// never fails a whole snapshot.
func ParseQuantity(s string) int {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParsePrice converts a locale-formatted price string to a float64.
// Stock exports use either "." or "," as decimal separator ("14.50",
// "14,50"); a comma is normalized before parsing. Currency symbols and
// whitespace around the number are stripped.
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimFunc(s, func(r rune) bool {
		return !(r >= '0' && r <= '9') && r != '.' && r != ',' && r != '-'
	})
	// When both separators appear the last one is the decimal point.
	if dot, comma := strings.LastIndex(s, "."), strings.LastIndex(s, ","); comma > dot {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	} else if comma >= 0 {
		s = strings.ReplaceAll(s, ",", "")
	}

	return strconv.ParseFloat(s, 64)
}

// ParseFlag interprets the boolean flag columns of a stock export.
// Exports mark foil/signed columns with "1", "true", "X" or "Y"; anything
// else is false.
func ParseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "x", "y", "yes":
		return true
	default:
		return false
	}
}
