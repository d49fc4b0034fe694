// Package recon implements the stock reconciliation engine: it matches a
// want-list against an inventory snapshot and classifies availability per
// want entry.
//
// The engine is a pure function over two already-parsed, immutable
// collections. It performs no I/O, holds no state, and never returns an
// error: absence of stock is a first-class result status, not a failure.
//
// # Matching semantics
//
// Listings are matched to want entries by card name only, compared
// case-insensitively with exact equality (no fuzzy matching, no set or
// printing awareness). This mirrors how the stock files are keyed in
// practice; it is a known limitation, not something to "fix" with
// identifier-based matching.
//
// # Usage
//
//	results := recon.Match(inventory, wants)
//	summary := recon.Summarize(results)
//	groups := recon.BuildPickingList(results)
//
// Match results preserve both want-list order and, within each result, the
// inventory order of the matched listings, so output is deterministic and
// renderable as-is.
package recon
