// Package wantlist parses want-lists and reconciles them against the
// inventory snapshot.
//
// A want-list is plain text, one desired card per line in the form
// "<quantity> <name>". Blank lines and the "Deck" section header are
// skipped; malformed lines are silently dropped rather than failing the
// list. The reconciliation itself is delegated to core/recon; this package
// supplies the parsed inputs and renders the summary and picking-list views
// for the CLI and the HTTP API.
package wantlist
