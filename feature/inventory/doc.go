// Package inventory loads and serves inventory snapshots.
//
// A snapshot is a delimited stock export (semicolon- or comma-separated)
// holding one listing per row. The package is the tolerant collaborator in
// front of the reconciliation engine: it drops rows missing a price or
// quantity field, defaults unparsable quantities to zero, and hands the
// engine only sanitized recon.Listing values.
//
// Snapshots can be read from a local file or from object storage. The
// storage-backed source carries a TTL cache with stampede protection and
// explicit invalidation, so repeated reconciliations against the same
// snapshot don't refetch the object.
package inventory
