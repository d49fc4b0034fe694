// Package invoice bridges order-export CSV files to the external invoicing
// service.
//
// An order export holds one article row per line; rows sharing an order ID
// are grouped into a single invoice draft. Drafts are submitted to the
// invoicing API over HTTP with API-key authentication. Submission follows
// the same confirm/dry-run discipline as the other mutating commands:
// nothing is sent unless the caller confirmed and dry-run is off.
package invoice
