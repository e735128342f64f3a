// Package trackinglog keeps the append-only delivery history of parcels.
// Each event's timestamp is assigned by the log, never by the caller.
package trackinglog
