// Package dnsstore abstracts the DNS backend holding the address records
// this service publishes. The contract is deliberately narrow: resolve the
// owning zone, read one A record, write one A record.
package dnsstore

import (
	"context"
	"errors"
)

var (
	// ErrZoneNotFound means no visible zone is authoritative for the
	// hostname. This is a caller input problem, not a backend failure.
	ErrZoneNotFound = errors.New("no matching zone")
	// ErrRecordNotFound means the zone has no A record for the hostname.
	ErrRecordNotFound = errors.New("record not found")
)

// Record is one A record as seen by the backend. ID is backend-assigned and
// empty for a record that does not exist yet.
type Record struct {
	ID   string
	Name string
	IP   string
	TTL  int
}

// Store is the DNS backend contract.
type Store interface {
	// ResolveZone returns the ID of the zone owning hostname, chosen by
	// longest suffix match, or ErrZoneNotFound.
	ResolveZone(ctx context.Context, hostname string) (string, error)
	// Record returns the current A record for hostname in the zone, or
	// ErrRecordNotFound when none exists.
	Record(ctx context.Context, zoneID, hostname string) (Record, error)
	// SetRecord writes rec into the zone: an update when rec.ID is set,
	// a create otherwise.
	SetRecord(ctx context.Context, zoneID string, rec Record) error
}
