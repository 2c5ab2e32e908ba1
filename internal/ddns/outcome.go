// Package ddns implements the No-IP compatible update pipeline: request
// validation, credential checking, record reconciliation against the DNS
// backend, and the mapping of results onto the fixed protocol vocabulary.
package ddns

// Kind enumerates the possible results of handling an update request.
type Kind int

const (
	// Unauthorized means the caller failed HTTP Basic authentication.
	Unauthorized Kind = iota
	// BadRequest means the caller supplied a malformed hostname or IP,
	// or a hostname no visible zone is authoritative for.
	BadRequest
	// NoChange means the published record already holds the claimed IP.
	NoChange
	// Updated means the record was written with a new value.
	Updated
	// BackendError means a call to the secret or DNS backend failed.
	BackendError
)

// Outcome is the result of one update request. IP carries the confirmed
// address for NoChange and Updated; Previous carries the prior record value
// for Updated, and is empty when no record existed before.
type Outcome struct {
	Kind     Kind
	IP       string
	Previous string
}

func (k Kind) String() string {
	switch k {
	case Unauthorized:
		return "unauthorized"
	case BadRequest:
		return "bad_request"
	case NoChange:
		return "no_change"
	case Updated:
		return "updated"
	case BackendError:
		return "backend_error"
	default:
		return "unknown"
	}
}
