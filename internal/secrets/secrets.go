// Package secrets provides access to the single credential pair that update
// requests are authenticated against. The pair lives in an external secret
// backend and is fetched per request; it is never cached or logged.
package secrets

import "context"

// Credentials is the configured username/password pair.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Store retrieves the configured credentials. An error indicates the backend
// is unavailable, not that any supplied credentials are wrong.
type Store interface {
	Credentials(ctx context.Context) (Credentials, error)
}
