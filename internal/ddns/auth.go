package ddns

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/mvisser/dyngate/internal/secrets"
)

// ErrBadCredentials means the supplied pair did not match the configured
// pair. Callers must not learn which of the two fields was wrong.
var ErrBadCredentials = errors.New("bad credentials")

// Authenticator checks supplied Basic Auth credentials against the secret
// backend's single configured pair.
type Authenticator struct {
	store secrets.Store
}

func NewAuthenticator(store secrets.Store) *Authenticator {
	return &Authenticator{store: store}
}

// Authenticate returns nil when the pair matches, ErrBadCredentials when it
// does not, and a wrapped backend error when the credentials could not be
// fetched at all. Both fields are compared in constant time.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) error {
	want, err := a.store.Credentials(ctx)
	if err != nil {
		return fmt.Errorf("fetching credentials: %w", err)
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(want.Username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(want.Password))
	if userOK&passOK != 1 {
		return ErrBadCredentials
	}
	return nil
}
