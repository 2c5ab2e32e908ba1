package secrets

import (
	"context"
	"errors"
)

// Static serves a fixed credential pair from configuration. Intended for
// homelab deployments and tests where a secret manager is overkill.
type Static struct {
	Username string
	Password string
}

func (s Static) Credentials(context.Context) (Credentials, error) {
	if s.Username == "" || s.Password == "" {
		return Credentials{}, errors.New("static credentials not configured")
	}
	return Credentials{Username: s.Username, Password: s.Password}, nil
}
