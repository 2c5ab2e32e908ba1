package ddns_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvisser/dyngate/internal/ddns"
	"github.com/mvisser/dyngate/internal/secrets"
)

type fakeSecrets struct {
	creds secrets.Credentials
	err   error
	calls int
}

func (f *fakeSecrets) Credentials(context.Context) (secrets.Credentials, error) {
	f.calls++
	if f.err != nil {
		return secrets.Credentials{}, f.err
	}
	return f.creds, nil
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid pair", "router", "hunter2", nil},
		{"wrong username", "nobody", "hunter2", ddns.ErrBadCredentials},
		{"wrong password", "router", "guess", ddns.ErrBadCredentials},
		{"both wrong", "nobody", "guess", ddns.ErrBadCredentials},
		{"empty pair", "", "", ddns.ErrBadCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeSecrets{creds: secrets.Credentials{Username: "router", Password: "hunter2"}}
			a := ddns.NewAuthenticator(store)

			err := a.Authenticate(context.Background(), tt.username, tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestAuthenticate_BackendFailureIsNotBadCredentials(t *testing.T) {
	store := &fakeSecrets{err: errors.New("secretsmanager unavailable")}
	a := ddns.NewAuthenticator(store)

	err := a.Authenticate(context.Background(), "router", "hunter2")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ddns.ErrBadCredentials)
}
