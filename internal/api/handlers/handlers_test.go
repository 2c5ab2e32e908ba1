package handlers_test

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mvisser/dyngate/internal/api/handlers"
	"github.com/mvisser/dyngate/internal/config"
	"github.com/mvisser/dyngate/internal/ddns"
	"github.com/mvisser/dyngate/internal/dnsstore"
	"github.com/mvisser/dyngate/internal/secrets"
)

// fakeSecrets counts fetches so tests can assert the secret backend is never
// touched for requests that must short-circuit earlier.
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

// fakeDNS is a stateful single-zone DNS backend with call counters.
type fakeDNS struct {
	zoneName  string
	zoneID    string
	record    dnsstore.Record
	hasRecord bool
	readErr   error

	resolveCalls int
	readCalls    int
	writeCalls   int
}

func (f *fakeDNS) ResolveZone(_ context.Context, hostname string) (string, error) {
	f.resolveCalls++
	if hostname == f.zoneName || strings.HasSuffix(hostname, "."+f.zoneName) {
		return f.zoneID, nil
	}
	return "", dnsstore.ErrZoneNotFound
}

func (f *fakeDNS) Record(_ context.Context, zoneID, hostname string) (dnsstore.Record, error) {
	f.readCalls++
	if f.readErr != nil {
		return dnsstore.Record{}, f.readErr
	}
	if !f.hasRecord || f.record.Name != hostname {
		return dnsstore.Record{}, dnsstore.ErrRecordNotFound
	}
	return f.record, nil
}

func (f *fakeDNS) SetRecord(_ context.Context, zoneID string, rec dnsstore.Record) error {
	f.writeCalls++
	if rec.ID == "" {
		rec.ID = "rec-new"
	}
	f.record = rec
	f.hasRecord = true
	return nil
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Secrets.Provider = config.SecretsStatic
	cfg.Secrets.Username = "router"
	cfg.Secrets.Password = "hunter2"
	return cfg
}

func setupTestRouter(cfg *config.Config, creds secrets.Store, store dnsstore.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.New(cfg,
		ddns.NewAuthenticator(creds),
		ddns.NewReconciler(store, cfg.DNS.RecordTTL, nil),
		nil,
	)
	r := gin.New()
	r.GET("/healthz", h.Health)
	r.GET(cfg.Server.UpdatePath, h.Update)
	r.PUT(cfg.Server.UpdatePath, h.Update)
	return r
}
