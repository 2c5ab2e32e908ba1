package ddns_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvisser/dyngate/internal/ddns"
	"github.com/mvisser/dyngate/internal/dnsstore"
)

// fakeStore is a stateful in-memory dnsstore.Store with call counters.
type fakeStore struct {
	zoneID    string
	zoneErr   error
	record    dnsstore.Record
	hasRecord bool
	recordErr error
	setErr    error

	resolveCalls int
	readCalls    int
	setCalls     int
	lastZone     string
}

func (f *fakeStore) ResolveZone(_ context.Context, hostname string) (string, error) {
	f.resolveCalls++
	if f.zoneErr != nil {
		return "", f.zoneErr
	}
	if f.zoneID == "" {
		return "", dnsstore.ErrZoneNotFound
	}
	return f.zoneID, nil
}

func (f *fakeStore) Record(_ context.Context, zoneID, hostname string) (dnsstore.Record, error) {
	f.readCalls++
	if f.recordErr != nil {
		return dnsstore.Record{}, f.recordErr
	}
	if !f.hasRecord {
		return dnsstore.Record{}, dnsstore.ErrRecordNotFound
	}
	return f.record, nil
}

func (f *fakeStore) SetRecord(_ context.Context, zoneID string, rec dnsstore.Record) error {
	f.setCalls++
	f.lastZone = zoneID
	if f.setErr != nil {
		return f.setErr
	}
	if rec.ID == "" {
		rec.ID = "rec-new"
	}
	f.record = rec
	f.hasRecord = true
	return nil
}

func TestReconcile_UpdateThenNoChange(t *testing.T) {
	store := &fakeStore{
		zoneID:    "zone-1",
		record:    dnsstore.Record{ID: "rec-1", Name: "home.example.com", IP: "1.2.3.4", TTL: 300},
		hasRecord: true,
	}
	r := ddns.NewReconciler(store, 300, nil)

	out := r.Reconcile(context.Background(), "home.example.com", "8.8.8.8")
	require.Equal(t, ddns.Updated, out.Kind)
	assert.Equal(t, "8.8.8.8", out.IP)
	assert.Equal(t, "1.2.3.4", out.Previous)
	assert.Equal(t, 1, store.setCalls)
	assert.Equal(t, "8.8.8.8", store.record.IP)

	// Same claim again: the stored value now matches, so no second write.
	out = r.Reconcile(context.Background(), "home.example.com", "8.8.8.8")
	require.Equal(t, ddns.NoChange, out.Kind)
	assert.Equal(t, "8.8.8.8", out.IP)
	assert.Equal(t, 1, store.setCalls)
}

func TestReconcile_CreatesAbsentRecord(t *testing.T) {
	store := &fakeStore{zoneID: "zone-1"}
	r := ddns.NewReconciler(store, 300, nil)

	out := r.Reconcile(context.Background(), "new.example.com", "8.8.8.8")
	require.Equal(t, ddns.Updated, out.Kind)
	assert.Equal(t, "8.8.8.8", out.IP)
	assert.Empty(t, out.Previous)
	assert.Equal(t, 1, store.setCalls)
	assert.Equal(t, "zone-1", store.lastZone)
	assert.Equal(t, 300, store.record.TTL)
}

func TestReconcile_ReusesRecordID(t *testing.T) {
	store := &fakeStore{
		zoneID:    "zone-1",
		record:    dnsstore.Record{ID: "rec-1", Name: "home.example.com", IP: "1.2.3.4"},
		hasRecord: true,
	}
	r := ddns.NewReconciler(store, 300, nil)

	out := r.Reconcile(context.Background(), "home.example.com", "5.6.7.8")
	require.Equal(t, ddns.Updated, out.Kind)
	assert.Equal(t, "rec-1", store.record.ID)
}

func TestReconcile_UnknownHostnameIsBadRequest(t *testing.T) {
	store := &fakeStore{}
	r := ddns.NewReconciler(store, 300, nil)

	out := r.Reconcile(context.Background(), "host.elsewhere.net", "8.8.8.8")
	assert.Equal(t, ddns.BadRequest, out.Kind)
	assert.Equal(t, 0, store.readCalls)
	assert.Equal(t, 0, store.setCalls)
}

func TestReconcile_ZoneListFailure(t *testing.T) {
	store := &fakeStore{zoneErr: errors.New("api throttled")}
	r := ddns.NewReconciler(store, 300, nil)

	out := r.Reconcile(context.Background(), "home.example.com", "8.8.8.8")
	assert.Equal(t, ddns.BackendError, out.Kind)
	assert.Equal(t, 0, store.setCalls)
}

func TestReconcile_ReadFailureSkipsWrite(t *testing.T) {
	store := &fakeStore{
		zoneID:    "zone-1",
		recordErr: errors.New("connection reset"),
	}
	r := ddns.NewReconciler(store, 300, nil)

	out := r.Reconcile(context.Background(), "home.example.com", "8.8.8.8")
	assert.Equal(t, ddns.BackendError, out.Kind)
	assert.Equal(t, 0, store.setCalls)
}

func TestReconcile_WriteFailure(t *testing.T) {
	store := &fakeStore{
		zoneID: "zone-1",
		setErr: errors.New("permission denied"),
	}
	r := ddns.NewReconciler(store, 300, nil)

	out := r.Reconcile(context.Background(), "home.example.com", "8.8.8.8")
	assert.Equal(t, ddns.BackendError, out.Kind)
}
