package ddns

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mvisser/dyngate/internal/dnsstore"
)

// Reconciler compares a claimed IP against the published A record and writes
// the record only when the value differs. It performs no retries and no
// locking around the read-then-write: the legitimate caller is a single
// device reporting its own address, so last write wins at the backend.
type Reconciler struct {
	store  dnsstore.Store
	ttl    int
	logger *slog.Logger
}

func NewReconciler(store dnsstore.Store, ttl int, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{store: store, ttl: ttl, logger: logger}
}

// Reconcile takes a normalized hostname and IPv4 address and returns the
// protocol outcome. It issues at most one zone lookup, one record read and
// one record write.
func (r *Reconciler) Reconcile(ctx context.Context, hostname, ip string) Outcome {
	zoneID, err := r.store.ResolveZone(ctx, hostname)
	if errors.Is(err, dnsstore.ErrZoneNotFound) {
		r.logger.Warn("no zone for hostname", "hostname", hostname)
		return Outcome{Kind: BadRequest}
	}
	if err != nil {
		r.logger.Error("zone resolution failed", "hostname", hostname, "error", err)
		return Outcome{Kind: BackendError}
	}

	current, err := r.store.Record(ctx, zoneID, hostname)
	absent := errors.Is(err, dnsstore.ErrRecordNotFound)
	if err != nil && !absent {
		r.logger.Error("record read failed", "hostname", hostname, "error", err)
		return Outcome{Kind: BackendError}
	}

	if !absent && current.IP == ip {
		r.logger.Info("record unchanged", "hostname", hostname, "ip", ip)
		return Outcome{Kind: NoChange, IP: ip}
	}

	rec := dnsstore.Record{ID: current.ID, Name: hostname, IP: ip, TTL: r.ttl}
	if err := r.store.SetRecord(ctx, zoneID, rec); err != nil {
		r.logger.Error("record write failed", "hostname", hostname, "ip", ip, "error", err)
		return Outcome{Kind: BackendError}
	}
	r.logger.Info("record updated", "hostname", hostname, "old", current.IP, "new", ip)
	return Outcome{Kind: Updated, IP: ip, Previous: current.IP}
}
