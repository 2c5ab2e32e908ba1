package dnsstore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cloudflare/cloudflare-go"
)

// cloudflareAPI is the slice of the cloudflare-go client this store uses,
// extracted so tests can substitute a fake without network access.
type cloudflareAPI interface {
	ListZones(ctx context.Context, z ...string) ([]cloudflare.Zone, error)
	ListDNSRecords(ctx context.Context, rc *cloudflare.ResourceContainer, params cloudflare.ListDNSRecordsParams) ([]cloudflare.DNSRecord, *cloudflare.ResultInfo, error)
	CreateDNSRecord(ctx context.Context, rc *cloudflare.ResourceContainer, params cloudflare.CreateDNSRecordParams) (cloudflare.DNSRecord, error)
	UpdateDNSRecord(ctx context.Context, rc *cloudflare.ResourceContainer, params cloudflare.UpdateDNSRecordParams) (cloudflare.DNSRecord, error)
}

var _ cloudflareAPI = (*cloudflare.API)(nil)

// Cloudflare implements Store on top of the Cloudflare v4 API.
type Cloudflare struct {
	api     cloudflareAPI
	logger  *slog.Logger
	comment string
}

// NewCloudflare builds a Cloudflare store from an API token scoped to the
// zones this deployment may update.
func NewCloudflare(token string, logger *slog.Logger) (*Cloudflare, error) {
	api, err := cloudflare.NewWithAPIToken(token)
	if err != nil {
		return nil, fmt.Errorf("creating cloudflare client: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cloudflare{
		api:     api,
		logger:  logger,
		comment: "managed by dyngate",
	}, nil
}

func (s *Cloudflare) ResolveZone(ctx context.Context, hostname string) (string, error) {
	zones, err := s.api.ListZones(ctx)
	if err != nil {
		return "", fmt.Errorf("listing zones: %w", err)
	}

	var zoneID string
	best := 0
	for _, z := range zones {
		name := strings.ToLower(strings.TrimSuffix(z.Name, "."))
		if hostname != name && !strings.HasSuffix(hostname, "."+name) {
			continue
		}
		if len(name) > best {
			best, zoneID = len(name), z.ID
		}
	}
	if zoneID == "" {
		return "", ErrZoneNotFound
	}
	s.logger.Debug("resolved zone", "hostname", hostname, "zone_id", zoneID)
	return zoneID, nil
}

func (s *Cloudflare) Record(ctx context.Context, zoneID, hostname string) (Record, error) {
	records, _, err := s.api.ListDNSRecords(ctx, cloudflare.ZoneIdentifier(zoneID), cloudflare.ListDNSRecordsParams{
		Type: "A",
		Name: hostname,
	})
	if err != nil {
		return Record{}, fmt.Errorf("listing records for %s: %w", hostname, err)
	}
	if len(records) == 0 {
		return Record{}, ErrRecordNotFound
	}
	r := records[0]
	return Record{ID: r.ID, Name: r.Name, IP: r.Content, TTL: r.TTL}, nil
}

func (s *Cloudflare) SetRecord(ctx context.Context, zoneID string, rec Record) error {
	proxied := false
	if rec.ID != "" {
		_, err := s.api.UpdateDNSRecord(ctx, cloudflare.ZoneIdentifier(zoneID), cloudflare.UpdateDNSRecordParams{
			ID:      rec.ID,
			Type:    "A",
			Name:    rec.Name,
			Content: rec.IP,
			TTL:     rec.TTL,
			Proxied: &proxied,
		})
		if err != nil {
			return fmt.Errorf("updating record %s: %w", rec.Name, err)
		}
		return nil
	}
	_, err := s.api.CreateDNSRecord(ctx, cloudflare.ZoneIdentifier(zoneID), cloudflare.CreateDNSRecordParams{
		Type:    "A",
		Name:    rec.Name,
		Content: rec.IP,
		TTL:     rec.TTL,
		Proxied: &proxied,
		Comment: s.comment,
	})
	if err != nil {
		return fmt.Errorf("creating record %s: %w", rec.Name, err)
	}
	return nil
}
