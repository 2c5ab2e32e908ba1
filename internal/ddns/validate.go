package ddns

import (
	"errors"
	"net/netip"
	"strings"

	"github.com/miekg/dns"
)

var (
	errBadHostname = errors.New("invalid hostname")
	errBadIP       = errors.New("invalid IPv4 address")
)

// NormalizeHostname validates raw as a fully qualified domain name and
// returns it lowercased without a trailing dot. Only LDH labels are accepted;
// a bare label without a dot is rejected because it cannot belong to any
// hosted zone.
func NormalizeHostname(raw string) (string, error) {
	h := strings.ToLower(strings.TrimSpace(raw))
	h = strings.TrimSuffix(h, ".")
	if h == "" || !strings.Contains(h, ".") || len(h) > 253 {
		return "", errBadHostname
	}
	if _, ok := dns.IsDomainName(dns.Fqdn(h)); !ok {
		return "", errBadHostname
	}
	for _, label := range strings.Split(h, ".") {
		if !validLabel(label) {
			return "", errBadHostname
		}
	}
	return h, nil
}

func validLabel(label string) bool {
	if len(label) == 0 || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

// NormalizeIPv4 validates raw as an IPv4 dotted quad and returns its
// canonical form. Surrounding whitespace is tolerated so that two requests
// claiming the same address compare equal after normalization.
func NormalizeIPv4(raw string) (string, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(raw))
	if err != nil || !addr.Is4() {
		return "", errBadIP
	}
	return addr.String(), nil
}
