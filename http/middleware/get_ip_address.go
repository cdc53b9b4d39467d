package middleware

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/xy-planning-network/trailhead"
)

// UnknownIPAddress is what GetIPAddress returns when no public address is forwarded.
const UnknownIPAddress = "0.0.0.0"

// forwardingHeaders are read, in order, for the chain of addresses a request passed through.
var forwardingHeaders = []string{"X-Forwarded-For", "X-Real-Ip"}

// nonPublic are the IANA special-purpose ranges not covered by [netip.Addr.IsPrivate].
var nonPublic = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
}

// InjectIPAddress stashes the address a request came from in its context under trailhead.IpAddrKey.
// See ClientIP.
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), trailhead.IpAddrKey, ClientIP(r))
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIP is the address a request came from:
// the public address GetIPAddress finds in its headers,
// or, failing that, the host of its RemoteAddr.
func ClientIP(r *http.Request) string {
	if ip := GetIPAddress(r.Header); ip != UnknownIPAddress {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if addr, err := netip.ParseAddr(host); err == nil {
		return addr.Unmap().String()
	}

	return UnknownIPAddress
}

// GetIPAddress reads the "X-Forwarded-For" and "X-Real-Ip" headers
// for the last public address in the chain, the one right before our proxy.
//
// GetIPAddress returns UnknownIPAddress if no header holds a public IPv4 or IPv6 address.
func GetIPAddress(hm http.Header) string {
	for _, h := range forwardingHeaders {
		addresses := strings.Split(hm.Get(h), ",")
		for i := len(addresses) - 1; i >= 0; i-- {
			addr, err := netip.ParseAddr(strings.TrimSpace(addresses[i]))
			if err != nil || !isPublic(addr.Unmap()) {
				continue
			}

			return addr.Unmap().String()
		}
	}

	return UnknownIPAddress
}

func isPublic(addr netip.Addr) bool {
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return false
	}

	for _, p := range nonPublic {
		if p.Contains(addr) {
			return false
		}
	}

	return true
}
