package pkg

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// TrustedProxies are the peers allowed to report the client address through
// X-Real-Ip / X-Forwarded-For. An empty list trusts nobody.
type TrustedProxies []*net.IPNet

// ParseTrustedProxies accepts CIDRs ("10.0.0.0/8") and bare IPs ("127.0.0.1").
func ParseTrustedProxies(entries []string) (TrustedProxies, error) {
	proxies := make(TrustedProxies, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				return nil, fmt.Errorf("invalid trusted proxy: %q", entry)
			}
			bits := 8 * net.IPv6len
			if ip.To4() != nil {
				ip = ip.To4()
				bits = 8 * net.IPv4len
			}
			proxies = append(proxies, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy: %q: %w", entry, err)
		}
		proxies = append(proxies, ipNet)
	}
	return proxies, nil
}

func (tp TrustedProxies) Contains(ip net.IP) bool {
	for _, ipNet := range tp {
		if ipNet.Contains(ip) {
			return true
		}
	}
	return false
}

// ReadUserIP returns the client IP. Proxy headers are honoured only when the
// direct peer is a trusted proxy; otherwise any client could pick its own address.
func ReadUserIP(r *http.Request, trusted TrustedProxies) (string, error) {
	peer := r.RemoteAddr
	if host, _, err := net.SplitHostPort(peer); err == nil {
		peer = host
	}
	peerIP := net.ParseIP(peer)
	if peerIP == nil {
		return "", fmt.Errorf("ip addr %s is invalid", peer)
	}
	if !trusted.Contains(peerIP) {
		return peerIP.String(), nil
	}

	if realIP := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-Ip"))); realIP != nil {
		return realIP.String(), nil
	}

	// walk the chain from the nearest hop, the first untrusted address is the client
	forwarded := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	var clientIP net.IP
	for i := len(forwarded) - 1; i >= 0; i-- {
		hopIP := net.ParseIP(strings.TrimSpace(forwarded[i]))
		if hopIP == nil {
			break
		}
		clientIP = hopIP
		if !trusted.Contains(hopIP) {
			break
		}
	}
	if clientIP == nil {
		return peerIP.String(), nil
	}
	return clientIP.String(), nil
}
