package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Unknown is returned when no syntactically valid client address can be
// determined from the request.
const Unknown = "unknown"

// GetIP returns the client's IP address from an HTTP request.
//
// Priority order:
//  1. RemoteAddr — the transport-level peer address supplied by the runtime.
//     It is never attacker-controlled, so it always wins when valid.
//  2. X-Forwarded-For — client-supplied proxy-chain header. Only the leftmost
//     entry is considered (the original client per standard proxy chaining),
//     and only when the peer address is unavailable or malformed.
//  3. The literal "unknown".
//
// The returned value is advisory audit metadata only; it must never gate
// authorization decisions.
func GetIP(r *http.Request) string {
	if r.RemoteAddr != "" {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			// Not in host:port form, assume it's already just an IP.
			host = r.RemoteAddr
		}
		if parsed := parseIP(host); parsed != "" {
			return parsed
		}
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if parsed := parseIP(first); parsed != "" {
			return parsed
		}
	}

	return Unknown
}

// parseIP validates and normalizes an IP address string.
// Returns empty string if the IP is invalid.
func parseIP(ipStr string) string {
	ipStr = strings.TrimSpace(ipStr)
	if ipStr == "" {
		return ""
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ""
	}

	return ip.String()
}
