// Package clientip determines the requester's network address for audit
// records.
//
// Unlike proxy-oriented resolvers that trust forwarding headers first, this
// package prefers the transport-level peer address (http.Request.RemoteAddr)
// because it is supplied by the runtime and cannot be spoofed. The
// X-Forwarded-For header is consulted only when the peer address is absent
// or malformed, and only its leftmost entry is used. When neither source
// yields a syntactically valid IPv4 or IPv6 literal the resolver returns the
// literal "unknown" rather than an error, because the address is advisory
// metadata attached to login-history records.
package clientip
