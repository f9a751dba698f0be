package ratelimit

import "context"

// Limiter answers whether a key may dispense right now and, if so, records
// the grant. Implementations never surface infrastructure errors to the
// caller; a broken backend degrades rather than failing the request.
type Limiter interface {
	// Allow reports whether the key is allowed and atomically records the
	// attempt when it is. A key is granted at most once per window.
	Allow(ctx context.Context, key string) bool
}

// IPKey namespaces a client IP for limiting.
func IPKey(ip string) string {
	return "ip:" + ip
}

// WalletKey namespaces a destination wallet address for limiting.
func WalletKey(address string) string {
	return "wallet:" + address
}
