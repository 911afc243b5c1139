package catalog

import "errors"

// Lookup failure categories. Client errors wrap exactly one of these.
var (
	// ErrNotFound covers every 4xx response: unknown name or id, or a malformed query.
	ErrNotFound = errors.New("creature not found")
	// ErrUpstream covers any other non-2xx response.
	ErrUpstream = errors.New("catalog fetch failed")
	// ErrNetwork covers transport failures and unreadable bodies.
	ErrNetwork = errors.New("catalog unreachable")
)
