package types

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// PingTimeout is the short timeout used for liveness probes.
	PingTimeout = 5 * time.Second

	// UserAgent is the user agent string.
	UserAgent = "espeeswap-go/1.0.0"

	// AuthExpiryNoticeDelay is how long the client waits before firing the
	// auth-expiry callback, so a caller-side notice can render first.
	AuthExpiryNoticeDelay = 500 * time.Millisecond
)

// Retry defaults. The backoff schedule is waitMin*2^attempt capped at waitMax,
// which yields 1s, 2s, 4s for the default three retries.
const (
	DefaultMaxRetries   = 3
	DefaultRetryWaitMin = 1 * time.Second
	DefaultRetryWaitMax = 10 * time.Second
)
