package coordinator

import (
	"math/rand/v2"
	"time"
)

// defaultJitterFraction is the share of the interval used as ± jitter
const defaultJitterFraction = 10

// calculateInterval returns base shifted by a random offset in [-jitter, +jitter).
// The result never drops below half of base.
func calculateInterval(base, jitter time.Duration) time.Duration {
	if jitter <= 0 {
		return base
	}
	//nolint:gosec // G404: Non-cryptographic randomness is sufficient for polling jitter
	offset := time.Duration(rand.Int64N(int64(2*jitter))) - jitter
	interval := base + offset
	if interval < base/2 {
		return base / 2
	}
	return interval
}
