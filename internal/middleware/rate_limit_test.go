package middleware

import (
	"testing"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := newRateLimiter(60) // 1/s, burst 6

	allowed := 0
	for i := 0; i < 20; i++ {
		if rl.Allow("1.2.3.4") {
			allowed++
		}
	}
	if allowed == 0 || allowed == 20 {
		t.Errorf("expected the burst to pass and the rest to throttle, got %d/20", allowed)
	}

	// Separate sources get separate buckets.
	if !rl.Allow("5.6.7.8") {
		t.Errorf("a fresh source must not inherit another source's bucket")
	}
}
