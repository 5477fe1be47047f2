package handlers

import (
	"math/rand"
	"sync"
	"time"
)

// RateLimiter is a fixed-window admission gate: `limit` requests per key per
// `window`, denied requests answered immediately. State is process-local and
// not shared across instances — acceptable for this workload, a lost window
// on restart just means a briefly more generous limit.
//
// Construct one in main and hand it to the handlers; it is deliberately not
// a package-level singleton.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration

	now func() time.Time // test hook
}

type visitor struct {
	count   int
	resetAt time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

// Check admits or denies one request for the key and reports how many
// requests remain in the current window.
func (rl *RateLimiter) Check(key string) (allowed bool, remaining int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	// Opportunistic sweep: on ~1% of calls, drop expired windows so the map
	// stays bounded. Approximate on purpose; precision buys nothing here.
	if rand.Float64() < 0.01 {
		for k, v := range rl.visitors {
			if now.After(v.resetAt) {
				delete(rl.visitors, k)
			}
		}
	}

	v, exists := rl.visitors[key]
	if !exists || now.After(v.resetAt) {
		rl.visitors[key] = &visitor{count: 1, resetAt: now.Add(rl.window)}
		return true, rl.limit - 1
	}

	if v.count >= rl.limit {
		return false, 0
	}

	v.count++
	return true, rl.limit - v.count
}
