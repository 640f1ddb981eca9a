package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// KeyedLimiter hands out one token-bucket limiter per key (typically a client
// IP). Idle entries are dropped by a periodic sweep so the map stays bounded.
type KeyedLimiter struct {
	mu       sync.Mutex
	limiters map[string]*entry
	rate     rate.Limit
	burst    int
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewKeyedLimiter(perSecond float64, burst int) *KeyedLimiter {
	kl := &KeyedLimiter{
		limiters: make(map[string]*entry),
		rate:     rate.Limit(perSecond),
		burst:    burst,
	}
	go kl.sweep()
	return kl
}

// Allow reports whether the caller identified by key may proceed.
func (kl *KeyedLimiter) Allow(key string) bool {
	kl.mu.Lock()
	e, ok := kl.limiters[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(kl.rate, kl.burst)}
		kl.limiters[key] = e
	}
	e.lastSeen = time.Now()
	kl.mu.Unlock()

	return e.limiter.Allow()
}

func (kl *KeyedLimiter) sweep() {
	for range time.Tick(5 * time.Minute) {
		cutoff := time.Now().Add(-10 * time.Minute)
		kl.mu.Lock()
		for key, e := range kl.limiters {
			if e.lastSeen.Before(cutoff) {
				delete(kl.limiters, key)
			}
		}
		kl.mu.Unlock()
	}
}
