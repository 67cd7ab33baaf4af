package handlers

import (
	"sync"
	"time"
)

// pairTracker remembers which values were seen together with a key, such as
// the BSSIDs announcing one SSID. Entries older than the window are pruned
// when the key is touched; the least recently touched key is evicted when
// maxKeys is reached.
type pairTracker struct {
	mu      sync.Mutex
	window  time.Duration
	maxKeys int
	seen    map[string]map[string]time.Time
	touched map[string]time.Time
}

func newPairTracker(window time.Duration, maxKeys int) *pairTracker {
	return &pairTracker{
		window:  window,
		maxKeys: maxKeys,
		seen:    make(map[string]map[string]time.Time),
		touched: make(map[string]time.Time),
	}
}

// observe records value under key and returns how many distinct values the
// key has within the window, including this one
func (t *pairTracker) observe(key, value string, at time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	values, ok := t.seen[key]
	if !ok {
		if len(t.seen) >= t.maxKeys {
			t.evictLocked()
		}
		values = make(map[string]time.Time)
		t.seen[key] = values
	}
	values[value] = at
	t.touched[key] = at

	for v, ts := range values {
		if at.Sub(ts) > t.window {
			delete(values, v)
		}
	}
	return len(values)
}

func (t *pairTracker) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seen = make(map[string]map[string]time.Time)
	t.touched = make(map[string]time.Time)
}

func (t *pairTracker) evictLocked() {
	var oldestKey string
	var oldest time.Time
	for k, ts := range t.touched {
		if oldestKey == "" || ts.Before(oldest) {
			oldestKey, oldest = k, ts
		}
	}
	delete(t.seen, oldestKey)
	delete(t.touched, oldestKey)
}
