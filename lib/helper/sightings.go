package helper

import (
	"sync"
	"time"
)

// SightingStats summarises how often one key has been seen
type SightingStats struct {
	Count     int           // sightings kept in history, including the current one
	FirstSeen time.Time     // oldest sighting kept in history
	Span      time.Duration // time between the oldest kept sighting and now
}

// SightingHistory remembers the last few sighting timestamps per key (usually a
// hardware address). The number of tracked keys is bounded; when full the key seen
// least recently is evicted.
type SightingHistory struct {
	mu        sync.Mutex
	perKey    int
	maxKeys   int
	sightings map[string]*RingBuffer[time.Time]
	lastSeen  map[string]time.Time
}

// NewSightingHistory creates a history keeping perKey timestamps for up to maxKeys keys
func NewSightingHistory(perKey, maxKeys int) *SightingHistory {
	return &SightingHistory{
		perKey:    perKey,
		maxKeys:   maxKeys,
		sightings: make(map[string]*RingBuffer[time.Time]),
		lastSeen:  make(map[string]time.Time),
	}
}

// Record stores a sighting and returns the statistics within window, counting the new sighting
func (h *SightingHistory) Record(key string, at time.Time, window time.Duration) SightingStats {
	h.mu.Lock()
	rb, ok := h.sightings[key]
	if !ok {
		if len(h.sightings) >= h.maxKeys {
			h.evictOldest()
		}
		rb = NewRingBuffer[time.Time](h.perKey)
		h.sightings[key] = rb
	}
	h.lastSeen[key] = at
	h.mu.Unlock()

	rb.Add(at)
	recent := rb.Select(func(ts time.Time) bool {
		return !ts.After(at) && at.Sub(ts) <= window
	})
	stats := SightingStats{Count: len(recent)}
	if len(recent) > 0 {
		stats.FirstSeen = recent[0]
		stats.Span = at.Sub(recent[0])
	}
	return stats
}

// Len returns the number of tracked keys
func (h *SightingHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sightings)
}

// Reset forgets every key
func (h *SightingHistory) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sightings = make(map[string]*RingBuffer[time.Time])
	h.lastSeen = make(map[string]time.Time)
}

// evictOldest must be called with mu held
func (h *SightingHistory) evictOldest() {
	var oldestKey string
	var oldest time.Time
	for k, ts := range h.lastSeen {
		if oldestKey == "" || ts.Before(oldest) {
			oldestKey, oldest = k, ts
		}
	}
	delete(h.sightings, oldestKey)
	delete(h.lastSeen, oldestKey)
}
