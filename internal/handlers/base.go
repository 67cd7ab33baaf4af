// Package handlers implements one detection handler per observed protocol.
//
// Every handler turns an observation into zero or more classification
// candidates, merges them into a single classification per device type and
// scores it with the scoring package.
package handlers

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/InfraSecConsult/surveillance-detector-go/internal/patterns"
	"github.com/InfraSecConsult/surveillance-detector-go/internal/profiles"
	"github.com/InfraSecConsult/surveillance-detector-go/internal/scoring"
	"github.com/InfraSecConsult/surveillance-detector-go/lib/helper"
	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// Options are shared by all handlers
type Options struct {
	Logger     zerolog.Logger
	Classifier *patterns.Classifier

	// History bounds the per-address sighting memory
	HistoryKeys   int
	HistoryPerKey int

	// SafeZones are places where stationary detections are discounted
	SafeZones         []model.Location
	SafeZoneTolerance float64

	// Allowlist holds hardware addresses and identifiers known to be benign
	Allowlist []string
}

// DefaultOptions returns options using the built-in pattern tables
func DefaultOptions() Options {
	return Options{
		Logger:            zerolog.Nop(),
		Classifier:        patterns.Default(),
		HistoryKeys:       1024,
		HistoryPerKey:     8,
		SafeZoneTolerance: helper.DefaultLocationTolerance,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Classifier == nil {
		o.Classifier = d.Classifier
	}
	if o.HistoryKeys < 1 {
		o.HistoryKeys = d.HistoryKeys
	}
	if o.HistoryPerKey < 1 {
		o.HistoryPerKey = d.HistoryPerKey
	}
	if o.SafeZoneTolerance <= 0 {
		o.SafeZoneTolerance = d.SafeZoneTolerance
	}
	return o
}

// observationContext is what a handler learned about an observation beyond
// the classification itself
type observationContext struct {
	sightings  helper.SightingStats
	conditions []string
	extra      []string // indicators not tied to a candidate
}

// base carries the state every handler shares. Handlers start stopped and
// ignore observations until Start is called.
type base struct {
	name     string
	protocol model.Protocol
	types    []model.DeviceType
	opts     Options
	logger   zerolog.Logger

	running   atomic.Bool
	destroyed atomic.Bool

	mu       sync.RWMutex
	location *model.Location

	history *helper.SightingHistory
	allow   map[string]struct{}
}

func newBase(name string, protocol model.Protocol, types []model.DeviceType, opts Options) *base {
	opts = opts.withDefaults()
	allow := make(map[string]struct{}, len(opts.Allowlist))
	for _, a := range opts.Allowlist {
		allow[allowKey(a)] = struct{}{}
	}
	return &base{
		name:     name,
		protocol: protocol,
		types:    types,
		opts:     opts,
		logger:   opts.Logger.With().Str("handler", name).Logger(),
		history:  helper.NewSightingHistory(opts.HistoryPerKey, opts.HistoryKeys),
		allow:    allow,
	}
}

func allowKey(s string) string {
	if mac, err := helper.NormalizeMAC(s); err == nil {
		return mac
	}
	return s
}

func (b *base) Name() string                    { return b.name }
func (b *base) Protocol() model.Protocol        { return b.protocol }
func (b *base) DeviceTypes() []model.DeviceType { return slices.Clone(b.types) }

// Running reports whether the handler accepts observations
func (b *base) Running() bool {
	return b.running.Load() && !b.destroyed.Load()
}

func (b *base) Start(context.Context) error {
	if b.destroyed.Load() {
		return errDestroyed
	}
	if !b.running.Swap(true) {
		b.logger.Debug().Msg("Handler started")
	}
	return nil
}

func (b *base) Stop() error {
	if b.running.Swap(false) {
		b.logger.Debug().Msg("Handler stopped")
	}
	return nil
}

func (b *base) Destroy() error {
	b.running.Store(false)
	b.destroyed.Store(true)
	b.history.Reset()
	b.mu.Lock()
	b.location = nil
	b.mu.Unlock()
	return nil
}

func (b *base) UpdateLocation(lat, lon float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.location = &model.Location{Latitude: lat, Longitude: lon}
}

// locate prefers the observation's own position over the receiver position
func (b *base) locate(obs model.Observation) *model.Location {
	if obs.Location != nil {
		loc := *obs.Location
		return &loc
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.location == nil {
		return nil
	}
	loc := *b.location
	return &loc
}

// accept filters observations the handler must not look at
func (b *base) accept(obs model.Observation) bool {
	if !b.Running() {
		b.logger.Trace().Msg("Dropping observation, handler not running")
		return false
	}
	return obs.Protocol == b.protocol
}

// sight records a sighting of key and returns the statistics over window
func (b *base) sight(key string, at time.Time, window time.Duration) helper.SightingStats {
	if key == "" {
		return helper.SightingStats{Count: 1, FirstSeen: at}
	}
	return b.history.Record(key, at, window)
}

func (b *base) allowlisted(obs model.Observation) bool {
	if len(b.allow) == 0 {
		return false
	}
	for _, k := range []string{obs.MAC, obs.Identifier} {
		if k == "" {
			continue
		}
		if _, ok := b.allow[allowKey(k)]; ok {
			return true
		}
	}
	return false
}

func (b *base) inSafeZone(loc *model.Location) bool {
	if loc == nil {
		return false
	}
	for i := range b.opts.SafeZones {
		if helper.SameLocation(loc, &b.opts.SafeZones[i], b.opts.SafeZoneTolerance) {
			return true
		}
	}
	return false
}

// merge folds the candidates for one device type into a single
// classification. The strongest candidate leads; every indicator is kept.
func merge(candidates []model.ClassificationResult) model.ClassificationResult {
	best := candidates[0]
	indicators := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.Likelihood > best.Likelihood || (c.Likelihood == best.Likelihood && c.Quality > best.Quality) {
			best = c
		}
		for _, ind := range c.Indicators {
			if !slices.Contains(indicators, ind) {
				indicators = append(indicators, ind)
			}
		}
	}
	best.Indicators = indicators
	return best
}

// emit groups candidates by device type and scores one detection per type,
// in the order the types first appear
func (b *base) emit(obs model.Observation, candidates []model.ClassificationResult, oc observationContext) []model.Detection {
	if len(candidates) == 0 {
		return nil
	}

	var order []model.DeviceType
	byType := make(map[model.DeviceType][]model.ClassificationResult)
	for _, c := range candidates {
		if _, ok := byType[c.DeviceType]; !ok {
			order = append(order, c.DeviceType)
		}
		byType[c.DeviceType] = append(byType[c.DeviceType], c)
	}

	loc := b.locate(obs)
	falsePositive := b.allowlisted(obs)
	safe := b.inSafeZone(loc)

	detections := make([]model.Detection, 0, len(order))
	for _, dt := range order {
		cls := merge(byType[dt])
		cls.Indicators = append(cls.Indicators, oc.extra...)

		profile := profiles.Profile(dt)
		likelihood := max(0, min(100, cls.Likelihood+profile.ModifierDelta(oc.conditions...)))

		in := model.ThreatInput{
			Likelihood:         likelihood,
			DeviceType:         dt,
			RSSI:               obs.Signal(),
			SeenCount:          oc.sightings.Count,
			Duration:           oc.sightings.Span,
			MultipleIndicators: len(cls.Indicators) > 1,
			KnownFalsePositive: falsePositive,
			KnownSafeArea:      safe,
			ConsumerDevice:     scoring.IsConsumerDevice(dt),
			Quality:            cls.Quality,
			Environment:        obs.Environment,
		}

		detections = append(detections, model.Detection{
			ID:             uuid.NewString(),
			ObservationID:  obs.ID,
			Protocol:       obs.Protocol,
			Handler:        b.name,
			Identifier:     obs.Identifier,
			MAC:            obs.MAC,
			RSSI:           obs.RSSI,
			Timestamp:      obs.Timestamp,
			Location:       loc,
			DeviceType:     dt,
			Classification: cls,
			Input:          in,
			Threat:         scoring.Score(in),
		})
	}

	for _, d := range detections {
		b.logger.Debug().
			Str("device_type", d.DeviceType.String()).
			Int("score", d.Threat.AdjustedScore).
			Str("severity", d.Threat.Severity.String()).
			Strs("indicators", d.Classification.Indicators).
			Msg("Detection")
	}
	return detections
}

// candidate builds a classification not backed by a pattern rule
func candidate(dt model.DeviceType, q model.MatchQuality, likelihood int, description string, indicators ...string) model.ClassificationResult {
	return model.ClassificationResult{
		DeviceType:  dt,
		Quality:     q,
		Likelihood:  likelihood,
		Description: description,
		Indicators:  indicators,
	}
}

// qualityFor grades heuristic evidence by how many independent indicators fired
func qualityFor(indicators int) model.MatchQuality {
	switch {
	case indicators >= 3:
		return model.MatchStrong
	case indicators == 2:
		return model.MatchPartial
	default:
		return model.MatchHeuristic
	}
}
